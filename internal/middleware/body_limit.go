package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pixelbend/pixelbend/internal/config"
)

// MaxUploadBytes returns the request body limit from MAX_UPLOAD_KB.
// The default allows a 16 MB upload.
func MaxUploadBytes() int64 {
	return int64(config.GetInt("MAX_UPLOAD_KB", 16384)) * 1024
}

// BodyLimit caps request body size. Requests that declare a larger
// Content-Length are rejected up front; chunked requests are capped by
// wrapping the body reader so handlers hit an error instead of buffering
// an unbounded payload.
func BodyLimit() gin.HandlerFunc {
	limit := MaxUploadBytes()
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
			c.Abort()
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
