package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Middleware accepts either a valid API key or a valid JWT cookie. When
// authentication is not configured at all, every request passes through.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Enabled() {
			c.Next()
			return
		}

		if isValidAPIKey(c) {
			c.Next()
			return
		}

		tokenString, err := c.Cookie("auth_token")
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}

		if !validToken(tokenString) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Next()
	}
}
