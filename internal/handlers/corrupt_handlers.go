package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pixelbend/pixelbend/internal/corrupt"
	"github.com/pixelbend/pixelbend/internal/logging"
)

// CorruptHandler databends an uploaded file and returns the damaged
// bytes. The "file" field carries the input; "corruptions" names one or
// more benders (comma separated), applied in order. "header_size" bytes
// at the start are left untouched so the container stays decodable.
func CorruptHandler(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}

	names := strings.Split(c.DefaultPostForm("corruptions", "increment"), ",")
	amount := formInt(c, "amount", 1)
	chunkSize := formInt(c, "chunk_size", 64)
	seed, _ := strconv.ParseInt(c.DefaultPostForm("seed", "0"), 10, 64)
	headerSize := formInt(c, "header_size", 0)

	var benders []corrupt.Bender
	for _, name := range names {
		if name = strings.TrimSpace(name); name == "" {
			continue
		}
		bender, err := corrupt.ByName(name, amount, chunkSize, seed)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		benders = append(benders, bender)
	}
	if len(benders) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no corruptions given"})
		return
	}

	bent, err := corrupt.Apply(data, headerSize, benders...)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logging.InfoWithComponent(logging.ComponentCorrupt, "Corrupted file",
		"name", header.Filename, "bytes", len(bent), "benders", len(benders))

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "bent-"+header.Filename))
	c.Data(http.StatusOK, contentType, bent)
}
