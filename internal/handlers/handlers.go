package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pixelbend/pixelbend/internal/auth"
	"github.com/pixelbend/pixelbend/internal/corrupt"
	"github.com/pixelbend/pixelbend/internal/dithering"
	"github.com/pixelbend/pixelbend/internal/version"
)

// HealthHandler reports service liveness
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// VersionHandler returns build information
func VersionHandler(c *gin.Context) {
	c.JSON(http.StatusOK, version.Get())
}

// ConfigHandler returns application configuration for clients
func ConfigHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"authEnabled": auth.Enabled(),
		"version":     version.String(),
	})
}

// KernelsHandler lists the available diffusion kernels
func KernelsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"kernels": dithering.KernelNames()})
}

// CorruptionsHandler lists the available byte benders
func CorruptionsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"corruptions": corrupt.Names()})
}
