package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pixelbend/pixelbend/internal/database"
	"github.com/pixelbend/pixelbend/internal/logging"
)

type presetRequest struct {
	Name       string  `json:"name" binding:"required,min=1,max=128"`
	Algorithm  string  `json:"algorithm" binding:"required,oneof=diffusion ordered"`
	Kernel     string  `json:"kernel"`
	MatrixSize int     `json:"matrix_size"`
	Amplitude  float64 `json:"amplitude"`
	Palette    string  `json:"palette" binding:"required"`
}

// ListPresetsHandler returns all dither presets
func ListPresetsHandler(c *gin.Context) {
	presets, err := database.NewPresetService(database.GetDB()).GetAllPresets()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list presets"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"presets": presets})
}

// CreatePresetHandler stores a new dither preset
func CreatePresetHandler(c *gin.Context) {
	var req presetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErrorMessage(err)})
		return
	}

	svc := database.NewPresetService(database.GetDB())
	preset, err := svc.CreatePreset(&database.DitherPreset{
		Name:       req.Name,
		Algorithm:  req.Algorithm,
		Kernel:     req.Kernel,
		MatrixSize: req.MatrixSize,
		Amplitude:  req.Amplitude,
		Palette:    req.Palette,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logging.InfoWithComponent(logging.ComponentPresets, "Created preset", "name", preset.Name)
	c.JSON(http.StatusCreated, gin.H{"preset": preset})
}

// GetPresetHandler returns a preset by ID
func GetPresetHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid preset ID"})
		return
	}

	preset, err := database.NewPresetService(database.GetDB()).GetPresetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "preset not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"preset": preset})
}

// UpdatePresetHandler replaces a preset's configuration
func UpdatePresetHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid preset ID"})
		return
	}

	var req presetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErrorMessage(err)})
		return
	}

	svc := database.NewPresetService(database.GetDB())
	preset, err := svc.GetPresetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "preset not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load preset"})
		}
		return
	}

	preset.Name = req.Name
	preset.Algorithm = req.Algorithm
	preset.Kernel = req.Kernel
	preset.MatrixSize = req.MatrixSize
	preset.Amplitude = req.Amplitude
	preset.Palette = req.Palette

	if err := svc.UpdatePreset(preset); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"preset": preset})
}

// DeletePresetHandler removes a preset
func DeletePresetHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid preset ID"})
		return
	}

	if err := database.NewPresetService(database.GetDB()).DeletePreset(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete preset"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
