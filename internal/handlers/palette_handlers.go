package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pixelbend/pixelbend/internal/config"
	"github.com/pixelbend/pixelbend/internal/database"
	"github.com/pixelbend/pixelbend/internal/logging"
	"github.com/pixelbend/pixelbend/internal/palettes"
)

type paletteRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=128"`
	Description string   `json:"description"`
	Colors      []string `json:"colors" binding:"required,min=1,dive,hexcolor"`
}

type paletteSummary struct {
	Name   string   `json:"name"`
	Source string   `json:"source"`
	Colors []string `json:"colors,omitempty"`
}

// ListPalettesHandler returns every palette the service can resolve:
// builtins, PALETTE_DIR files, and stored ones.
func ListPalettesHandler(c *gin.Context) {
	var list []paletteSummary

	for _, name := range palettes.BuiltinNames() {
		summary := paletteSummary{Name: name, Source: "builtin"}
		// The generated palettes are too large to echo inline.
		if palette, ok := palettes.Builtin(name); ok && len(palette) <= 64 {
			summary.Colors = palette.Hexes()
		}
		list = append(list, summary)
	}

	if dir := config.Get("PALETTE_DIR", ""); dir != "" {
		filePalettes, err := palettes.LoadDir(dir)
		if err != nil {
			logging.WarnWithComponent(logging.ComponentPalettes, "Failed to load palette directory", "dir", dir, "error", err)
		} else {
			for name, palette := range filePalettes {
				list = append(list, paletteSummary{Name: name, Source: "file", Colors: palette.Hexes()})
			}
		}
	}

	if db := database.GetDB(); db != nil {
		stored, err := database.NewPaletteService(db).GetAllPalettes()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list palettes"})
			return
		}
		for _, p := range stored {
			summary := paletteSummary{Name: p.Name, Source: "stored"}
			if palette, err := p.Decode(); err == nil {
				summary.Colors = palette.Hexes()
			}
			list = append(list, summary)
		}
	}

	c.JSON(http.StatusOK, gin.H{"palettes": list})
}

// CreatePaletteHandler stores a new palette
func CreatePaletteHandler(c *gin.Context) {
	var req paletteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErrorMessage(err)})
		return
	}

	if _, ok := palettes.Builtin(req.Name); ok {
		c.JSON(http.StatusConflict, gin.H{"error": "name collides with a builtin palette"})
		return
	}

	svc := database.NewPaletteService(database.GetDB())
	palette, err := svc.CreatePalette(req.Name, req.Description, req.Colors)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create palette"})
		return
	}

	logging.InfoWithComponent(logging.ComponentPalettes, "Created palette", "name", palette.Name)
	c.JSON(http.StatusCreated, gin.H{"palette": palette})
}

// GetPaletteHandler returns a stored palette by ID
func GetPaletteHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid palette ID"})
		return
	}

	palette, err := database.NewPaletteService(database.GetDB()).GetPaletteByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "palette not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"palette": palette})
}

// UpdatePaletteHandler replaces a stored palette's description and colors
func UpdatePaletteHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid palette ID"})
		return
	}

	var req struct {
		Description string   `json:"description"`
		Colors      []string `json:"colors" binding:"required,min=1,dive,hexcolor"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErrorMessage(err)})
		return
	}

	svc := database.NewPaletteService(database.GetDB())
	palette, err := svc.UpdatePalette(id, req.Description, req.Colors)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "palette not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update palette"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"palette": palette})
}

// DeletePaletteHandler removes a stored palette
func DeletePaletteHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid palette ID"})
		return
	}

	if err := database.NewPaletteService(database.GetDB()).DeletePalette(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete palette"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
