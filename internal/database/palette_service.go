package database

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/pixelbend/pixelbend/internal/colors"
)

// PaletteService handles palette-related database operations
type PaletteService struct {
	db *gorm.DB
}

// NewPaletteService creates a new palette service
func NewPaletteService(db *gorm.DB) *PaletteService {
	return &PaletteService{db: db}
}

// CreatePalette stores a new palette. The hex strings are validated before
// anything is written.
func (ps *PaletteService) CreatePalette(name, description string, hexes []string) (*StoredPalette, error) {
	if _, err := colors.ParseHexPalette(hexes); err != nil {
		return nil, err
	}

	colorsJSON, err := json.Marshal(hexes)
	if err != nil {
		return nil, err
	}

	palette := &StoredPalette{
		Name:        name,
		Description: description,
		Colors:      datatypes.JSON(colorsJSON),
	}

	if err := ps.db.Create(palette).Error; err != nil {
		return nil, err
	}

	return palette, nil
}

// GetAllPalettes returns all stored palettes
func (ps *PaletteService) GetAllPalettes() ([]StoredPalette, error) {
	var palettes []StoredPalette
	err := ps.db.Order("name").Find(&palettes).Error
	return palettes, err
}

// GetPaletteByID returns a stored palette by its ID
func (ps *PaletteService) GetPaletteByID(id uuid.UUID) (*StoredPalette, error) {
	var palette StoredPalette
	if err := ps.db.First(&palette, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &palette, nil
}

// GetPaletteByName returns a stored palette by name
func (ps *PaletteService) GetPaletteByName(name string) (*StoredPalette, error) {
	var palette StoredPalette
	if err := ps.db.First(&palette, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &palette, nil
}

// UpdatePalette replaces a palette's description and colors
func (ps *PaletteService) UpdatePalette(id uuid.UUID, description string, hexes []string) (*StoredPalette, error) {
	palette, err := ps.GetPaletteByID(id)
	if err != nil {
		return nil, err
	}

	if _, err := colors.ParseHexPalette(hexes); err != nil {
		return nil, err
	}

	colorsJSON, err := json.Marshal(hexes)
	if err != nil {
		return nil, err
	}

	palette.Description = description
	palette.Colors = datatypes.JSON(colorsJSON)

	if err := ps.db.Save(palette).Error; err != nil {
		return nil, err
	}

	return palette, nil
}

// DeletePalette removes a stored palette
func (ps *PaletteService) DeletePalette(id uuid.UUID) error {
	return ps.db.Delete(&StoredPalette{}, "id = ?", id).Error
}

// Decode converts a stored palette's JSON colors into a usable palette
func (p *StoredPalette) Decode() (colors.Palette, error) {
	var hexes []string
	if err := json.Unmarshal(p.Colors, &hexes); err != nil {
		return nil, fmt.Errorf("palette %s has malformed colors: %w", p.Name, err)
	}
	return colors.ParseHexPalette(hexes)
}
