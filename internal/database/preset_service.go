package database

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pixelbend/pixelbend/internal/dithering"
)

// PresetService handles dither preset database operations
type PresetService struct {
	db *gorm.DB
}

// NewPresetService creates a new preset service
func NewPresetService(db *gorm.DB) *PresetService {
	return &PresetService{db: db}
}

// validatePreset checks the algorithm-specific fields before writing
func validatePreset(preset *DitherPreset) error {
	switch preset.Algorithm {
	case "diffusion":
		if _, ok := dithering.KernelByName(preset.Kernel); !ok {
			return fmt.Errorf("unknown kernel %q", preset.Kernel)
		}
	case "ordered":
		if _, err := dithering.BuildBayerMatrix(preset.MatrixSize); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported algorithm: %s", preset.Algorithm)
	}
	return nil
}

// CreatePreset stores a new dither preset
func (ps *PresetService) CreatePreset(preset *DitherPreset) (*DitherPreset, error) {
	if err := validatePreset(preset); err != nil {
		return nil, err
	}
	if err := ps.db.Create(preset).Error; err != nil {
		return nil, err
	}
	return preset, nil
}

// GetAllPresets returns all dither presets
func (ps *PresetService) GetAllPresets() ([]DitherPreset, error) {
	var presets []DitherPreset
	err := ps.db.Order("name").Find(&presets).Error
	return presets, err
}

// GetPresetByID returns a preset by its ID
func (ps *PresetService) GetPresetByID(id uuid.UUID) (*DitherPreset, error) {
	var preset DitherPreset
	if err := ps.db.First(&preset, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &preset, nil
}

// GetPresetByName returns a preset by name
func (ps *PresetService) GetPresetByName(name string) (*DitherPreset, error) {
	var preset DitherPreset
	if err := ps.db.First(&preset, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &preset, nil
}

// UpdatePreset updates an existing preset
func (ps *PresetService) UpdatePreset(preset *DitherPreset) error {
	if err := validatePreset(preset); err != nil {
		return err
	}
	return ps.db.Save(preset).Error
}

// DeletePreset removes a preset
func (ps *PresetService) DeletePreset(id uuid.UUID) error {
	return ps.db.Delete(&DitherPreset{}, "id = ?", id).Error
}
