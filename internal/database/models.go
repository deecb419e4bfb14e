package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StoredPalette is a user-defined color palette persisted alongside the
// builtin ones. Colors holds a JSON array of hex strings like "#ff0066".
type StoredPalette struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string         `gorm:"uniqueIndex;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	Colors      datatypes.JSON `gorm:"not null" json:"colors"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// BeforeCreate sets UUID if not already set
func (p *StoredPalette) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// DitherPreset is a saved dither configuration. Algorithm is "diffusion"
// or "ordered". Kernel applies to diffusion, MatrixSize and Amplitude to
// ordered. Palette names either a builtin palette or a StoredPalette.
type DitherPreset struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string    `gorm:"uniqueIndex;not null" json:"name"`
	Algorithm  string    `gorm:"size:32;not null" json:"algorithm"`
	Kernel     string    `gorm:"size:64" json:"kernel,omitempty"`
	MatrixSize int       `json:"matrix_size,omitempty"`
	Amplitude  float64   `json:"amplitude,omitempty"`
	Palette    string    `gorm:"size:128;not null" json:"palette"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (p *DitherPreset) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// GetAllModels returns every model for auto-migration
func GetAllModels() []interface{} {
	return []interface{}{
		&StoredPalette{},
		&DitherPreset{},
	}
}
