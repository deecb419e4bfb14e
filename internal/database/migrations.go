package database

import (
	"fmt"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/pixelbend/pixelbend/internal/logging"
)

// RunMigrations runs any pending database migrations using gormigrate
func RunMigrations() error {
	logging.InfoWithComponent(logging.ComponentDatabase, "Running database migrations")

	m := gormigrate.New(DB, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "202606010000_add_amplitude_to_dither_presets",
			Migrate: func(tx *gorm.DB) error {
				if tx.Migrator().HasColumn(&DitherPreset{}, "amplitude") {
					return nil
				}
				if err := tx.Exec("ALTER TABLE dither_presets ADD COLUMN amplitude REAL DEFAULT 0").Error; err != nil {
					return fmt.Errorf("failed to add amplitude column: %w", err)
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error {
				// SQLite doesn't support dropping columns easily, so we'll leave it
				return nil
			},
		},
		{
			ID: "202606150000_add_description_to_stored_palettes",
			Migrate: func(tx *gorm.DB) error {
				if tx.Migrator().HasColumn(&StoredPalette{}, "description") {
					return nil
				}
				if err := tx.Exec("ALTER TABLE stored_palettes ADD COLUMN description TEXT DEFAULT ''").Error; err != nil {
					return fmt.Errorf("failed to add description column: %w", err)
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error {
				return nil
			},
		},
	})

	// Set initial schema if this is a fresh database
	m.InitSchema(func(tx *gorm.DB) error {
		for _, model := range GetAllModels() {
			if err := tx.AutoMigrate(model); err != nil {
				return fmt.Errorf("failed to migrate %T: %w", model, err)
			}
		}
		return nil
	})

	if err := m.Migrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logging.InfoWithComponent(logging.ComponentDatabase, "Migrations completed")
	return nil
}
