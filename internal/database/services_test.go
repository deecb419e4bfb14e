package database

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	for _, model := range GetAllModels() {
		if err := db.AutoMigrate(model); err != nil {
			t.Fatalf("failed to migrate %T: %v", model, err)
		}
	}
	return db
}

func TestPaletteServiceCRUD(t *testing.T) {
	svc := NewPaletteService(openTestDB(t))

	created, err := svc.CreatePalette("duotone", "two colors", []string{"#000000", "#ff0066"})
	if err != nil {
		t.Fatalf("CreatePalette failed: %v", err)
	}
	if created.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("CreatePalette should assign a UUID")
	}

	fetched, err := svc.GetPaletteByName("duotone")
	if err != nil {
		t.Fatalf("GetPaletteByName failed: %v", err)
	}
	palette, err := fetched.Decode()
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(palette) != 2 {
		t.Fatalf("decoded palette has %d colors, want 2", len(palette))
	}
	if palette[1].R != 255 || palette[1].G != 0 || palette[1].B != 102 {
		t.Errorf("decoded color = %+v, want {255 0 102}", palette[1])
	}

	if _, err := svc.UpdatePalette(created.ID, "updated", []string{"#ffffff"}); err != nil {
		t.Fatalf("UpdatePalette failed: %v", err)
	}
	fetched, err = svc.GetPaletteByID(created.ID)
	if err != nil {
		t.Fatalf("GetPaletteByID failed: %v", err)
	}
	if fetched.Description != "updated" {
		t.Errorf("description = %q, want updated", fetched.Description)
	}

	if err := svc.DeletePalette(created.ID); err != nil {
		t.Fatalf("DeletePalette failed: %v", err)
	}
	if _, err := svc.GetPaletteByID(created.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected record not found after delete, got %v", err)
	}
}

func TestPaletteServiceRejectsBadHex(t *testing.T) {
	svc := NewPaletteService(openTestDB(t))
	if _, err := svc.CreatePalette("broken", "", []string{"not-a-color"}); err == nil {
		t.Error("CreatePalette should reject malformed hex colors")
	}
}

func TestPresetServiceCRUD(t *testing.T) {
	svc := NewPresetService(openTestDB(t))

	preset, err := svc.CreatePreset(&DitherPreset{
		Name:      "smooth",
		Algorithm: "diffusion",
		Kernel:    "jarvis-judice-ninke",
		Palette:   "mono",
	})
	if err != nil {
		t.Fatalf("CreatePreset failed: %v", err)
	}

	fetched, err := svc.GetPresetByName("smooth")
	if err != nil {
		t.Fatalf("GetPresetByName failed: %v", err)
	}
	if fetched.Kernel != "jarvis-judice-ninke" {
		t.Errorf("kernel = %q", fetched.Kernel)
	}

	fetched.Kernel = "atkinson"
	if err := svc.UpdatePreset(fetched); err != nil {
		t.Fatalf("UpdatePreset failed: %v", err)
	}

	if err := svc.DeletePreset(preset.ID); err != nil {
		t.Fatalf("DeletePreset failed: %v", err)
	}
}

func TestPresetServiceValidation(t *testing.T) {
	svc := NewPresetService(openTestDB(t))

	cases := []struct {
		name   string
		preset DitherPreset
	}{
		{"unknown algorithm", DitherPreset{Name: "a", Algorithm: "magic", Palette: "mono"}},
		{"unknown kernel", DitherPreset{Name: "b", Algorithm: "diffusion", Kernel: "nope", Palette: "mono"}},
		{"bad matrix size", DitherPreset{Name: "c", Algorithm: "ordered", MatrixSize: 3, Palette: "mono"}},
	}
	for _, tc := range cases {
		if _, err := svc.CreatePreset(&tc.preset); err == nil {
			t.Errorf("%s: CreatePreset should have failed", tc.name)
		}
	}
}
