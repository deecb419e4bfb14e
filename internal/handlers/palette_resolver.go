package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pixelbend/pixelbend/internal/colors"
	"github.com/pixelbend/pixelbend/internal/config"
	"github.com/pixelbend/pixelbend/internal/database"
	"github.com/pixelbend/pixelbend/internal/logging"
	"github.com/pixelbend/pixelbend/internal/palettes"
)

// ResolvePalette turns a request's palette parameters into colors.
// An explicit hex list wins; otherwise the name is looked up in the
// builtins, then in PALETTE_DIR files, then in stored palettes.
func ResolvePalette(name string, hexes []string) (colors.Palette, error) {
	if len(hexes) > 0 {
		return colors.ParseHexPalette(hexes)
	}

	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = "mono"
	}

	if palette, ok := palettes.Builtin(name); ok {
		return palette, nil
	}

	// "grayscale-8" style names build an even gray ramp on the fly.
	if levels, ok := strings.CutPrefix(name, "grayscale-"); ok {
		n, err := strconv.Atoi(levels)
		if err != nil {
			return nil, fmt.Errorf("bad grayscale palette %q", name)
		}
		return palettes.Grayscale(n)
	}

	if dir := config.Get("PALETTE_DIR", ""); dir != "" {
		filePalettes, err := palettes.LoadDir(dir)
		if err != nil {
			logging.WarnWithComponent(logging.ComponentPalettes, "Failed to load palette directory", "dir", dir, "error", err)
		} else if palette, ok := filePalettes[name]; ok {
			return palette, nil
		}
	}

	if db := database.GetDB(); db != nil {
		stored, err := database.NewPaletteService(db).GetPaletteByName(name)
		if err == nil {
			return stored.Decode()
		}
	}

	return nil, fmt.Errorf("unknown palette %q", name)
}
