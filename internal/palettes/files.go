package palettes

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pixelbend/pixelbend/internal/colors"
)

// File is the on-disk YAML palette format:
//
//	name: seafoam
//	colors:
//	  - "#0b3d2e"
//	  - "#2e8b6d"
//	  - "#a8e6cf"
type File struct {
	Name   string   `yaml:"name"`
	Colors []string `yaml:"colors"`
}

// LoadFile reads and validates a single YAML palette file.
func LoadFile(path string) (string, colors.Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read palette file: %w", err)
	}

	var pf File
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return "", nil, fmt.Errorf("failed to parse palette file %s: %w", filepath.Base(path), err)
	}

	name := strings.ToLower(strings.TrimSpace(pf.Name))
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if len(pf.Colors) == 0 {
		return "", nil, fmt.Errorf("palette file %s has no colors", filepath.Base(path))
	}

	palette, err := colors.ParseHexPalette(pf.Colors)
	if err != nil {
		return "", nil, fmt.Errorf("palette file %s: %w", filepath.Base(path), err)
	}
	return name, palette, nil
}

// LoadDir loads every .yaml/.yml palette in dir, keyed by palette name.
// A missing directory is not an error; it just yields no palettes.
func LoadDir(dir string) (map[string]colors.Palette, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return map[string]colors.Palette{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read palette directory: %w", err)
	}

	loaded := make(map[string]colors.Palette)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		name, palette, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		if _, dup := loaded[name]; dup {
			return nil, fmt.Errorf("duplicate palette name %q in %s", name, dir)
		}
		loaded[name] = palette
	}
	return loaded, nil
}
