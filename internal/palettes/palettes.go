// Package palettes provides the built-in dithering palettes and loading of
// user palettes from YAML files.
package palettes

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pixelbend/pixelbend/internal/colors"
)

// Mono is the two-color black-and-white palette.
var Mono = colors.Palette{colors.Black, colors.White}

// Named artistic palettes carried over from earlier experiments.
var (
	Nightlife = colors.Palette{
		colors.White,
		colors.MustParseHex("003355"),
		colors.MustParseHex("0088aa"),
		colors.MustParseHex("00ffdd"),
		colors.MustParseHex("660055"),
		colors.MustParseHex("bb00aa"),
		colors.MustParseHex("ff00ee"),
		colors.MustParseHex("ffee44"),
		colors.Black,
	}

	Ember = colors.Palette{
		colors.Black,
		colors.Rust,
		colors.Orange,
		colors.Gold,
		colors.White,
	}
)

// WebSafe is the classic 216-color palette: every channel stepped through
// the six values 0x00, 0x33 ... 0xff.
func WebSafe() colors.Palette {
	p := make(colors.Palette, 0, 216)
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p = append(p, colors.RGB{R: uint8(r * 51), G: uint8(g * 51), B: uint8(b * 51)})
			}
		}
	}
	return p
}

// EightBit is the 3-3-2 bit-allocation palette: 8 levels of red and green,
// 4 of blue, 256 colors total.
func EightBit() colors.Palette {
	p := make(colors.Palette, 0, 256)
	for r := 0; r < 8; r++ {
		for g := 0; g < 8; g++ {
			for b := 0; b < 4; b++ {
				p = append(p, colors.RGB{
					R: uint8(r * 255 / 7),
					G: uint8(g * 255 / 7),
					B: uint8(b * 255 / 3),
				})
			}
		}
	}
	return p
}

// Grayscale returns an evenly spaced n-level gray palette, n >= 2.
func Grayscale(levels int) (colors.Palette, error) {
	if levels < 2 {
		return nil, fmt.Errorf("grayscale palette needs at least 2 levels, got %d", levels)
	}
	p := make(colors.Palette, levels)
	for i := 0; i < levels; i++ {
		p[i] = colors.Gray(uint8(i * 255 / (levels - 1)))
	}
	return p, nil
}

func builtins() map[string]colors.Palette {
	return map[string]colors.Palette{
		"mono":      Mono,
		"web-safe":  WebSafe(),
		"eight-bit": EightBit(),
		"nightlife": Nightlife,
		"ember":     Ember,
	}
}

// Builtin looks up a built-in palette by name, case-insensitively.
func Builtin(name string) (colors.Palette, bool) {
	p, ok := builtins()[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// BuiltinNames lists the built-in palette names, sorted.
func BuiltinNames() []string {
	m := builtins()
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
