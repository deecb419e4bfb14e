package colors

import (
	"fmt"
	"strings"
)

// RGB is an 8-bit-per-channel sRGB color. It is the working color type for
// every engine in this project: palettes, dithering and effects all operate
// on RGB values in the [0,255] integer domain.
type RGB struct {
	R, G, B uint8
}

// Palette is an ordered list of colors. Order matters: when two entries are
// equally close to a pixel, the earlier entry wins.
type Palette []RGB

// Midpoint is the middle of the 8-bit channel domain.
const Midpoint = 127.5

// New builds an RGB color from channel values.
func New(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// Gray returns the color with all three channels set to v.
func Gray(v uint8) RGB {
	return RGB{R: v, G: v, B: v}
}

// ParseHex parses a "RRGGBB" or "#RRGGBB" hex color string.
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q: expected 6 hex digits", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(strings.ToLower(s), "%02x%02x%02x", &r, &g, &b); err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return RGB{R: r, G: g, B: b}, nil
}

// MustParseHex is ParseHex for compile-time constants; it panics on bad input.
func MustParseHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the "#rrggbb" representation.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Luminance returns the relative luminance in [0,1] using the Rec. 601
// weights, the same formula the grayscale conversion uses.
func (c RGB) Luminance() float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255.0
}

// ParseHexPalette parses a list of hex strings into a palette.
func ParseHexPalette(hexes []string) (Palette, error) {
	p := make(Palette, 0, len(hexes))
	for _, h := range hexes {
		c, err := ParseHex(h)
		if err != nil {
			return nil, err
		}
		p = append(p, c)
	}
	return p, nil
}

// Hexes returns the palette as a list of "#rrggbb" strings.
func (p Palette) Hexes() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.Hex()
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampChannel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
