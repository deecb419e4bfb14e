// Package effects provides pointwise color filters: each effect maps one
// color to another with no neighborhood dependency, so applying one to a
// grid is a trivially parallel map.
package effects

import (
	"math"

	"github.com/pixelbend/pixelbend/internal/colors"
	"github.com/pixelbend/pixelbend/internal/dithering"
)

// Effect transforms a single color. Implementations must be pure: same
// input, same output, no state.
type Effect interface {
	Apply(c colors.RGB) colors.RGB
}

// ApplyToGrid maps an effect over every pixel, returning a new grid.
func ApplyToGrid(src *dithering.Grid, effect Effect) *dithering.Grid {
	out := src.Clone()
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			out.Set(x, y, effect.Apply(src.At(x, y)))
		}
	}
	return out
}

// chromaBound caps LCH chroma when saturating; values beyond this are
// outside every practical gamut.
const chromaBound = 128.0

// HueRotate rotates the hue by the given number of degrees.
type HueRotate struct {
	Degrees float64
}

func (e HueRotate) Apply(c colors.RGB) colors.RGB {
	lch := c.ToLCH()
	lch.H = colors.NormalizeHue(lch.H + e.Degrees)
	return lch.ToRGB()
}

// Contrast scales channel distance from mid-gray. 1 is identity, values
// in (0,1) flatten, negative values invert (-1 is a full inversion).
type Contrast struct {
	Factor float64
}

func (e Contrast) Apply(c colors.RGB) colors.RGB {
	adjust := func(v uint8) uint8 {
		n := float64(v) / 255.0
		n = (n-0.5)*e.Factor + 0.5
		return uint8(math.Round(math.Min(math.Max(n, 0), 1) * 255))
	}
	return colors.RGB{R: adjust(c.R), G: adjust(c.G), B: adjust(c.B)}
}

// Brighten moves lightness toward white (positive factor) or black
// (negative), proportionally to the remaining headroom.
type Brighten struct {
	Factor float64
}

func (e Brighten) Apply(c colors.RGB) colors.RGB {
	lch := c.ToLCH()
	if e.Factor >= 0 {
		lch.L += (100 - lch.L) * math.Min(e.Factor, 1)
	} else {
		lch.L += lch.L * math.Max(e.Factor, -1)
	}
	return lch.ToRGB()
}

// Saturate moves chroma toward the bound (positive factor) or toward
// gray (negative).
type Saturate struct {
	Factor float64
}

func (e Saturate) Apply(c colors.RGB) colors.RGB {
	lch := c.ToLCH()
	if e.Factor >= 0 {
		lch.C += (chromaBound - lch.C) * math.Min(e.Factor, 1)
	} else {
		lch.C += lch.C * math.Max(e.Factor, -1)
	}
	return lch.ToRGB()
}

// QuantizeHue snaps each pixel's hue to the nearest of the given hues,
// leaving lightness and chroma untouched. Useful for forcing a color
// scheme without flattening detail.
type QuantizeHue struct {
	Hues []float64
}

func (e QuantizeHue) Apply(c colors.RGB) colors.RGB {
	if len(e.Hues) == 0 {
		return c
	}
	lch := c.ToLCH()
	lch.H = colors.QuantizeHue(lch.H, e.Hues)
	return lch.ToRGB()
}

// MultiplyHue multiplies the hue angle by a factor.
type MultiplyHue struct {
	Factor float64
}

func (e MultiplyHue) Apply(c colors.RGB) colors.RGB {
	lch := c.ToLCH()
	lch.H = colors.NormalizeHue(lch.H * e.Factor)
	return lch.ToRGB()
}

// Invert flips every channel. Equivalent to Contrast{-1}.
type Invert struct{}

func (Invert) Apply(c colors.RGB) colors.RGB {
	return colors.RGB{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}
