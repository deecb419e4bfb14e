package colors

import "math"

// HSL is a color in the cylindrical hue/saturation/lightness space.
// Saturation and lightness live in [0,1]; hue is degrees and may be any
// value (it is normalized on conversion back to RGB).
type HSL struct {
	H, S, L float64
}

// ToHSL converts an RGB color to HSL.
func (c RGB) ToHSL() HSL {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	chroma := max - min

	var hue float64
	switch {
	case chroma == 0:
		hue = 0
	case max == r:
		hue = math.Mod((g-b)/chroma, 6)
	case max == g:
		hue = (b-r)/chroma + 2
	default:
		hue = (r-g)/chroma + 4
	}
	hue *= 60

	lightness := (max + min) / 2

	var saturation float64
	if lightness != 0 && lightness != 1 {
		saturation = chroma / (1 - math.Abs(2*lightness-1))
	}

	return HSL{H: hue, S: saturation, L: lightness}
}

// ToRGB converts an HSL color back to RGB.
func (h HSL) ToRGB() RGB {
	chroma := (1 - math.Abs(2*h.L-1)) * h.S
	hue := NormalizeHue(h.H) / 60
	x := chroma * (1 - math.Abs(math.Mod(hue, 2)-1))

	var r1, g1, b1 float64
	switch int(hue) {
	case 0:
		r1, g1, b1 = chroma, x, 0
	case 1:
		r1, g1, b1 = x, chroma, 0
	case 2:
		r1, g1, b1 = 0, chroma, x
	case 3:
		r1, g1, b1 = 0, x, chroma
	case 4:
		r1, g1, b1 = x, 0, chroma
	default:
		r1, g1, b1 = chroma, 0, x
	}

	m := h.L - chroma/2
	return RGB{
		R: clampChannel(math.Round((r1 + m) * 255)),
		G: clampChannel(math.Round((g1 + m) * 255)),
		B: clampChannel(math.Round((b1 + m) * 255)),
	}
}

// NormalizeHue wraps a hue in degrees into [0,360).
func NormalizeHue(hue float64) float64 {
	return math.Mod(math.Mod(hue, 360)+360, 360)
}

// QuantizeHue snaps hue to the nearest entry of hues (after normalization).
// With no candidates the hue is returned unchanged.
func QuantizeHue(hue float64, hues []float64) float64 {
	closest := math.MaxFloat64
	normalized := NormalizeHue(hue)
	current := normalized

	for _, h := range hues {
		n := NormalizeHue(h)
		if d := math.Abs(n - normalized); d < closest {
			closest = d
			current = n
		}
	}
	return current
}
