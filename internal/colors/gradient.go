package colors

import "fmt"

// GradientMethod selects the space lightness steps are taken in when
// building a shade gradient from a single color.
type GradientMethod string

const (
	GradientHSL   GradientMethod = "hsl"
	GradientLCH   GradientMethod = "lch"
	GradientOKLCH GradientMethod = "oklch"
)

// BuildGradient generates `shades` variants of base spaced evenly across
// the lightness axis of the chosen space. The base color contributes its
// hue and saturation/chroma; its own lightness is ignored. Useful for
// turning one accent color into a dithering palette.
func BuildGradient(base RGB, shades int, method GradientMethod) (Palette, error) {
	if shades < 1 {
		return nil, fmt.Errorf("gradient needs at least one shade, got %d", shades)
	}

	step := 1.0 / float64(shades+1)
	out := make(Palette, 0, shades)

	for i := 1; i <= shades; i++ {
		t := float64(i) * step
		var c RGB
		switch method {
		case GradientHSL:
			h := base.ToHSL()
			h.L = t
			c = h.ToRGB()
		case GradientLCH:
			l := base.ToLCH()
			l.L = t * 100
			c = l.ToRGB()
		case GradientOKLCH:
			o := base.ToOKLCH()
			o.L = t
			c = o.ToRGB()
		default:
			return nil, fmt.Errorf("unknown gradient method %q", method)
		}
		out = append(out, c)
	}
	return out, nil
}
