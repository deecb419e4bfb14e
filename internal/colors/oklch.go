package colors

import "math"

// OKLab is the Björn Ottosson perceptual space. L ranges 0..1.
type OKLab struct {
	L, A, B float64
}

// OKLCH is the cylindrical form of OKLab: lightness 0..1, chroma 0..~0.4,
// hue in degrees.
type OKLCH struct {
	L, C, H float64
}

// ToOKLab converts an RGB color to OKLab.
func (c RGB) ToOKLab() OKLab {
	r := srgbToLinear(float64(c.R) / 255.0)
	g := srgbToLinear(float64(c.G) / 255.0)
	b := srgbToLinear(float64(c.B) / 255.0)

	l := math.Cbrt(0.4122214708*r + 0.5363325363*g + 0.0514459929*b)
	m := math.Cbrt(0.2119034982*r + 0.6806995451*g + 0.1073969566*b)
	s := math.Cbrt(0.0883024619*r + 0.2817188376*g + 0.6299787005*b)

	return OKLab{
		L: 0.2104542553*l + 0.7936177850*m - 0.0040720468*s,
		A: 1.9779984951*l - 2.4285922050*m + 0.4505937099*s,
		B: 0.0259040371*l + 0.7827717662*m - 0.8086757660*s,
	}
}

// ToRGB converts an OKLab color back to RGB, clamping to the sRGB gamut.
func (o OKLab) ToRGB() RGB {
	l := o.L + 0.3963377774*o.A + 0.2158037573*o.B
	m := o.L - 0.1055613458*o.A - 0.0638541728*o.B
	s := o.L - 0.0894841775*o.A - 1.2914855480*o.B

	l, m, s = l*l*l, m*m*m, s*s*s

	r := linearToSrgb(4.0767416621*l - 3.3077115913*m + 0.2309699292*s)
	g := linearToSrgb(-1.2684380046*l + 2.6097574011*m - 0.3413193965*s)
	b := linearToSrgb(-0.0041960863*l - 0.7034186147*m + 1.7076147010*s)

	return RGB{
		R: clampChannel(clamp01(r) * 255),
		G: clampChannel(clamp01(g) * 255),
		B: clampChannel(clamp01(b) * 255),
	}
}

// ToOKLCH converts OKLab to its cylindrical form.
func (o OKLab) ToOKLCH() OKLCH {
	hue := math.Atan2(o.B, o.A) * 180 / math.Pi
	return OKLCH{L: o.L, C: math.Hypot(o.A, o.B), H: NormalizeHue(hue)}
}

// ToOKLab converts OKLCH back to OKLab.
func (o OKLCH) ToOKLab() OKLab {
	c := math.Max(o.C, 0)
	rad := o.H * math.Pi / 180
	return OKLab{L: o.L, A: c * math.Cos(rad), B: c * math.Sin(rad)}
}

// ToOKLCH converts an RGB color to OKLCH.
func (c RGB) ToOKLCH() OKLCH {
	return c.ToOKLab().ToOKLCH()
}

// ToRGB converts an OKLCH color back to RGB.
func (o OKLCH) ToRGB() RGB {
	return o.ToOKLab().ToRGB()
}
