package colors

import "math"

// Lab is a CIELAB color under the D65 illuminant. L ranges 0..100.
type Lab struct {
	L, A, B float64
}

// LCH is the cylindrical form of Lab: lightness 0..100, chroma 0..~150,
// hue in degrees.
type LCH struct {
	L, C, H float64
}

func srgbToLinear(v float64) float64 {
	if v > 0.04045 {
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return v / 12.92
}

func linearToSrgb(v float64) float64 {
	if v > 0.0031308 {
		return 1.055*math.Pow(v, 1.0/2.4) - 0.055
	}
	return 12.92 * v
}

// ToLab converts an RGB color to CIELAB.
func (c RGB) ToLab() Lab {
	r := srgbToLinear(float64(c.R) / 255.0)
	g := srgbToLinear(float64(c.G) / 255.0)
	b := srgbToLinear(float64(c.B) / 255.0)

	x := (r*0.4124 + g*0.3576 + b*0.1805) / 0.95047
	y := (r*0.2126 + g*0.7152 + b*0.0722) / 1.00000
	z := (r*0.0193 + g*0.1192 + b*0.9505) / 1.08883

	f := func(t float64) float64 {
		if t > 0.008856 {
			return math.Cbrt(t)
		}
		return t*7.787 + 16.0/116.0
	}
	fx, fy, fz := f(x), f(y), f(z)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// ToRGB converts a Lab color back to RGB, clamping to the sRGB gamut.
func (l Lab) ToRGB() RGB {
	fy := (l.L + 16) / 116
	fx := l.A/500 + fy
	fz := fy - l.B/200

	finv := func(t float64) float64 {
		if t*t*t > 0.008856 {
			return t * t * t
		}
		return (t - 16.0/116.0) / 7.787
	}
	x := finv(fx) * 0.95047
	y := finv(fy) * 1.00000
	z := finv(fz) * 1.08883

	r := linearToSrgb(x*3.2406 + y*-1.5372 + z*-0.4986)
	g := linearToSrgb(x*-0.9689 + y*1.8758 + z*0.0415)
	b := linearToSrgb(x*0.0557 + y*-0.2040 + z*1.0570)

	return RGB{
		R: clampChannel(clamp01(r) * 255),
		G: clampChannel(clamp01(g) * 255),
		B: clampChannel(clamp01(b) * 255),
	}
}

// ToLCH converts Lab to its cylindrical form.
func (l Lab) ToLCH() LCH {
	hue := math.Atan2(l.B, l.A) * 180 / math.Pi
	return LCH{
		L: l.L,
		C: math.Hypot(l.A, l.B),
		H: NormalizeHue(hue),
	}
}

// ToLab converts LCH back to Lab. Negative chroma is treated as zero.
func (l LCH) ToLab() Lab {
	c := math.Max(l.C, 0)
	rad := l.H * math.Pi / 180
	return Lab{L: l.L, A: c * math.Cos(rad), B: c * math.Sin(rad)}
}

// ToLCH converts an RGB color to LCH.
func (c RGB) ToLCH() LCH {
	return c.ToLab().ToLCH()
}

// ToRGB converts an LCH color back to RGB.
func (l LCH) ToRGB() RGB {
	return l.ToLab().ToRGB()
}

// Mix interpolates between two LCH colors, with t=0 yielding l and t=1
// yielding other. Mixing in LCH keeps midpoints perceptually sane, which
// RGB interpolation does not.
func (l LCH) Mix(other LCH, t float64) LCH {
	t = clamp01(t)

	// shortest-arc hue interpolation
	dh := math.Mod(other.H-l.H+540, 360) - 180

	return LCH{
		L: l.L + (other.L-l.L)*t,
		C: l.C + (other.C-l.C)*t,
		H: NormalizeHue(l.H + dh*t),
	}
}
