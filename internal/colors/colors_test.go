package colors

import (
	"math"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"000000", Black, false},
		{"#ffffff", White, false},
		{"#FF6600", Orange, false},
		{" 0088aa ", RGB{0x00, 0x88, 0xaa}, false},
		{"fff", RGB{}, true},
		{"gggggg", RGB{}, true},
		{"", RGB{}, true},
		{"#1234567", RGB{}, true},
	}

	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseHex(%q): expected error, got %v", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHex(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, c := range []RGB{Black, White, Rust, Aquamarine, {R: 1, G: 2, B: 3}} {
		parsed, err := ParseHex(c.Hex())
		if err != nil {
			t.Fatalf("ParseHex(%q): %v", c.Hex(), err)
		}
		if parsed != c {
			t.Errorf("round trip %v -> %q -> %v", c, c.Hex(), parsed)
		}
	}
}

func TestMustParseHexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustParseHex("nope")
}

func TestLuminanceEndpoints(t *testing.T) {
	if l := Black.Luminance(); l != 0 {
		t.Errorf("black luminance = %v", l)
	}
	if l := White.Luminance(); math.Abs(l-1) > 1e-9 {
		t.Errorf("white luminance = %v", l)
	}
	if g, r := Green.Luminance(), Red.Luminance(); g <= r {
		t.Errorf("green (%v) should be brighter than red (%v)", g, r)
	}
}

func chanDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d
}

func assertClose(t *testing.T, got, want RGB, tolerance int, label string) {
	t.Helper()
	if chanDiff(got.R, want.R) > tolerance ||
		chanDiff(got.G, want.G) > tolerance ||
		chanDiff(got.B, want.B) > tolerance {
		t.Errorf("%s: got %v, want within %d of %v", label, got, tolerance, want)
	}
}

func TestHSLRoundTrip(t *testing.T) {
	for _, c := range []RGB{Black, White, Red, Green, Blue, Gold, Pink, {R: 13, G: 77, B: 201}} {
		assertClose(t, c.ToHSL().ToRGB(), c, 1, "HSL "+c.Hex())
	}
}

func TestHSLKnownValues(t *testing.T) {
	h := Red.ToHSL()
	if h.H != 0 || math.Abs(h.S-1) > 1e-9 || math.Abs(h.L-0.5) > 1e-9 {
		t.Errorf("red HSL = %+v, want {0 1 0.5}", h)
	}

	h = Blue.ToHSL()
	if math.Abs(h.H-240) > 1e-9 {
		t.Errorf("blue hue = %v, want 240", h.H)
	}

	h = Gray(128).ToHSL()
	if h.S != 0 {
		t.Errorf("gray saturation = %v, want 0", h.S)
	}
}

func TestLabKnownValue(t *testing.T) {
	// CIELAB of pure red under D65, matching the reference implementation
	lab := Red.ToLab()
	if math.Abs(lab.L-53.23) > 0.1 || math.Abs(lab.A-80.11) > 0.2 || math.Abs(lab.B-67.22) > 0.2 {
		t.Errorf("red Lab = %+v, want approx {53.23 80.11 67.22}", lab)
	}
}

func TestLabRoundTrip(t *testing.T) {
	for _, c := range []RGB{Black, White, Red, Rust, Aquamarine, {R: 40, G: 90, B: 160}} {
		assertClose(t, c.ToLab().ToRGB(), c, 1, "Lab "+c.Hex())
	}
}

func TestLCHRoundTrip(t *testing.T) {
	for _, c := range []RGB{Red, Gold, Magenta, {R: 70, G: 140, B: 30}} {
		assertClose(t, c.ToLCH().ToRGB(), c, 2, "LCH "+c.Hex())
	}
}

func TestOKLCHRoundTrip(t *testing.T) {
	for _, c := range []RGB{Black, White, Red, Cyan, {R: 200, G: 60, B: 120}} {
		assertClose(t, c.ToOKLCH().ToRGB(), c, 2, "OKLCH "+c.Hex())
	}
}

func TestOKLabWhite(t *testing.T) {
	o := White.ToOKLab()
	if math.Abs(o.L-1) > 0.001 {
		t.Errorf("white OKLab lightness = %v, want 1", o.L)
	}
}

func TestNormalizeHue(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{360, 0},
		{-90, 270},
		{725, 5},
		{-725, 355},
	}
	for _, tt := range tests {
		if got := NormalizeHue(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeHue(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLCHMix(t *testing.T) {
	a := Red.ToLCH()
	b := Gold.ToLCH()

	if got := a.Mix(b, 0); math.Abs(got.L-a.L) > 1e-9 {
		t.Errorf("Mix(t=0) moved lightness: %v", got)
	}
	if got := a.Mix(b, 1); math.Abs(got.L-b.L) > 1e-9 {
		t.Errorf("Mix(t=1) lightness = %v, want %v", got.L, b.L)
	}

	mid := a.Mix(b, 0.5)
	if mid.L < math.Min(a.L, b.L) || mid.L > math.Max(a.L, b.L) {
		t.Errorf("midpoint lightness %v outside endpoints", mid.L)
	}
}

func TestBuildGradient(t *testing.T) {
	for _, method := range []GradientMethod{GradientHSL, GradientLCH, GradientOKLCH} {
		p, err := BuildGradient(Rust, 5, method)
		if err != nil {
			t.Fatalf("%s: %v", method, err)
		}
		if len(p) != 5 {
			t.Fatalf("%s: got %d shades", method, len(p))
		}
		// lightness must increase monotonically
		prev := -1.0
		for _, c := range p {
			l := c.Luminance()
			if l < prev-0.02 {
				t.Fatalf("%s: lightness not increasing: %v", method, p)
			}
			prev = l
		}
	}

	if _, err := BuildGradient(Rust, 0, GradientLCH); err == nil {
		t.Fatal("expected error for zero shades")
	}
	if _, err := BuildGradient(Rust, 3, "bogus"); err == nil {
		t.Fatal("expected error for unknown method")
	}
}
