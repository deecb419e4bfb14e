package effects

import (
	"fmt"
	"sort"

	"github.com/pixelbend/pixelbend/internal/colors"
)

// GradientStop pairs a color with the luminance threshold below which it
// applies.
type GradientStop struct {
	Color     colors.RGB
	Threshold float64
}

// GradientMap recolors each pixel by its LCH lightness: the pixel is mixed
// between the two stops bracketing its lightness. Mixing happens in LCH,
// not RGB, so midpoints stay perceptually reasonable.
//
// A lightness at or above the highest threshold clamps to the last stop.
// (An earlier incarnation of this filter silently left such pixels
// unmodified; that was a bug, not a feature.)
type GradientMap struct {
	stops []GradientStop
}

// NewGradientMap builds a gradient map from stops, sorted by threshold.
// At least one stop is required.
func NewGradientMap(stops []GradientStop) (*GradientMap, error) {
	if len(stops) == 0 {
		return nil, fmt.Errorf("gradient map needs at least one stop")
	}
	sorted := make([]GradientStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Threshold < sorted[j].Threshold
	})
	return &GradientMap{stops: sorted}, nil
}

// Grayscale is a ready-made black-to-white gradient map.
func Grayscale() *GradientMap {
	gm, _ := NewGradientMap([]GradientStop{
		{Color: colors.Black, Threshold: 0},
		{Color: colors.White, Threshold: 1},
	})
	return gm
}

func (e *GradientMap) Apply(c colors.RGB) colors.RGB {
	l := c.ToLCH().L / 100

	idx := sort.Search(len(e.stops), func(i int) bool {
		return l < e.stops[i].Threshold
	})

	switch {
	case idx == len(e.stops):
		// at or beyond the top threshold: clamp to the last stop
		return e.stops[len(e.stops)-1].Color
	case idx == 0:
		return e.stops[0].Color
	}

	prev, curr := e.stops[idx-1], e.stops[idx]
	span := curr.Threshold - prev.Threshold
	if span <= 0 {
		return curr.Color
	}
	ratio := (l - prev.Threshold) / span

	mixed := prev.Color.ToLCH().Mix(curr.Color.ToLCH(), ratio)
	return mixed.ToRGB()
}
