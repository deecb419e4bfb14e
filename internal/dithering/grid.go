// Package dithering implements palette reduction with error-diffusion and
// ordered (Bayer) dithering over a plain in-memory pixel grid.
package dithering

import "github.com/pixelbend/pixelbend/internal/colors"

// Grid is the engines' sole working representation: a row-major arena of
// colors. Conversion to and from image.Image lives in the imageprocessing
// package, not here.
type Grid struct {
	width  int
	height int
	pix    []colors.RGB
}

// NewGrid allocates a zeroed (black) grid.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		width:  width,
		height: height,
		pix:    make([]colors.RGB, width*height),
	}
}

// Width returns the grid width in pixels.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in pixels.
func (g *Grid) Height() int { return g.height }

// At returns the color at (x, y). Coordinates must be in bounds.
func (g *Grid) At(x, y int) colors.RGB {
	return g.pix[y*g.width+x]
}

// Set writes the color at (x, y). Coordinates must be in bounds.
func (g *Grid) Set(x, y int, c colors.RGB) {
	g.pix[y*g.width+x] = c
}

// Clone returns a deep copy. Engines never mutate their input grid; they
// work on a clone or a fresh output grid.
func (g *Grid) Clone() *Grid {
	pix := make([]colors.RGB, len(g.pix))
	copy(pix, g.pix)
	return &Grid{width: g.width, height: g.height, pix: pix}
}

// Fill sets every pixel to c.
func (g *Grid) Fill(c colors.RGB) {
	for i := range g.pix {
		g.pix[i] = c
	}
}
