// Package imageprocessing adapts between standard library images and the
// engines' grid representation, and handles resizing, decoding and
// encoding. No dithering logic lives here.
package imageprocessing

import (
	"image"
	"image/color"

	"github.com/pixelbend/pixelbend/internal/colors"
	"github.com/pixelbend/pixelbend/internal/dithering"
)

// ToGrid converts any image into the engines' working representation,
// flattening alpha against black.
func ToGrid(img image.Image) *dithering.Grid {
	if img == nil {
		return nil
	}

	bounds := img.Bounds()
	grid := dithering.NewGrid(bounds.Dx(), bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			grid.Set(x-bounds.Min.X, y-bounds.Min.Y, colors.RGB{R: c.R, G: c.G, B: c.B})
		}
	}
	return grid
}

// ToImage converts a grid back into an opaque RGBA image.
func ToImage(grid *dithering.Grid) *image.RGBA {
	if grid == nil {
		return nil
	}

	img := image.NewRGBA(image.Rect(0, 0, grid.Width(), grid.Height()))
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			c := grid.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return img
}

// ToGrayscale replaces each pixel with its Rec. 601 luminance, keeping the
// grid representation.
func ToGrayscale(grid *dithering.Grid) *dithering.Grid {
	if grid == nil {
		return nil
	}

	out := dithering.NewGrid(grid.Width(), grid.Height())
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			v := uint8(grid.At(x, y).Luminance()*255 + 0.5)
			out.Set(x, y, colors.Gray(v))
		}
	}
	return out
}
