package dithering

import "github.com/pixelbend/pixelbend/internal/colors"

// DefaultAmplitude is the default strength of the threshold perturbation
// in ordered dithering: one third of the channel range.
const DefaultAmplitude = 255.0 / 3.0

// OrderedDither quantizes src against palette after perturbing each pixel
// by the Bayer threshold pattern of the given size. matrixSize must be a
// positive power of two; amplitude scales the perturbation (pass
// DefaultAmplitude if in doubt; values <= 0 fall back to it).
//
// Every pixel is handled independently: the threshold depends only on the
// coordinate, and no error flows between pixels. That is the structural
// difference from error diffusion, and it means the pass could be run in
// any pixel order, or in parallel, with identical output.
func OrderedDither(src *Grid, matrixSize int, palette colors.Palette, amplitude float64) (*Grid, error) {
	matrix, err := bayerMatrixFor(matrixSize)
	if err != nil {
		return nil, err
	}
	if len(palette) == 0 {
		return nil, ErrEmptyPalette
	}
	if amplitude <= 0 {
		amplitude = DefaultAmplitude
	}

	width, height := src.Width(), src.Height()
	out := NewGrid(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			px := src.At(x, y)
			offset := (matrix[x%matrixSize][y%matrixSize] - 0.5) * amplitude

			perturbed := vec3{
				float64(px.R) + offset,
				float64(px.G) + offset,
				float64(px.B) + offset,
			}

			quantized, _, err := quantizeVec(perturbed, palette)
			if err != nil {
				return nil, err
			}
			out.Set(x, y, quantized)
		}
	}

	return out, nil
}
