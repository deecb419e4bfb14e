package dithering

import "github.com/pixelbend/pixelbend/internal/colors"

// Diffuse runs a single error-diffusion pass over src and returns a new
// grid whose every pixel is a palette member. src is not modified.
//
// The pass visits pixels in strict raster order. Because Validate rejects
// any tap that is not strictly forward, the accumulator cell for a pixel
// is fully settled before that pixel is visited: every writer is a pixel
// visited no later. That is what makes a single deterministic pass
// possible, and it is also why one image must never be split across
// goroutines. Independent images can run concurrently; nothing here is
// shared.
func Diffuse(src *Grid, kernel Kernel, palette colors.Palette) (*Grid, error) {
	if err := kernel.Validate(); err != nil {
		return nil, err
	}
	if len(palette) == 0 {
		return nil, ErrEmptyPalette
	}

	width, height := src.Width(), src.Height()
	out := NewGrid(width, height)

	// Per-channel residuals, indexed like the grid. Values routinely leave
	// [0,255] while in flight; only quantization pulls them back into the
	// palette.
	acc := make([]vec3, width*height)

	div := float64(kernel.Divisor)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			px := src.At(x, y)

			effective := vec3{
				float64(px.R) + acc[idx][0],
				float64(px.G) + acc[idx][1],
				float64(px.B) + acc[idx][2],
			}

			quantized, residual, err := quantizeVec(effective, palette)
			if err != nil {
				return nil, err
			}
			out.Set(x, y, quantized)

			for _, tap := range kernel.Taps {
				tx, ty := x+tap.DX, y+tap.DY
				if tx < 0 || tx >= width || ty >= height {
					// Off-image taps lose their share of the error. A
					// boundary effect, not a bug.
					continue
				}
				portion := float64(tap.Weight) / div
				tIdx := ty*width + tx
				acc[tIdx][0] += residual[0] * portion
				acc[tIdx][1] += residual[1] * portion
				acc[tIdx][2] += residual[2] * portion
			}
		}
	}

	return out, nil
}
