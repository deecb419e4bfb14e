package dithering

import "github.com/pixelbend/pixelbend/internal/colors"

// vec3 carries per-channel values during engine math. Unlike colors.RGB it
// is unclamped: accumulated error pushes effective values outside [0,255]
// and that is intentional.
type vec3 [3]float64

func rgbToVec(c colors.RGB) vec3 {
	return vec3{float64(c.R), float64(c.G), float64(c.B)}
}

// distanceVec scores perceptual dissimilarity as a weighted squared
// euclidean metric. The weight triple flips on the first color's red
// channel crossing the domain midpoint: (3,4,2) above, (2,4,3) below.
// The asymmetry is a deliberate brightness-sensitivity heuristic and is
// part of the contract; do not symmetrize it.
func distanceVec(a, b vec3) float64 {
	var wr, wg, wb float64
	if a[0] > colors.Midpoint {
		wr, wg, wb = 3, 4, 2
	} else {
		wr, wg, wb = 2, 4, 3
	}

	dr := a[0] - b[0]
	dg := a[1] - b[1]
	db := a[2] - b[2]

	return wr*dr*dr + wg*dg*dg + wb*db*db
}

// quantizeVec finds the palette entry closest to c and the signed residual
// c - entry. The scan keeps its minimum with a strict less-than, so the
// first entry at the minimum distance wins ties.
func quantizeVec(c vec3, palette colors.Palette) (colors.RGB, vec3, error) {
	if len(palette) == 0 {
		return colors.RGB{}, vec3{}, ErrEmptyPalette
	}

	best := palette[0]
	bestDist := distanceVec(c, rgbToVec(palette[0]))

	for _, entry := range palette[1:] {
		if d := distanceVec(c, rgbToVec(entry)); d < bestDist {
			best = entry
			bestDist = d
		}
	}

	bv := rgbToVec(best)
	return best, vec3{c[0] - bv[0], c[1] - bv[1], c[2] - bv[2]}, nil
}

// Distance scores the perceptual dissimilarity of two colors. Zero means
// identical; the result is otherwise an unnormalized nonnegative score
// only meaningful relative to other distances.
func Distance(a, b colors.RGB) float64 {
	return distanceVec(rgbToVec(a), rgbToVec(b))
}

// Quantize returns the palette entry nearest to c together with the
// per-channel quantization error c - entry. The error is signed and
// unclamped. Fails with ErrEmptyPalette on an empty palette.
func Quantize(c colors.RGB, palette colors.Palette) (colors.RGB, [3]float64, error) {
	q, e, err := quantizeVec(rgbToVec(c), palette)
	return q, [3]float64(e), err
}
