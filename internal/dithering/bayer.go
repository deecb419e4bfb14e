package dithering

import (
	"fmt"
	"sync"
)

// BayerMatrix is an N×N threshold table with entries in [0,1). It is
// immutable once built, so a single instance is safely shared by any
// number of concurrent ordered-dither passes.
type BayerMatrix [][]float64

// BuildBayerMatrix constructs the classic recursive threshold matrix for a
// power-of-two size. The size-1 base is [[0]]; each doubling tiles the
// previous matrix M into the block layout
//
//	[ m*M      m*M + 2 ]
//	[ m*M + 3  m*M + 1 ]
//
// with m = size², then divides everything by m. The construction is pure:
// the same size always yields a bit-identical matrix.
func BuildBayerMatrix(size int) (BayerMatrix, error) {
	if size <= 0 || size&(size-1) != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMatrixSize, size)
	}
	return buildBayer(size), nil
}

func buildBayer(size int) BayerMatrix {
	m := make(BayerMatrix, size)
	for i := range m {
		m[i] = make([]float64, size)
	}
	if size == 1 {
		return m
	}

	n := size / 2
	nested := buildBayer(n)
	mult := float64(size * size)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			base := mult * nested[i][j]
			m[i][j] = base / mult
			m[i][j+n] = (base + 2) / mult
			m[i+n][j] = (base + 3) / mult
			m[i+n][j+n] = (base + 1) / mult
		}
	}
	return m
}

var bayerCache sync.Map // size -> BayerMatrix

// bayerMatrixFor memoizes matrices per size. Construction is idempotent,
// so a racing double-build stores identical values.
func bayerMatrixFor(size int) (BayerMatrix, error) {
	if cached, ok := bayerCache.Load(size); ok {
		return cached.(BayerMatrix), nil
	}
	m, err := BuildBayerMatrix(size)
	if err != nil {
		return nil, err
	}
	bayerCache.Store(size, m)
	return m, nil
}
