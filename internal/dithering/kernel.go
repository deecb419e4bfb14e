package dithering

import (
	"fmt"
	"sort"
	"strings"
)

// Tap is one destination of diffused error: an offset from the current
// pixel and the weight of the fraction sent there.
type Tap struct {
	DX, DY int
	Weight int
}

// Kernel describes an error-diffusion kernel as plain data. One generic
// engine consumes these; there is no per-kernel code.
type Kernel struct {
	Name    string
	Taps    []Tap
	Divisor int
}

// Validate checks the kernel once, before a pass. The divisor must be
// positive and every tap must point strictly forward in raster order
// (dy > 0, or dy == 0 and dx > 0). A backward tap would write into a
// pixel whose output is already final.
func (k Kernel) Validate() error {
	if k.Divisor <= 0 {
		return fmt.Errorf("kernel %q: %w: divisor %d is not positive", k.Name, ErrInvalidKernel, k.Divisor)
	}
	for _, t := range k.Taps {
		if t.DY < 0 || (t.DY == 0 && t.DX <= 0) {
			return fmt.Errorf("kernel %q: %w: tap (%d,%d) targets an already-visited pixel", k.Name, ErrInvalidKernel, t.DX, t.DY)
		}
		if t.Weight <= 0 {
			return fmt.Errorf("kernel %q: %w: tap (%d,%d) has non-positive weight %d", k.Name, ErrInvalidKernel, t.DX, t.DY, t.Weight)
		}
	}
	return nil
}

// The classic kernels, reproduced exactly. Note Atkinson's weights sum to
// 6 against a divisor of 8: a quarter of the error is discarded on
// purpose, which lightens shadows. Do not normalize it.
var (
	FloydSteinberg = Kernel{
		Name: "floyd-steinberg",
		Taps: []Tap{
			{1, 0, 7},
			{-1, 1, 5}, {0, 1, 3}, {1, 1, 1},
		},
		Divisor: 16,
	}

	JarvisJudiceNinke = Kernel{
		Name: "jarvis-judice-ninke",
		Taps: []Tap{
			{1, 0, 7}, {2, 0, 5},
			{-2, 1, 3}, {-1, 1, 5}, {0, 1, 7}, {1, 1, 5}, {2, 1, 3},
			{-2, 2, 1}, {-1, 2, 3}, {0, 2, 5}, {1, 2, 3}, {2, 2, 1},
		},
		Divisor: 48,
	}

	Atkinson = Kernel{
		Name: "atkinson",
		Taps: []Tap{
			{1, 0, 1}, {2, 0, 1},
			{-1, 1, 1}, {0, 1, 1}, {1, 1, 1},
			{0, 2, 1},
		},
		Divisor: 8,
	}

	Burkes = Kernel{
		Name: "burkes",
		Taps: []Tap{
			{1, 0, 8}, {2, 0, 4},
			{-2, 1, 2}, {-1, 1, 4}, {0, 1, 8}, {1, 1, 4}, {2, 1, 2},
		},
		Divisor: 32,
	}

	Stucki = Kernel{
		Name: "stucki",
		Taps: []Tap{
			{1, 0, 8}, {2, 0, 4},
			{-2, 1, 2}, {-1, 1, 4}, {0, 1, 8}, {1, 1, 4}, {2, 1, 2},
			{-2, 2, 1}, {-1, 2, 2}, {0, 2, 4}, {1, 2, 2}, {2, 2, 1},
		},
		Divisor: 42,
	}

	Sierra = Kernel{
		Name: "sierra",
		Taps: []Tap{
			{1, 0, 5}, {2, 0, 3},
			{-2, 1, 2}, {-1, 1, 4}, {0, 1, 5}, {1, 1, 4}, {2, 1, 2},
			{-1, 2, 2}, {0, 2, 3}, {1, 2, 2},
		},
		Divisor: 32,
	}

	SierraTwoRow = Kernel{
		Name: "sierra-two-row",
		Taps: []Tap{
			{1, 0, 4}, {2, 0, 3},
			{-2, 1, 1}, {-1, 1, 2}, {0, 1, 3}, {1, 1, 2}, {2, 1, 1},
		},
		Divisor: 16,
	}

	SierraLite = Kernel{
		Name: "sierra-lite",
		Taps: []Tap{
			{1, 0, 2},
			{-1, 1, 1}, {0, 1, 1},
		},
		Divisor: 4,
	}

	Basic = Kernel{
		Name:    "basic",
		Taps:    []Tap{{1, 0, 1}},
		Divisor: 1,
	}
)

var kernelTable = map[string]Kernel{
	FloydSteinberg.Name:    FloydSteinberg,
	JarvisJudiceNinke.Name: JarvisJudiceNinke,
	Atkinson.Name:          Atkinson,
	Burkes.Name:            Burkes,
	Stucki.Name:            Stucki,
	Sierra.Name:            Sierra,
	SierraTwoRow.Name:      SierraTwoRow,
	SierraLite.Name:        SierraLite,
	Basic.Name:             Basic,
}

// KernelByName looks up a built-in kernel by its canonical name,
// case-insensitively.
func KernelByName(name string) (Kernel, bool) {
	k, ok := kernelTable[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// KernelNames lists the built-in kernel names, sorted.
func KernelNames() []string {
	names := make([]string, 0, len(kernelTable))
	for name := range kernelTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
