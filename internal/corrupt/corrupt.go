// Package corrupt implements databending: deliberate byte-level damage to
// encoded file data for glitch aesthetics. Benders never touch the first
// HeaderSize bytes of the input, which keeps most containers decodable.
package corrupt

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// Bender mangles a byte region in place.
type Bender interface {
	Name() string
	Bend(region []byte)
}

// Reverse flips the region end to end.
type Reverse struct{}

func (Reverse) Name() string { return "reverse" }

func (Reverse) Bend(region []byte) {
	for i, j := 0, len(region)-1; i < j; i, j = i+1, j-1 {
		region[i], region[j] = region[j], region[i]
	}
}

// Voidout zeroes the region.
type Voidout struct{}

func (Voidout) Name() string { return "voidout" }

func (Voidout) Bend(region []byte) {
	for i := range region {
		region[i] = 0
	}
}

// Increment adds a constant to every byte, wrapping.
type Increment struct {
	By uint8
}

func (Increment) Name() string { return "increment" }

func (inc Increment) Bend(region []byte) {
	for i := range region {
		region[i] += inc.By
	}
}

// Accelerate adds a growing offset to each byte: the first byte gains
// Start, each following byte one Step more, all wrapping.
type Accelerate struct {
	Start uint8
	Step  uint8
}

func (Accelerate) Name() string { return "accelerate" }

func (a Accelerate) Bend(region []byte) {
	inc := a.Start
	for i := range region {
		region[i] += inc
		inc += a.Step
	}
}

// Swap exchanges two equally sized chunks of the region. Swaps whose
// chunks overlap or run past the region are skipped, leaving the bytes
// unchanged.
type Swap struct {
	First, Second int
	ChunkSize     int
}

func (Swap) Name() string { return "swap" }

func (s Swap) Bend(region []byte) {
	size := s.ChunkSize
	if size <= 0 {
		return
	}
	a, b := s.First, s.Second
	if a > b {
		a, b = b, a
	}
	if a < 0 || b+size > len(region) || a+size > b {
		return
	}
	for i := 0; i < size; i++ {
		region[a+i], region[b+i] = region[b+i], region[a+i]
	}
}

// Loop repeats the first ChunkSize bytes of the region across the rest.
type Loop struct {
	ChunkSize int
}

func (Loop) Name() string { return "loop" }

func (l Loop) Bend(region []byte) {
	if l.ChunkSize <= 0 || l.ChunkSize >= len(region) {
		return
	}
	template := region[:l.ChunkSize]
	rest := region[l.ChunkSize:]
	for i := range rest {
		rest[i] = template[i%len(template)]
	}
}

// Shuffle permutes the region with a seeded generator, so the same seed
// always produces the same damage.
type Shuffle struct {
	Seed int64
}

func (Shuffle) Name() string { return "shuffle" }

func (s Shuffle) Bend(region []byte) {
	rng := rand.New(rand.NewSource(s.Seed))
	rng.Shuffle(len(region), func(i, j int) {
		region[i], region[j] = region[j], region[i]
	})
}

// Apply runs benders in order over a copy of data, leaving headerSize
// leading bytes untouched. The input slice is not modified.
func Apply(data []byte, headerSize int, benders ...Bender) ([]byte, error) {
	if headerSize < 0 {
		return nil, fmt.Errorf("header size %d is negative", headerSize)
	}
	if headerSize >= len(data) {
		return nil, fmt.Errorf("header size %d leaves no bytes to corrupt (input is %d bytes)", headerSize, len(data))
	}

	out := make([]byte, len(data))
	copy(out, data)
	region := out[headerSize:]
	for _, b := range benders {
		b.Bend(region)
	}
	return out, nil
}

// ByName constructs a bender from a name and generic parameters, for the
// HTTP surface. Unknown names list the available ones in the error.
func ByName(name string, amount int, chunkSize int, seed int64) (Bender, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "reverse":
		return Reverse{}, nil
	case "voidout":
		return Voidout{}, nil
	case "increment":
		return Increment{By: uint8(amount)}, nil
	case "accelerate":
		return Accelerate{Start: uint8(amount), Step: 1}, nil
	case "swap":
		return Swap{First: 0, Second: chunkSize * 2, ChunkSize: chunkSize}, nil
	case "loop":
		return Loop{ChunkSize: chunkSize}, nil
	case "shuffle":
		return Shuffle{Seed: seed}, nil
	default:
		return nil, fmt.Errorf("unknown corruption %q (available: %s)", name, strings.Join(Names(), ", "))
	}
}

// Names lists the available bender names, sorted.
func Names() []string {
	names := []string{"reverse", "voidout", "increment", "accelerate", "swap", "loop", "shuffle"}
	sort.Strings(names)
	return names
}
