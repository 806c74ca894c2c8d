// Package randsrc provides the random sources injected into the
// recommendation generator and the price simulator.
package randsrc

import (
	"math/rand"
	"time"

	"equity-desk/internal/interfaces"
)

// New returns a math/rand source. A zero seed picks a time based one.
func New(seed int64) interfaces.RandSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Sequence replays scripted values. Once a script is exhausted it wraps around,
// and an empty script yields zero.
type Sequence struct {
	Floats []float64
	Ints   []int

	fi, ii int
}

var _ interfaces.RandSource = (*Sequence)(nil)

func (s *Sequence) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[s.fi%len(s.Floats)]
	s.fi++
	return v
}

// Intn returns the next scripted int clamped into [0, n).
func (s *Sequence) Intn(n int) int {
	if n <= 0 {
		panic("randsrc: invalid argument to Intn")
	}
	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[s.ii%len(s.Ints)]
	s.ii++
	if v < 0 {
		v = -v
	}
	return v % n
}
