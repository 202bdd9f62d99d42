// Package m selects the floating point width used by kiss3d.
//
// The default build uses float64. Building with -tags math32 switches every
// type, constant and transcendental function in this package to float32, so
// callers never widen or narrow between the two.
package m // import "kiss3d/m"

import "math"

const (
	Zero Float = 0
	Half Float = 0.5
	One  Float = 1
	Two  Float = 2
	Pi   Float = math.Pi
)

// Taken from Eskil Steenberg's talk "How I program C":
// https://www.youtube.com/watch?v=443UNeGrFoM#t=2h09m55s
func frandi(index uint32) uint32 {
	index = (index << 13) ^ index
	return (index*(index*index*15731+789221) + 1376312589) & 0x7fffffff
}

// RandState is a small deterministic generator. It is not safe for
// concurrent use; give each goroutine its own state.
type RandState uint32

func NewRand(seed uint32) *RandState {
	s := RandState(seed)
	return &s
}

// Rand returns a value in [0, 1].
func (rnd *RandState) Rand() Float {
	result := frandi(uint32(*rnd))
	*rnd = RandState(result + 1)
	return Float(result) / Float(0x7fff_ffff)
}

// Signed returns a value in [-1, 1].
func (rnd *RandState) Signed() Float {
	return Two*rnd.Rand() - One
}
