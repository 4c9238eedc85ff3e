// Package probe computes the power-of-two slot-array size for a bounded
// multi-choice map and masks hash values into that index space.
//
// The sizing rule is adapted from db47h/cache's lru.roundSizeUp, which rounds
// a requested capacity up to the next size compatible with its probing
// scheme. Here the scheme is simpler (plain bitwise AND masking), so sizing
// only needs to find the smallest power of two satisfying the load factor,
// not a square grid of probe groups.
package probe

import (
	"math"
	"math/bits"
)

// Size describes a slot array: its length N (a power of two) and the mask
// N-1 used to fold a 64-bit hash into [0, N).
type Size struct {
	N    int
	Mask uint64
}

// Sizing returns the Size for maxCapacity live entries at the given load
// factor: the smallest power of two N such that N >= ceil((maxCapacity+1) /
// loadFactor).
func Sizing(maxCapacity int, loadFactor float64) Size {
	if maxCapacity <= 0 {
		panic("probe: maxCapacity must be > 0")
	}
	if loadFactor <= 0 || loadFactor > 1 {
		panic("probe: loadFactor must be in (0, 1]")
	}
	want := float64(maxCapacity+1) / loadFactor
	n := nextPow2(int(math.Ceil(want)))
	if n < 1 {
		n = 1
	}
	return Size{N: n, Mask: uint64(n - 1)}
}

// Index folds hash into [0, N) using the bitmask modulus.
func (s Size) Index(hash uint64) int {
	return int(hash & s.Mask)
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	// n-1 avoids rounding an already-power-of-two value up to the next one.
	return 1 << bits.Len(uint(n-1))
}
