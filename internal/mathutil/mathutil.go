package mathutil

import (
	"math"

	"golang.org/x/exp/constraints"
)

// FromBits packs an MSB-first sequence of bits into an unsigned integer.
// If bs is wider than T, the leading bits are shifted out.
func FromBits[T constraints.Unsigned](bs []bool) T {
	var result T
	for _, b := range bs {
		result <<= 1
		if b {
			result |= 1
		}
	}
	return result
}

// ToBits stores the lowest len(dst) bits of v into dst, MSB-first.
func ToBits[T constraints.Unsigned](v T, dst []bool) {
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = v&1 == 1
		v >>= 1
	}
}

// Mask returns a number with the lowest 'width' bits set.
func Mask(width int) uint64 {
	switch {
	case width <= 0:
		return 0
	case width >= 64:
		return math.MaxUint64
	}
	return 1<<uint(width) - 1
}

// Bias returns the exponent bias 2^(width-1)-1 for an exponent field of given width.
// width must be positive.
func Bias(width int) uint64 {
	return 1<<uint(width-1) - 1
}

// Clamp returns v limited to [lo, hi].
func Clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AllSet reports whether every bit in bs is set. Empty input gives true.
func AllSet(bs []bool) bool {
	for _, b := range bs {
		if !b {
			return false
		}
	}
	return true
}

// AnySet reports whether at least one bit in bs is set.
func AnySet(bs []bool) bool {
	for _, b := range bs {
		if b {
			return true
		}
	}
	return false
}

// Resize returns bs with length n. Kept bits are preserved,
// new bits are false. The backing array is reused when possible.
func Resize(bs []bool, n int) []bool {
	if n <= len(bs) {
		return bs[:n]
	}
	if n <= cap(bs) {
		// clear the stale tail left by a previous shrink.
		tail := bs[len(bs):n]
		for i := range tail {
			tail[i] = false
		}
		return bs[:n]
	}
	result := make([]bool, n)
	copy(result, bs)
	return result
}
