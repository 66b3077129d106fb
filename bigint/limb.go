// Package bigint implements arbitrary-precision integer arithmetic over
// fixed-radix limb vectors: an unsigned kernel (add, sub, cmp, schoolbook
// multiply, Knuth Algorithm D division, shifts) plus a signed wrapper
// built on top of it.
//
// The base b of the positional system is 2^W, where W is the limb
// bit-width (64 on every platform this package targets). Every exported
// BigUint holds its limbs least-significant first and is always
// normalized: length >= 1, and the most-significant limb is non-zero
// unless the value is zero, in which case the limb slice is exactly
// []Word{0}.
package bigint

import "math/bits"

// Word is a single limb: an unsigned machine word used as a digit in the
// base-2^WordBits positional system.
type Word = uint64

// WordBits is W, the limb bit-width.
const WordBits = bits.UintSize

// carryingAdd computes a+b+carryIn without overflow, returning the sum
// truncated to a limb and the carry out (0 or 1). It is branch-free and
// forms the inner loop of every BigUint addition.
func carryingAdd(a, b, carryIn Word) (sum, carryOut Word) {
	s, c0 := bits.Add64(a, b, 0)
	s, c1 := bits.Add64(s, 0, carryIn)
	return s, c0 + c1
}

// borrowingSub computes a-b-borrowIn without overflow, returning the
// difference truncated to a limb and the borrow out (0 or 1).
func borrowingSub(a, b, borrowIn Word) (diff, borrowOut Word) {
	d, b0 := bits.Sub64(a, b, 0)
	d, b1 := bits.Sub64(d, 0, borrowIn)
	return d, b0 + b1
}

// mulWide multiplies two limbs and returns the double-width product as
// (high, low) halves.
func mulWide(a, b Word) (hi, lo Word) {
	return bits.Mul64(a, b)
}

// divWide divides the double-width dividend (hi, lo) by a single-limb
// divisor, returning the quotient and remainder. The caller must ensure
// hi < divisor so the quotient fits in a single limb.
func divWide(hi, lo, divisor Word) (quo, rem Word) {
	q, r := bits.Div64(hi, lo, divisor)
	return q, r
}

func leadingZeros(w Word) int {
	return bits.LeadingZeros64(w)
}

func trailingZerosWord(w Word) int {
	return bits.TrailingZeros64(w)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
