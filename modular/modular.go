// Package modular implements modular arithmetic on top of the bigint
// kernel: reduction, inversion via an extended-Euclidean algorithm
// accelerated by Lehmer's digit-partial-cosequence technique, modular
// exponentiation by square-and-multiply, and Tonelli-Shanks modular
// square roots.
package modular

import (
	"errors"

	"signet.dev/signet/bigint"
)

// ErrNotInvertible is returned by Invert when gcd(a, n) != 1.
var ErrNotInvertible = errors.New("modular: element has no inverse")

// ErrModulusNotPositive is returned when a modulus <= 0 is supplied.
var ErrModulusNotPositive = errors.New("modular: modulus must be positive")

// Modulo returns the least non-negative representative of a mod n, for
// n > 0: it truncation-divides and then adds n back if the remainder
// came out negative.
func Modulo(a, n bigint.BigInt) (bigint.BigInt, error) {
	if !n.IsNegative() && n.IsZero() {
		return bigint.BigInt{}, ErrModulusNotPositive
	}
	if n.IsNegative() {
		return bigint.BigInt{}, ErrModulusNotPositive
	}
	_, r, err := a.QuoRem(n)
	if err != nil {
		return bigint.BigInt{}, err
	}
	if r.IsNegative() {
		r = r.Add(n)
	}
	return r, nil
}

// Invert computes a^-1 mod n for n > 0 via the extended Euclidean
// algorithm, accelerated by Lehmer's digit-partial-cosequence
// calculation whenever the working remainder spans more than one limb.
// It returns ErrNotInvertible when gcd(a, n) != 1.
func Invert(a, n bigint.BigInt) (bigint.BigInt, error) {
	if n.IsNegative() || n.IsZero() {
		return bigint.BigInt{}, ErrModulusNotPositive
	}
	aMod, err := Modulo(a, n)
	if err != nil {
		return bigint.BigInt{}, err
	}

	// Running state: (r0, r1) is the remainder pair, (s0, s1) tracks the
	// Bezout coefficient of the original a. Lehmer's technique replaces
	// many of the big.Int quotient/remainder steps below with single-word
	// arithmetic whenever both remainders are wide, falling back to one
	// full-precision step whenever the fast path fails to make progress.
	r0, r1 := n, aMod
	s0, s1 := bigint.IntZero(), bigint.IntOne()

	for !r1.IsZero() {
		if r0.Abs().BitLen() > bigint.WordBits && r1.Abs().BitLen() > bigint.WordBits {
			u0, u1, v0, v1, progressed := lehmerCosequence(r0.Abs(), r1.Abs())
			if progressed {
				newR0 := mulAddU(r0, r1, u0, u1)
				newR1 := mulAddU(r0, r1, v0, v1)
				r0, r1 = newR0, newR1
				newS0 := mulAddU(s0, s1, u0, u1)
				newS1 := mulAddU(s0, s1, v0, v1)
				s0, s1 = newS0, newS1
				continue
			}
		}

		q, rem, err := r0.QuoRem(r1)
		if err != nil {
			return bigint.BigInt{}, err
		}
		r0, r1 = r1, rem
		s0, s1 = s1, s0.Sub(q.Mul(s1))
	}

	if !r0.Abs().Equal(bigint.One()) {
		return bigint.BigInt{}, ErrNotInvertible
	}

	inv, err := Modulo(s0, n)
	if err != nil {
		return bigint.BigInt{}, err
	}
	return inv, nil
}

// cosequenceEntry is a signed single-limb matrix entry: a magnitude
// plus an explicit sign flag, which mulAddU applies.
type cosequenceEntry struct {
	mag  bigint.Word
	neg  bool
}

// lehmerCosequence runs Lehmer's single-word inner loop on the leading
// words of a and b (a >= b > 0), returning a 2x2 matrix
// [[u0,u1],[v0,v1]] such that applying it to (a,b) reproduces the effect
// of the quotient steps performed. progressed is false when the loop
// could not advance past the identity matrix, signaling the caller to
// fall back to one full-precision Euclidean step.
func lehmerCosequence(a, b bigint.BigUint) (u0, u1, v0, v1 cosequenceEntry, progressed bool) {
	shift := a.BitLen() - bigint.WordBits
	if shift < 0 {
		shift = 0
	}
	ahat := topWord(a, shift)
	bhat := topWord(b, shift)

	// u tracks a's row of the matrix, v tracks b's row; both begin as the
	// identity and accumulate signed single-word entries whose sign
	// alternates with parity, matching the alternating-sign convention
	// of Lehmer's algorithm.
	u0m, u1m := bigint.Word(1), bigint.Word(0)
	v0m, v1m := bigint.Word(0), bigint.Word(1)
	u0Neg, u1Neg, v0Neg, v1Neg := false, false, true, false

	for bhat != 0 {
		q := ahat / bhat

		// Stop (and fall back) when a cosequence entry would overflow a
		// word. Otherwise apply Collins's acceptance condition to the
		// post-step remainders (bhat, nb), conservatively for both
		// cofactor rows: nb >= |new entry| and bhat-nb >= |new entry| +
		// |previous entry|.
		newV0m, newV0Neg, ok1 := subScaled(u0m, u0Neg, q, v0m, v0Neg)
		newV1m, newV1Neg, ok2 := subScaled(u1m, u1Neg, q, v1m, v1Neg)
		if !ok1 || !ok2 {
			break
		}
		nb := ahat - q*bhat
		if nb < newV0m || nb < newV1m ||
			bhat-nb < addMag(newV0m, v0m) || bhat-nb < addMag(newV1m, v1m) {
			break
		}

		ahat, bhat = bhat, ahat-q*bhat
		u0m, u1m, u0Neg, u1Neg = v0m, v1m, v0Neg, v1Neg
		v0m, v1m, v0Neg, v1Neg = newV0m, newV1m, newV0Neg, newV1Neg
	}

	progressed = v0m != 0 || v1m != 1 || v1Neg
	return cosequenceEntry{u0m, u0Neg}, cosequenceEntry{u1m, u1Neg},
		cosequenceEntry{v0m, v0Neg}, cosequenceEntry{v1m, v1Neg}, progressed
}

func topWord(x bigint.BigUint, shift int) bigint.Word {
	shifted := x.Shr(shift)
	limbs := shifted.Limbs()
	if len(limbs) == 0 {
		return 0
	}
	return limbs[0]
}

func addMag(a, b bigint.Word) bigint.Word { return a + b }

// subScaled computes x - q*y for single-word signed magnitudes,
// reporting ok=false if the unsigned intermediate q*y would overflow a
// word (the caller treats that as "acceleration unsafe, fall back").
func subScaled(x bigint.Word, xNeg bool, q bigint.Word, y bigint.Word, yNeg bool) (mag bigint.Word, neg bool, ok bool) {
	if y != 0 && q > (^bigint.Word(0))/y {
		return 0, false, false
	}
	qy := q * y
	qyNeg := yNeg

	// x - (qy), both signed single-word values; resolve via sign cases.
	if xNeg == qyNeg {
		if x >= qy {
			return x - qy, xNeg, true
		}
		return qy - x, !xNeg, true
	}
	return x + qy, xNeg, true
}

// mulAddU applies one row (rowA, rowB) of a cosequence matrix to the
// pair (a, b): it computes rowA*a + rowB*b, each entry's magnitude
// negated per its neg flag, using full bigint.BigInt arithmetic, since
// a and b may be arbitrarily wide even though the matrix entries are
// single words.
func mulAddU(a, b bigint.BigInt, rowA, rowB cosequenceEntry) bigint.BigInt {
	ta := a.Mul(bigint.FromUint64Int(uint64(rowA.mag)))
	if rowA.neg {
		ta = ta.Neg()
	}
	tb := b.Mul(bigint.FromUint64Int(uint64(rowB.mag)))
	if rowB.neg {
		tb = tb.Neg()
	}
	return ta.Add(tb)
}

// Pow computes a^e mod n via square-and-multiply, scanning the
// exponent's bits from least to most significant.
func Pow(a, e, n bigint.BigInt) (bigint.BigInt, error) {
	if n.IsNegative() || n.IsZero() {
		return bigint.BigInt{}, ErrModulusNotPositive
	}
	if e.IsNegative() {
		inv, err := Invert(a, n)
		if err != nil {
			return bigint.BigInt{}, err
		}
		return Pow(inv, e.Neg(), n)
	}

	result := bigint.IntOne()
	base, err := Modulo(a, n)
	if err != nil {
		return bigint.BigInt{}, err
	}

	bits := e.BitLen()
	for i := 0; i < bits; i++ {
		if e.Abs().Bit(i) == 1 {
			result, err = Modulo(result.Mul(base), n)
			if err != nil {
				return bigint.BigInt{}, err
			}
		}
		base, err = Modulo(base.Mul(base), n)
		if err != nil {
			return bigint.BigInt{}, err
		}
	}
	return result, nil
}

// Sqrt computes the two square roots of a modulo an odd prime p > 2
// using Tonelli-Shanks, returning ok=false when a is a quadratic
// non-residue. Behavior is undefined (the loop may fail to terminate)
// if p is composite; callers must supply a prime.
func Sqrt(a, p bigint.BigInt) (r1, r2 bigint.BigInt, ok bool) {
	two := bigint.FromInt64(2)
	pMinus1 := p.Sub(bigint.IntOne())
	half, _, _ := pMinus1.QuoRem(two)

	euler, err := Pow(a, half, p)
	if err != nil || !euler.Equal(bigint.IntOne()) {
		return bigint.BigInt{}, bigint.BigInt{}, false
	}

	// Factor p-1 = s * 2^e with s odd.
	s := pMinus1
	e := 0
	for s.IsEven() {
		s, _, _ = s.QuoRem(two)
		e++
	}

	// Find a quadratic non-residue z by trial.
	z := bigint.FromInt64(2)
	for {
		zp, _ := Pow(z, half, p)
		if !zp.Equal(bigint.IntOne()) {
			break
		}
		z = z.Add(bigint.IntOne())
	}

	sPlus1Half, _, _ := s.Add(bigint.IntOne()).QuoRem(two)
	x, _ := Pow(a, sPlus1Half, p)
	b, _ := Pow(a, s, p)
	g, _ := Pow(z, s, p)
	r := e

	for {
		if b.Equal(bigint.IntOne()) {
			r2 = p.Sub(x)
			r2, _ = Modulo(r2, p)
			return x, r2, true
		}
		m := 0
		bm := b
		for !bm.Equal(bigint.IntOne()) {
			bm, _ = Modulo(bm.Mul(bm), p)
			m++
		}
		exp := bigint.FromInt64(1).Shl(r - m - 1)
		gs, _ := Pow(g, exp, p)
		x, _ = Modulo(x.Mul(gs), p)
		gs2, _ := Pow(gs, two, p)
		b, _ = Modulo(b.Mul(gs2), p)
		g = gs2
		r = m
	}
}
