// Package curve implements short-Weierstrass elliptic curve group
// arithmetic over the bigint/modular kernel: point addition, doubling,
// and scalar multiplication by double-and-add, plus point validation.
//
// This package has no access to any curve library: every group
// operation reduces to the modular field operations in the modular
// package, matching the curve's defining equation y^2 = x^3 + a*x + b
// directly rather than delegating to a constant-time implementation.
// Scalar multiplication here is a plain double-and-add and is not
// constant time; it must not be used where timing side channels matter.
package curve

import (
	"errors"

	"signet.dev/signet/bigint"
	"signet.dev/signet/modular"
)

// ErrPointNotOnCurve reports coordinates that do not satisfy the curve
// equation. No function in this package returns it; IsOnCurve reports
// the check as a bool.
var ErrPointNotOnCurve = errors.New("curve: point does not satisfy curve equation")

// Curve holds the short-Weierstrass parameters y^2 = x^3 + a*x + b mod p,
// along with a base point G of prime order N.
type Curve struct {
	P    bigint.BigInt
	A    bigint.BigInt
	B    bigint.BigInt
	Gx   bigint.BigInt
	Gy   bigint.BigInt
	N    bigint.BigInt
	Name string
}

// Point is an affine point on a Curve. Infinity represents the group
// identity O; when Infinity is true, X and Y are not meaningful.
type Point struct {
	X        bigint.BigInt
	Y        bigint.BigInt
	Infinity bool
}

// Identity returns the point at infinity, the additive identity of the
// curve's group.
func Identity() Point { return Point{Infinity: true} }

// Secp256k1 returns the curve used by Bitcoin and Ethereum:
// y^2 = x^3 + 7 over the prime field of characteristic
// 2^256 - 2^32 - 977.
func Secp256k1() *Curve {
	p, _ := bigint.FromHex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")
	n, _ := bigint.FromHex("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
	gx, _ := bigint.FromHex("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	gy, _ := bigint.FromHex("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")
	return &Curve{
		P:    p,
		A:    bigint.IntZero(),
		B:    bigint.FromInt64(7),
		Gx:   gx,
		Gy:   gy,
		N:    n,
		Name: "secp256k1",
	}
}

// Generator returns the curve's base point.
func (c *Curve) Generator() Point {
	return Point{X: c.Gx, Y: c.Gy}
}

// IsOnCurve reports whether P satisfies y^2 = x^3 + a*x + b mod p. The
// point at infinity is always on the curve. Both coordinates must
// satisfy 0 <= x, y < p.
func (c *Curve) IsOnCurve(P Point) bool {
	if P.Infinity {
		return true
	}
	if P.X.IsNegative() || P.X.Cmp(c.P) >= 0 {
		return false
	}
	if P.Y.IsNegative() || P.Y.Cmp(c.P) >= 0 {
		return false
	}

	lhs, _ := modular.Pow(P.Y, bigint.FromInt64(2), c.P)

	x3, _ := modular.Pow(P.X, bigint.FromInt64(3), c.P)
	ax, _ := modular.Modulo(c.A.Mul(P.X), c.P)
	rhs, _ := modular.Modulo(x3.Add(ax).Add(c.B), c.P)

	return lhs.Equal(rhs)
}

// Double returns P+P. Doubling the point at infinity returns infinity.
func (c *Curve) Double(P Point) Point {
	if P.Infinity || P.Y.IsZero() {
		return Identity()
	}

	two := bigint.FromInt64(2)
	three := bigint.FromInt64(3)

	num, _ := modular.Modulo(three.Mul(P.X).Mul(P.X).Add(c.A), c.P)
	denInv, err := modular.Invert(two.Mul(P.Y), c.P)
	if err != nil {
		// 2y has no inverse only when y == 0, already excluded above.
		panic("curve: unexpected non-invertible slope denominator")
	}
	m, _ := modular.Modulo(num.Mul(denInv), c.P)

	xPrime, _ := modular.Modulo(m.Mul(m).Sub(two.Mul(P.X)), c.P)
	yPrime, _ := modular.Modulo(m.Mul(P.X.Sub(xPrime)).Sub(P.Y), c.P)

	return Point{X: xPrime, Y: yPrime}
}

// Add returns P+Q.
func (c *Curve) Add(P, Q Point) Point {
	if P.Infinity {
		return Q
	}
	if Q.Infinity {
		return P
	}
	if P.X.Equal(Q.X) {
		sumY, _ := modular.Modulo(P.Y.Add(Q.Y), c.P)
		if sumY.IsZero() {
			return Identity()
		}
		return c.Double(P)
	}

	num, _ := modular.Modulo(Q.Y.Sub(P.Y), c.P)
	den, _ := modular.Modulo(Q.X.Sub(P.X), c.P)
	denInv, err := modular.Invert(den, c.P)
	if err != nil {
		panic("curve: unexpected non-invertible slope denominator")
	}
	m, _ := modular.Modulo(num.Mul(denInv), c.P)

	xPrime, _ := modular.Modulo(m.Mul(m).Sub(P.X).Sub(Q.X), c.P)
	yPrime, _ := modular.Modulo(m.Mul(P.X.Sub(xPrime)).Sub(P.Y), c.P)

	return Point{X: xPrime, Y: yPrime}
}

// ScalarMul computes n*P via double-and-add, scanning n from its
// least-significant bit. n must be non-negative; n = 0 returns
// infinity.
func (c *Curve) ScalarMul(n bigint.BigInt, P Point) Point {
	if n.IsZero() || P.Infinity {
		return Identity()
	}

	acc := Identity()
	base := P
	bits := n.BitLen()
	for i := 0; i < bits; i++ {
		if n.Abs().Bit(i) == 1 {
			acc = c.Add(acc, base)
		}
		base = c.Double(base)
	}
	return acc
}

// ScalarBaseMul computes n*G.
func (c *Curve) ScalarBaseMul(n bigint.BigInt) Point {
	return c.ScalarMul(n, c.Generator())
}

// SolveY solves y^2 = x^3 + a*x + b mod p for a given x, returning both
// roots (even-Y first) when x lies on the curve.
func (c *Curve) SolveY(x bigint.BigInt) (yEven, yOdd bigint.BigInt, ok bool) {
	x3, _ := modular.Pow(x, bigint.FromInt64(3), c.P)
	ax, _ := modular.Modulo(c.A.Mul(x), c.P)
	rhs, _ := modular.Modulo(x3.Add(ax).Add(c.B), c.P)

	r1, r2, found := modular.Sqrt(rhs, c.P)
	if !found {
		return bigint.BigInt{}, bigint.BigInt{}, false
	}
	if r1.IsEven() {
		return r1, r2, true
	}
	return r2, r1, true
}
