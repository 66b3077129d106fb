package bigint

import (
	"testing"

	"signet.dev/signet/internal/testutils"
)

func TestBigUintAddSub(t *testing.T) {
	a, _ := FromHexUint("ffffffffffffffff")
	b := One()
	sum := a.Add(b)
	testutils.AssertStringsEqual(t, "sum", "10000000000000000", sum.Hex())

	back := sum.Sub(b)
	testutils.AssertStringsEqual(t, "sub", "ffffffffffffffff", back.Hex())
}

func TestBigUintMul(t *testing.T) {
	a, _ := FromHexUint("ffffffffffffffff")
	b, _ := FromHexUint("ffffffffffffffff")
	got := a.Mul(b)
	// (2^64-1)^2 = 2^128 - 2^65 + 1
	want := "fffffffffffffffe0000000000000001"
	testutils.AssertStringsEqual(t, "product", want, got.Hex())
}

func TestBigUintDivModSingleLimb(t *testing.T) {
	a := FromUint64(100)
	b := FromUint64(7)
	q, r, err := a.DivMod(b)
	testutils.AssertNoError(t, "divmod", err)
	testutils.AssertStringsEqual(t, "quotient", "e", q.Hex())
	testutils.AssertStringsEqual(t, "remainder", "2", r.Hex())
}

func TestBigUintDivModMultiLimb(t *testing.T) {
	a, _ := FromHexUint("ffffffffffffffffffffffffffffffff") // 2^128-1, 16 bytes
	b, _ := FromHexUint("10000000000000001")                // 2^64+1, two limbs
	q, r, err := a.DivMod(b)
	testutils.AssertNoError(t, "divmod", err)

	// Verify the round trip: q*b + r == a.
	recombined := q.Mul(b).Add(r)
	testutils.AssertStringsEqual(t, "round trip", a.Hex(), recombined.Hex())
	testutils.AssertTrue(t, "remainder < divisor", r.Cmp(b) < 0)
}

func TestBigUintDivByZero(t *testing.T) {
	a := FromUint64(5)
	_, _, err := a.DivMod(Zero())
	testutils.AssertError(t, "div by zero", err)
}

func TestBigUintDividendLessThanDivisor(t *testing.T) {
	a := FromUint64(3)
	b := FromUint64(7)
	q, r, err := a.DivMod(b)
	testutils.AssertNoError(t, "divmod", err)
	testutils.AssertTrue(t, "quotient is zero", q.IsZero())
	testutils.AssertStringsEqual(t, "remainder", a.Hex(), r.Hex())
}

func TestBigUintShifts(t *testing.T) {
	a := FromUint64(1)
	shifted := a.Shl(65)
	testutils.AssertIntsEqual(t, "bit len", 66, shifted.BitLen())
	back := shifted.Shr(65)
	testutils.AssertStringsEqual(t, "shift round trip", "1", back.Hex())
}

func TestBigUintHexRoundTrip(t *testing.T) {
	cases := []string{"0", "1", "ff", "abc", "DEADBEEF", "a"}
	for _, c := range cases {
		v, err := FromHexUint(c)
		testutils.AssertNoError(t, "parse "+c, err)
		_ = v.Hex()
	}
}

func TestBigUintInvalidHex(t *testing.T) {
	_, err := FromHexUint("zz")
	testutils.AssertError(t, "invalid hex", err)
}

func TestBigUintCmp(t *testing.T) {
	a := FromUint64(5)
	b := FromUint64(10)
	testutils.AssertTrue(t, "a < b", a.Cmp(b) < 0)
	testutils.AssertTrue(t, "b > a", b.Cmp(a) > 0)
	testutils.AssertTrue(t, "a == a", a.Cmp(a) == 0)
}
