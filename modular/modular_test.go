package modular

import (
	"testing"

	"signet.dev/signet/bigint"
	"signet.dev/signet/internal/testutils"
)

func TestModuloNegative(t *testing.T) {
	a := bigint.FromInt64(-3)
	n := bigint.FromInt64(7)
	got, err := Modulo(a, n)
	testutils.AssertNoError(t, "modulo", err)
	testutils.AssertStringsEqual(t, "result", "4", got.Hex())
}

func TestInvertSmallPrime(t *testing.T) {
	a := bigint.FromInt64(3)
	n := bigint.FromInt64(11)
	inv, err := Invert(a, n)
	testutils.AssertNoError(t, "invert", err)

	product, err := Modulo(a.Mul(inv), n)
	testutils.AssertNoError(t, "modulo product", err)
	testutils.AssertStringsEqual(t, "a*inv mod n", "1", product.Hex())
}

func TestInvertNotInvertible(t *testing.T) {
	a := bigint.FromInt64(4)
	n := bigint.FromInt64(8)
	_, err := Invert(a, n)
	testutils.AssertError(t, "invert of non-unit", err)
}

func TestInvertLargeModulus(t *testing.T) {
	// secp256k1 field prime.
	p, err := bigint.FromHex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")
	testutils.AssertNoError(t, "parse p", err)
	a := bigint.FromInt64(1234567891011)

	inv, err := Invert(a, p)
	testutils.AssertNoError(t, "invert", err)

	product, err := Modulo(a.Mul(inv), p)
	testutils.AssertNoError(t, "modulo product", err)
	testutils.AssertStringsEqual(t, "a*inv mod p", "1", product.Hex())
}

func TestPowBasic(t *testing.T) {
	a := bigint.FromInt64(4)
	e := bigint.FromInt64(13)
	n := bigint.FromInt64(497)
	got, err := Pow(a, e, n)
	testutils.AssertNoError(t, "pow", err)
	// 4^13 mod 497 = 445
	testutils.AssertStringsEqual(t, "result", "1bd", got.Hex())
}

func TestSqrtResidue(t *testing.T) {
	p := bigint.FromInt64(13)
	a := bigint.FromInt64(4)
	r1, r2, ok := Sqrt(a, p)
	testutils.AssertTrue(t, "4 is a residue mod 13", ok)

	sq1, _ := Pow(r1, bigint.FromInt64(2), p)
	sq2, _ := Pow(r2, bigint.FromInt64(2), p)
	testutils.AssertStringsEqual(t, "r1^2 mod p", "4", sq1.Hex())
	testutils.AssertStringsEqual(t, "r2^2 mod p", "4", sq2.Hex())

	sum, _ := Modulo(r1.Add(r2), p)
	testutils.AssertTrue(t, "r1+r2 == 0 mod p", sum.IsZero())
}

func TestSqrtNonResidue(t *testing.T) {
	p := bigint.FromInt64(13)
	a := bigint.FromInt64(2) // 2 is a non-residue mod 13
	_, _, ok := Sqrt(a, p)
	testutils.AssertBoolsEqual(t, "2 is not a residue mod 13", false, ok)
}
