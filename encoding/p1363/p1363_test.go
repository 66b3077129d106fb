package p1363

import (
	"testing"

	"signet.dev/signet/bigint"
	"signet.dev/signet/curve"
	"signet.dev/signet/ecdsa"
	"signet.dev/signet/encoding/hexutil"
	"signet.dev/signet/internal/testutils"
	"signet.dev/signet/modular"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	n, _ := bigint.FromHex("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
	sig := &ecdsa.Signature{
		R: bigint.FromInt64(12345),
		S: bigint.FromInt64(67890),
	}

	encoded := Encode(sig, n)
	testutils.AssertIntsEqual(t, "encoded length", 64, len(encoded))

	decoded, err := Decode(encoded, n)
	testutils.AssertNoError(t, "decode", err)
	testutils.AssertTrue(t, "r matches", decoded.R.Equal(sig.R))
	testutils.AssertTrue(t, "s matches", decoded.S.Equal(sig.S))
}

func TestDecodeRejectsWrongLength(t *testing.T) {
	n, _ := bigint.FromHex("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
	_, err := Decode(make([]byte, 10), n)
	testutils.AssertError(t, "wrong length rejected", err)
}

// TestEncodeKnownAnswerSecp256k1 reproduces a signature by hand from a
// fixed (d, hash, k) triple, bypassing RFC 6979, and checks the P1363
// encoding against a known-answer signature.
func TestEncodeKnownAnswerSecp256k1(t *testing.T) {
	c := curve.Secp256k1()
	d, _ := bigint.FromHex("ebb2c082fd7727890a28ac82f6bdf97bad8de9f5d7c9028692de1a255cad3e0f")
	e, _ := bigint.FromHex("4b688df40bcedbe641ddb16ff0a1842d9c67ea1c3bf63f3e0471baa664531d1a")
	k, _ := bigint.FromHex("49a0d7b786ec9cde0d0721d72804befd06571c974b191efb42ecf322ba9ddd9a")

	r := c.ScalarBaseMul(k)
	rMod, err := modular.Modulo(r.X, c.N)
	testutils.AssertNoError(t, "r mod n", err)
	kInv, err := modular.Invert(k, c.N)
	testutils.AssertNoError(t, "invert k", err)
	ed, err := modular.Modulo(e.Add(rMod.Mul(d)), c.N)
	testutils.AssertNoError(t, "e + r*d mod n", err)
	s, err := modular.Modulo(ed.Mul(kInv), c.N)
	testutils.AssertNoError(t, "s", err)

	sig := &ecdsa.Signature{R: rMod, S: s}
	got := hexutil.Encode(Encode(sig, c.N))
	want := "0x241097efbf8b63bf145c8961dbdf10c310efbb3b2676bbc0f8b08505c9e2f795021006b7838609339e8b415a7f9acb1b661828131aef1ecbc7955dfb01f3ca0e"
	testutils.AssertStringsEqual(t, "P1363 signature matches known-answer secp256k1 vector", want, got)
}

func TestDecodeRejectsZeroR(t *testing.T) {
	n, _ := bigint.FromHex("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
	buf := make([]byte, 64)
	buf[63] = 1 // s = 1, r = 0
	_, err := Decode(buf, n)
	testutils.AssertError(t, "zero r rejected", err)
}
