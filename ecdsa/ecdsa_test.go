package ecdsa

import (
	"testing"

	"signet.dev/signet/bigint"
	"signet.dev/signet/curve"
	"signet.dev/signet/hash/hmac"
	"signet.dev/signet/hash/sha2"
	"signet.dev/signet/internal/testutils"
)

func sha256Hash() hmac.Hash {
	return hmac.Hash{
		BlockBytes:  sha2.Sha256BlockBytes,
		OutputBytes: sha2.Sha256OutputBytes,
		Digest: func(msg []byte) []byte {
			sum := sha2.Sum256(msg)
			return sum[:]
		},
	}
}

func TestSignVerifyRoundTrip(t *testing.T) {
	c := curve.Secp256k1()
	d, _ := bigint.FromHex("cca9fbcc1b41e5a95d369eaa6ddcff73b61a4efaa279cfc6567e8daa39cbaf5")
	priv, err := NewPrivateKey(d, c)
	testutils.AssertNoError(t, "new private key", err)
	pub := priv.Public()

	digest := sha2.Sum256([]byte("test message"))
	sig, err := Sign(digest[:], priv, sha256Hash(), SignOptions{LowS: true})
	testutils.AssertNoError(t, "sign", err)

	ok, err := Verify(digest[:], sig, pub, VerifyOptions{RequireLowS: true})
	testutils.AssertNoError(t, "verify", err)
	testutils.AssertTrue(t, "signature verifies", ok)
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	c := curve.Secp256k1()
	d, _ := bigint.FromHex("cca9fbcc1b41e5a95d369eaa6ddcff73b61a4efaa279cfc6567e8daa39cbaf5")
	priv, _ := NewPrivateKey(d, c)
	pub := priv.Public()

	digest := sha2.Sum256([]byte("test message"))
	sig, err := Sign(digest[:], priv, sha256Hash(), SignOptions{})
	testutils.AssertNoError(t, "sign", err)

	otherDigest := sha2.Sum256([]byte("different message"))
	ok, err := Verify(otherDigest[:], sig, pub, VerifyOptions{})
	testutils.AssertNoError(t, "verify", err)
	testutils.AssertBoolsEqual(t, "tampered message fails", false, ok)
}

func TestSignIsDeterministic(t *testing.T) {
	c := curve.Secp256k1()
	d, _ := bigint.FromHex("cca9fbcc1b41e5a95d369eaa6ddcff73b61a4efaa279cfc6567e8daa39cbaf5")
	priv, _ := NewPrivateKey(d, c)
	digest := sha2.Sum256([]byte("determinism check"))

	sig1, err1 := Sign(digest[:], priv, sha256Hash(), SignOptions{})
	sig2, err2 := Sign(digest[:], priv, sha256Hash(), SignOptions{})
	testutils.AssertNoError(t, "sign 1", err1)
	testutils.AssertNoError(t, "sign 2", err2)
	testutils.AssertTrue(t, "r matches", sig1.R.Equal(sig2.R))
	testutils.AssertTrue(t, "s matches", sig1.S.Equal(sig2.S))
}

func TestLowSCanonicalization(t *testing.T) {
	c := curve.Secp256k1()
	d, _ := bigint.FromHex("cca9fbcc1b41e5a95d369eaa6ddcff73b61a4efaa279cfc6567e8daa39cbaf5")
	priv, _ := NewPrivateKey(d, c)
	digest := sha2.Sum256([]byte("low-s check"))

	sig, err := Sign(digest[:], priv, sha256Hash(), SignOptions{LowS: true})
	testutils.AssertNoError(t, "sign", err)

	half, _, _ := c.N.QuoRem(bigint.FromInt64(2))
	testutils.AssertTrue(t, "s <= n/2", sig.S.Cmp(half) <= 0)
}

func TestRecoverFindsSigningKey(t *testing.T) {
	c := curve.Secp256k1()
	d, _ := bigint.FromHex("cca9fbcc1b41e5a95d369eaa6ddcff73b61a4efaa279cfc6567e8daa39cbaf5")
	priv, _ := NewPrivateKey(d, c)
	pub := priv.Public()
	digest := sha2.Sum256([]byte("recoverable message"))

	sig, err := Sign(digest[:], priv, sha256Hash(), SignOptions{})
	testutils.AssertNoError(t, "sign", err)

	recovered, err := Recover(sig, digest[:], c)
	testutils.AssertNoError(t, "recover", err)
	testutils.AssertTrue(t, "at least one key recovered", len(recovered) >= 1)

	found := false
	for _, k := range recovered {
		if k.Point.X.Equal(pub.Point.X) && k.Point.Y.Equal(pub.Point.Y) {
			found = true
		}
	}
	testutils.AssertTrue(t, "recovered keys include the signer", found)
}

// TestToyCurveKnownAnswerSignature reproduces a textbook signature over
// y^2 = x^3 + 2x + 2 mod 17 by hand, injecting k = 10 directly rather
// than deriving it via RFC 6979, and checks the result against the
// known-answer (r, s) and public key.
func TestToyCurveKnownAnswerSignature(t *testing.T) {
	c := &curve.Curve{
		P:  bigint.FromInt64(17),
		A:  bigint.FromInt64(2),
		B:  bigint.FromInt64(2),
		Gx: bigint.FromInt64(5),
		Gy: bigint.FromInt64(1),
		N:  bigint.FromInt64(19),
	}
	d := bigint.FromInt64(7)
	k := bigint.FromInt64(10)
	e, err := modulo(bigint.FromInt64(26), c.N)
	testutils.AssertNoError(t, "hash mod n", err)

	pub := c.ScalarBaseMul(d)
	testutils.AssertTrue(t, "public key x", pub.X.Equal(bigint.IntZero()))
	testutils.AssertTrue(t, "public key y", pub.Y.Equal(bigint.FromInt64(6)))

	r := c.ScalarBaseMul(k)
	rMod, err := modulo(r.X, c.N)
	testutils.AssertNoError(t, "r mod n", err)
	kInv, err := invert(k, c.N)
	testutils.AssertNoError(t, "invert k", err)
	ed, err := modulo(e.Add(rMod.Mul(d)), c.N)
	testutils.AssertNoError(t, "e + r*d mod n", err)
	s, err := modulo(ed.Mul(kInv), c.N)
	testutils.AssertNoError(t, "s", err)

	testutils.AssertTrue(t, "r == 7", rMod.Equal(bigint.FromInt64(7)))
	testutils.AssertTrue(t, "s == 17", s.Equal(bigint.FromInt64(17)))

	w, err := invert(s, c.N)
	testutils.AssertNoError(t, "invert s", err)
	u, err := modulo(e.Mul(w), c.N)
	testutils.AssertNoError(t, "u", err)
	v, err := modulo(rMod.Mul(w), c.N)
	testutils.AssertNoError(t, "v", err)
	qPrime := c.Add(c.ScalarMul(u, c.Generator()), c.ScalarMul(v, pub))
	qPrimeX, err := modulo(qPrime.X, c.N)
	testutils.AssertNoError(t, "Q' x mod n", err)
	testutils.AssertTrue(t, "verify equation holds", qPrimeX.Equal(rMod))
}

// TestRecoverWithD1HashEqualsOrder exercises the d=1 recovery scenario:
// with the hash equal to secp256k1's order, recovering with the
// signature's own recovery id returns exactly one key (G), while
// ignoring the recovery id returns both candidate roots, G among them.
func TestRecoverWithD1HashEqualsOrder(t *testing.T) {
	c := curve.Secp256k1()
	priv, err := NewPrivateKey(bigint.IntOne(), c)
	testutils.AssertNoError(t, "new private key", err)
	g := priv.Public()

	hashBytes := c.N.Abs().Bytes()

	sig, err := Sign(hashBytes, priv, sha256Hash(), SignOptions{LowS: false})
	testutils.AssertNoError(t, "sign", err)

	withID, err := Recover(sig, hashBytes, c)
	testutils.AssertNoError(t, "recover with id", err)
	testutils.AssertIntsEqual(t, "exactly one key recovered with recovery id", 1, len(withID))
	testutils.AssertTrue(t, "recovered key is G", withID[0].Point.X.Equal(g.Point.X) && withID[0].Point.Y.Equal(g.Point.Y))

	all, err := RecoverAll(sig, hashBytes, c)
	testutils.AssertNoError(t, "recover all", err)
	testutils.AssertIntsEqual(t, "two candidates recovered ignoring recovery id", 2, len(all))

	foundG := false
	for _, k := range all {
		if k.Point.X.Equal(g.Point.X) && k.Point.Y.Equal(g.Point.Y) {
			foundG = true
		}
	}
	testutils.AssertTrue(t, "G is among the unrestricted recovery candidates", foundG)
}

func TestNewPrivateKeyRejectsOutOfRange(t *testing.T) {
	c := curve.Secp256k1()
	_, err := NewPrivateKey(bigint.IntZero(), c)
	testutils.AssertError(t, "zero scalar rejected", err)

	_, err = NewPrivateKey(c.N, c)
	testutils.AssertError(t, "scalar equal to n rejected", err)
}

func TestNewPublicKeyRejectsOffCurvePoint(t *testing.T) {
	c := curve.Secp256k1()
	bogus := curve.Point{X: bigint.FromInt64(1), Y: bigint.FromInt64(2)}
	_, err := NewPublicKey(bogus, c)
	testutils.AssertError(t, "off-curve point rejected", err)
}
