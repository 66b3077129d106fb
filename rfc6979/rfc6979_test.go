package rfc6979

import (
	"testing"

	"signet.dev/signet/bigint"
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

func TestGenerateKIsDeterministic(t *testing.T) {
	n, _ := bigint.FromHex("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
	d, _ := bigint.FromHex("cca9fbcc1b41e5a95d369eaa6ddcff73b61a4efaa279cfc6567e8daa39cbaf50")
	h := sha2.Sum256([]byte("sample"))

	k1 := GenerateK(n, h[:], d, sha256Hash(), nil)
	k2 := GenerateK(n, h[:], d, sha256Hash(), nil)
	testutils.AssertTrue(t, "k is deterministic for identical inputs", k1.Equal(k2))
	testutils.AssertTrue(t, "0 < k", k1.Cmp(bigint.IntZero()) > 0)
	testutils.AssertTrue(t, "k < n", k1.Cmp(n) < 0)
}

func TestGenerateKVariesWithMessage(t *testing.T) {
	n, _ := bigint.FromHex("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
	d, _ := bigint.FromHex("cca9fbcc1b41e5a95d369eaa6ddcff73b61a4efaa279cfc6567e8daa39cbaf50")
	h1 := sha2.Sum256([]byte("sample"))
	h2 := sha2.Sum256([]byte("different message"))

	k1 := GenerateK(n, h1[:], d, sha256Hash(), nil)
	k2 := GenerateK(n, h2[:], d, sha256Hash(), nil)
	testutils.AssertTrue(t, "k differs across distinct digests", !k1.Equal(k2))
}

func TestGenerateKKnownAnswerP192ish(t *testing.T) {
	n, _ := bigint.FromHex("4000000000000000000020108A2E0CC0D99F8A5EF")
	d, _ := bigint.FromHex("09A4D6792295A7F730FC3F2B49CBC0F62E862272F")
	h := sha2.Sum256([]byte("sample"))

	k := GenerateK(n, h[:], d, sha256Hash(), nil)
	want, _ := bigint.FromHex("23af4074c90a02b3fe61d286d5c87f425e6bdd81b")
	testutils.AssertTrue(t, "k matches the known-answer P-192-ish RFC 6979 vector", k.Equal(want))
}

func TestGenerateKWithExtraEntropyDiffers(t *testing.T) {
	n, _ := bigint.FromHex("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
	d, _ := bigint.FromHex("cca9fbcc1b41e5a95d369eaa6ddcff73b61a4efaa279cfc6567e8daa39cbaf50")
	h := sha2.Sum256([]byte("sample"))

	k1 := GenerateK(n, h[:], d, sha256Hash(), nil)
	k2 := GenerateK(n, h[:], d, sha256Hash(), []byte("extra-entropy-bytes-here-32bytes"))
	testutils.AssertTrue(t, "extra entropy perturbs k", !k1.Equal(k2))
}
