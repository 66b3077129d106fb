// Package rfc6979 implements deterministic ECDSA nonce generation per
// RFC 6979, parameterized over the bigint/modular types and the
// hash/hmac package's generic HMAC.
package rfc6979

import (
	"signet.dev/signet/bigint"
	"signet.dev/signet/hash/hmac"
	"signet.dev/signet/modular"
)

// GenerateK derives the per-signature nonce k for private key d and
// message digest h under curve order n, using the HMAC construction hm.
// extraEntropy, when non-nil, is mixed into the initial seed material;
// supplying it relaxes the deterministic-output property in exchange for
// resistance to fault-injection and Minerva-style side-channel attacks.
func GenerateK(n bigint.BigInt, h []byte, d bigint.BigInt, hm hmac.Hash, extraEntropy []byte) bigint.BigInt {
	qlen := n.BitLen()
	rlenBytes := (qlen + 7) / 8

	t := int2octets(d, rlenBytes)
	t = append(t, bits2octets(h, n, qlen, rlenBytes)...)
	if extraEntropy != nil {
		padded := make([]byte, hm.OutputBytes)
		copy(padded, extraEntropy)
		t = append(t, padded...)
	}

	v := repeatByte(0x01, hm.OutputBytes)
	k := repeatByte(0x00, hm.OutputBytes)

	k = hmac.Sum(hm, k, concat(v, []byte{0x00}, t))
	v = hmac.Sum(hm, k, v)
	k = hmac.Sum(hm, k, concat(v, []byte{0x01}, t))
	v = hmac.Sum(hm, k, v)

	for {
		var tPrime []byte
		for len(tPrime)*8 < qlen {
			v = hmac.Sum(hm, k, v)
			tPrime = append(tPrime, v...)
		}
		candidate := bits2int(tPrime, qlen)
		if !candidate.IsZero() && candidate.Cmp(n) < 0 {
			return candidate
		}
		k = hmac.Sum(hm, k, concat(v, []byte{0x00}))
		v = hmac.Sum(hm, k, v)
	}
}

func repeatByte(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}

func concat(parts ...[]byte) []byte {
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	out := make([]byte, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// bits2int interprets b as a big-endian non-negative integer; if its bit
// length exceeds qlen, it is right-shifted by the excess.
func bits2int(b []byte, qlen int) bigint.BigInt {
	v := bigint.FromBigUint(bigint.FromBytesBigEndian(b))
	blen := len(b) * 8
	if blen > qlen {
		v = v.Shr(blen - qlen)
	}
	return v
}

// int2octets renders x as a big-endian byte string of exactly
// rlenBytes, left-padded with zeros. The caller guarantees
// 0 <= x < 2^(8*rlenBytes).
func int2octets(x bigint.BigInt, rlenBytes int) []byte {
	raw := x.Abs().Bytes()
	if len(raw) >= rlenBytes {
		return raw[len(raw)-rlenBytes:]
	}
	out := make([]byte, rlenBytes)
	copy(out[rlenBytes-len(raw):], raw)
	return out
}

// bits2octets computes int2octets(bits2int(b) mod n, rlenBytes).
func bits2octets(b []byte, n bigint.BigInt, qlen, rlenBytes int) []byte {
	z1 := bits2int(b, qlen)
	z2, err := modular.Modulo(z1, n)
	if err != nil {
		z2 = z1
	}
	return int2octets(z2, rlenBytes)
}
