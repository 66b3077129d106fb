// Package p1363 implements IEEE P1363 fixed-width signature encoding:
// r and s concatenated, each big-endian and left-zero-padded to
// ceil(bit_len(n)/8) bytes.
package p1363

import (
	"errors"

	"signet.dev/signet/bigint"
	"signet.dev/signet/ecdsa"
)

// ErrInvalidLength is returned by Decode when the input is not exactly
// twice the per-element width.
var ErrInvalidLength = errors.New("p1363: invalid signature length")

// ErrOutOfRange is returned by Decode when a decoded scalar fails
// 0 < value < n.
var ErrOutOfRange = errors.New("p1363: r or s out of range")

func elementByteLen(n bigint.BigInt) int {
	return (n.BitLen() + 7) / 8
}

// Encode renders sig.R and sig.S as a fixed-width concatenation under
// curve order n.
func Encode(sig *ecdsa.Signature, n bigint.BigInt) []byte {
	w := elementByteLen(n)
	out := make([]byte, 2*w)
	rb := sig.R.Abs().Bytes()
	sb := sig.S.Abs().Bytes()
	copy(out[w-len(rb):w], rb)
	copy(out[2*w-len(sb):], sb)
	return out
}

// Decode parses a fixed-width signature encoding under curve order n,
// rejecting any length other than exactly 2*elementByteLen(n) and any
// r or s outside (0, n).
func Decode(b []byte, n bigint.BigInt) (*ecdsa.Signature, error) {
	w := elementByteLen(n)
	if len(b) != 2*w {
		return nil, ErrInvalidLength
	}
	r := bigint.FromBigUint(bigint.FromBytesBigEndian(b[:w]))
	s := bigint.FromBigUint(bigint.FromBytesBigEndian(b[w:]))
	if r.IsZero() || r.Cmp(n) >= 0 || s.IsZero() || s.Cmp(n) >= 0 {
		return nil, ErrOutOfRange
	}
	return &ecdsa.Signature{R: r, S: s}, nil
}
