// Package ecdsa implements sign, verify, and public-key recovery over
// the curve/bigint/modular stack, using rfc6979 for deterministic
// nonce generation rather than drawing k directly from the OS entropy
// source.
package ecdsa

import (
	"errors"

	"signet.dev/signet/bigint"
	"signet.dev/signet/curve"
	"signet.dev/signet/hash/hmac"
	"signet.dev/signet/modular"
	"signet.dev/signet/rfc6979"
)

var (
	// ErrEmptyHash is returned when sign or verify is given a
	// zero-length digest.
	ErrEmptyHash = errors.New("ecdsa: hash must not be empty")
	// ErrHashLengthMismatch is returned when the digest's bit length
	// does not match the curve order's bit length and the caller has
	// not opted out of the check.
	ErrHashLengthMismatch = errors.New("ecdsa: hash bit length does not match curve order")
	// ErrZeroHash is returned when the truncated hash integer is zero
	// and the caller has not opted out of the check.
	ErrZeroHash = errors.New("ecdsa: hash truncates to zero")
	// ErrInvalidPrivateKey is returned when a private scalar is not in
	// the range [1, n).
	ErrInvalidPrivateKey = errors.New("ecdsa: private key scalar out of range")
	// ErrInvalidPublicKey is returned when a public key point fails
	// curve membership or is the identity.
	ErrInvalidPublicKey = errors.New("ecdsa: public key point is invalid")
	// ErrLowSViolation is returned by verify when low-S is required but
	// the signature's s exceeds n/2.
	ErrLowSViolation = errors.New("ecdsa: signature does not satisfy low-S requirement")
)

// RecoveryId identifies which of the (up to four) candidate R points
// produced a signature, encoding the X-coordinate range and Y parity of
// R as a 2-bit value.
type RecoveryId uint8

const (
	LowXEvenY RecoveryId = iota
	LowXOddY
	HighXEvenY
	HighXOddY
)

// HighX reports whether the recovery id's R had x >= n (i.e. x = r + n).
func (id RecoveryId) HighX() bool { return id&2 != 0 }

// OddY reports whether the recovery id's R had an odd y-coordinate.
func (id RecoveryId) OddY() bool { return id&1 != 0 }

// recoveryIdFrom builds a RecoveryId from its two component bits.
func recoveryIdFrom(highX, oddY bool) RecoveryId {
	var id RecoveryId
	if highX {
		id |= 2
	}
	if oddY {
		id |= 1
	}
	return id
}

// flipParity toggles the low (Y-parity) bit, used when low-S
// canonicalization negates s and must also flip R's effective parity
// bookkeeping.
func (id RecoveryId) flipParity() RecoveryId { return id ^ 1 }

// PrivateKey is a scalar d in [1, n) together with the curve it is
// defined over.
type PrivateKey struct {
	D     bigint.BigInt
	Curve *curve.Curve
}

// PublicKey is a validated curve point, never the identity.
type PublicKey struct {
	Point curve.Point
	Curve *curve.Curve
}

// Signature is an (r, s) pair with the recovery id recorded at
// signing time.
type Signature struct {
	R          bigint.BigInt
	S          bigint.BigInt
	RecoveryID RecoveryId
}

// NewPrivateKey validates that 0 < d < n before constructing the key.
func NewPrivateKey(d bigint.BigInt, c *curve.Curve) (*PrivateKey, error) {
	if d.IsZero() || d.IsNegative() || d.Cmp(c.N) >= 0 {
		return nil, ErrInvalidPrivateKey
	}
	return &PrivateKey{D: d, Curve: c}, nil
}

// Public derives the public key d*G.
func (priv *PrivateKey) Public() *PublicKey {
	return &PublicKey{Point: priv.Curve.ScalarBaseMul(priv.D), Curve: priv.Curve}
}

// NewPublicKey validates P before admitting it: P must satisfy the
// curve equation, lie within [0, p) on both coordinates, and not be the
// identity element.
func NewPublicKey(p curve.Point, c *curve.Curve) (*PublicKey, error) {
	if p.Infinity || !c.IsOnCurve(p) {
		return nil, ErrInvalidPublicKey
	}
	return &PublicKey{Point: p, Curve: c}, nil
}

// SignOptions controls optional deviations from the strict procedure.
type SignOptions struct {
	ExtraEntropy    []byte
	LowS            bool
	AllowZeroHash   bool
	AllowLenMismatch bool
}

// VerifyOptions controls optional deviations from the strict procedure.
type VerifyOptions struct {
	RequireLowS      bool
	AllowLenMismatch bool
}

// truncateHash implements the "leading bit_len(n) bits" truncation
// shared by sign and verify: interpret hashBytes as a big-endian
// integer and, if it is wider than the curve order, discard the excess
// low-order bits by right-shifting.
func truncateHash(hashBytes []byte, n bigint.BigInt) bigint.BigInt {
	e := bigint.FromBigUint(bigint.FromBytesBigEndian(hashBytes))
	qlen := n.BitLen()
	hlen := len(hashBytes) * 8
	if hlen > qlen {
		e = e.Shr(hlen - qlen)
	}
	return e
}

func validateHash(hashBytes []byte, n bigint.BigInt, allowLenMismatch bool) error {
	if len(hashBytes) == 0 {
		return ErrEmptyHash
	}
	if !allowLenMismatch && len(hashBytes)*8 != n.BitLen() {
		return ErrHashLengthMismatch
	}
	return nil
}

// Sign produces a signature over hashBytes using priv, drawing the
// per-signature nonce deterministically via RFC 6979 under hm.
func Sign(hashBytes []byte, priv *PrivateKey, hm hmac.Hash, opts SignOptions) (*Signature, error) {
	c := priv.Curve
	if err := validateHash(hashBytes, c.N, opts.AllowLenMismatch); err != nil {
		return nil, err
	}
	e := truncateHash(hashBytes, c.N)
	if e.IsZero() && !opts.AllowZeroHash {
		return nil, ErrZeroHash
	}

	for attempt := 0; ; attempt++ {
		extra := opts.ExtraEntropy
		k := rfc6979.GenerateK(c.N, hashBytes, priv.D, hm, extra)
		if attempt > 0 {
			// A restart occurred (r or s came out zero, astronomically
			// unlikely for a secure curve): perturb the seed so the
			// next draw does not repeat the same k.
			k = rfc6979.GenerateK(c.N, hashBytes, priv.D, hm, append(append([]byte{}, extra...), byte(attempt)))
		}
		if k.IsZero() {
			continue
		}

		r := c.ScalarBaseMul(k)
		rMod, err := modulo(r.X, c.N)
		if err != nil {
			return nil, err
		}
		if rMod.IsZero() {
			continue
		}

		kInv, err := invert(k, c.N)
		if err != nil {
			continue
		}
		ed, err := modulo(e.Add(rMod.Mul(priv.D)), c.N)
		if err != nil {
			return nil, err
		}
		s, err := modulo(ed.Mul(kInv), c.N)
		if err != nil {
			return nil, err
		}
		if s.IsZero() {
			continue
		}

		highX := r.X.Cmp(c.N) >= 0
		oddY := !r.Y.IsEven()
		recID := recoveryIdFrom(highX, oddY)

		if opts.LowS {
			half, _, _ := c.N.QuoRem(bigint.FromInt64(2))
			if s.Cmp(half) > 0 {
				s = c.N.Sub(s)
				recID = recID.flipParity()
			}
		}

		return &Signature{R: rMod, S: s, RecoveryID: recID}, nil
	}
}

// Verify checks sig against hashBytes under pub.
func Verify(hashBytes []byte, sig *Signature, pub *PublicKey, opts VerifyOptions) (bool, error) {
	c := pub.Curve
	if err := validateHash(hashBytes, c.N, opts.AllowLenMismatch); err != nil {
		return false, err
	}
	if sig.R.IsZero() || sig.R.Cmp(c.N) >= 0 || sig.S.IsZero() || sig.S.Cmp(c.N) >= 0 {
		return false, nil
	}
	if opts.RequireLowS {
		half, _, _ := c.N.QuoRem(bigint.FromInt64(2))
		if sig.S.Cmp(half) > 0 {
			return false, ErrLowSViolation
		}
	}

	e := truncateHash(hashBytes, c.N)
	if e.IsZero() {
		return false, nil
	}

	w, err := invert(sig.S, c.N)
	if err != nil {
		return false, nil
	}
	u, err := modulo(e.Mul(w), c.N)
	if err != nil {
		return false, err
	}
	v, err := modulo(sig.R.Mul(w), c.N)
	if err != nil {
		return false, err
	}

	uG := c.ScalarBaseMul(u)
	vP := c.ScalarMul(v, pub.Point)
	qPrime := c.Add(uG, vP)
	if qPrime.Infinity {
		return false, nil
	}

	xMod, err := modulo(qPrime.X, c.N)
	if err != nil {
		return false, err
	}
	return xMod.Equal(sig.R), nil
}

// Recover returns the public key consistent with sig over hashBytes
// that matches sig.RecoveryID (its high-x and odd-y bits), so it returns
// at most one key; a caller that does not trust the embedded recovery
// id may instead call RecoverAll.
func Recover(sig *Signature, hashBytes []byte, c *curve.Curve) ([]*PublicKey, error) {
	return recoverCandidates(sig, hashBytes, c, true)
}

// RecoverAll ignores sig.RecoveryID and returns every public key
// consistent with sig over hashBytes, across all cofactor/parity
// candidates.
func RecoverAll(sig *Signature, hashBytes []byte, c *curve.Curve) ([]*PublicKey, error) {
	return recoverCandidates(sig, hashBytes, c, false)
}

func recoverCandidates(sig *Signature, hashBytes []byte, c *curve.Curve, useRecoveryID bool) ([]*PublicKey, error) {
	e := truncateHash(hashBytes, c.N)
	var results []*PublicKey

	cofactor := 1 // secp256k1 has cofactor 1; j ranges over [0, cofactor].
	for j := 0; j <= cofactor; j++ {
		x := sig.R.Add(bigint.FromInt64(int64(j)).Mul(c.N))
		if x.Cmp(c.P) >= 0 {
			break
		}

		yEven, yOdd, ok := c.SolveY(x)
		if !ok {
			continue
		}

		candidates := []bigint.BigInt{yEven, yOdd}
		if useRecoveryID {
			wantOdd := sig.RecoveryID.OddY()
			wantHighX := sig.RecoveryID.HighX()
			if (j != 0) != wantHighX {
				continue
			}
			if wantOdd {
				candidates = []bigint.BigInt{yOdd}
			} else {
				candidates = []bigint.BigInt{yEven}
			}
		}

		for _, y := range candidates {
			r := curve.Point{X: x, Y: y}
			rInv, err := invert(sig.R, c.N)
			if err != nil {
				continue
			}
			sR := c.ScalarMul(sig.S, r)
			eG := c.ScalarBaseMul(e)
			negEG := curve.Point{X: eG.X, Y: c.P.Sub(eG.Y)}
			if eG.Infinity {
				negEG = curve.Point{Infinity: true}
			}
			diff := c.Add(sR, negEG)
			q := c.ScalarMul(rInv, diff)

			pub, err := NewPublicKey(q, c)
			if err != nil {
				continue
			}
			ok, err := Verify(hashBytes, sig, pub, VerifyOptions{AllowLenMismatch: true})
			if err != nil || !ok {
				continue
			}
			results = append(results, pub)
		}
	}
	return results, nil
}

func modulo(a, n bigint.BigInt) (bigint.BigInt, error) { return modular.Modulo(a, n) }
func invert(a, n bigint.BigInt) (bigint.BigInt, error) { return modular.Invert(a, n) }
