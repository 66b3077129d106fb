// Package sec1 implements SEC1 point encoding for public keys:
// uncompressed (0x04 || x || y) and compressed (0x02/0x03 || x) forms.
package sec1

import (
	"errors"

	"signet.dev/signet/bigint"
	"signet.dev/signet/curve"
)

var (
	// ErrInvalidPrefix is returned when the leading byte is not one of
	// 0x02, 0x03, or 0x04.
	ErrInvalidPrefix = errors.New("sec1: invalid point encoding prefix")
	// ErrInvalidLength is returned when the payload length does not
	// match what the prefix requires for the given curve's field width.
	ErrInvalidLength = errors.New("sec1: invalid encoded point length")
	// ErrPointNotOnCurve is returned when a decoded point fails curve
	// validation.
	ErrPointNotOnCurve = errors.New("sec1: decoded point is not on the curve")
)

func fieldByteLen(c *curve.Curve) int {
	return (c.P.BitLen() + 7) / 8
}

// EncodeUncompressed renders P as 0x04 || x || y, each coordinate
// left-zero-padded to the field's byte length.
func EncodeUncompressed(P curve.Point, c *curve.Curve) []byte {
	n := fieldByteLen(c)
	out := make([]byte, 1+2*n)
	out[0] = 0x04
	copy(out[1+n-len(P.X.Abs().Bytes()):1+n], P.X.Abs().Bytes())
	copy(out[1+2*n-len(P.Y.Abs().Bytes()):1+2*n], P.Y.Abs().Bytes())
	return out
}

// EncodeCompressed renders P as 0x02/0x03 || x depending on y's parity.
func EncodeCompressed(P curve.Point, c *curve.Curve) []byte {
	n := fieldByteLen(c)
	out := make([]byte, 1+n)
	if P.Y.IsEven() {
		out[0] = 0x02
	} else {
		out[0] = 0x03
	}
	copy(out[1+n-len(P.X.Abs().Bytes()):], P.X.Abs().Bytes())
	return out
}

// Decode parses a SEC1-encoded point, validating it against c before
// returning it.
func Decode(b []byte, c *curve.Curve) (curve.Point, error) {
	n := fieldByteLen(c)
	if len(b) == 0 {
		return curve.Point{}, ErrInvalidLength
	}

	switch b[0] {
	case 0x04:
		if len(b) != 1+2*n {
			return curve.Point{}, ErrInvalidLength
		}
		x := bigint.FromBigUint(bigint.FromBytesBigEndian(b[1 : 1+n]))
		y := bigint.FromBigUint(bigint.FromBytesBigEndian(b[1+n:]))
		p := curve.Point{X: x, Y: y}
		if !c.IsOnCurve(p) {
			return curve.Point{}, ErrPointNotOnCurve
		}
		return p, nil

	case 0x02, 0x03:
		if len(b) != 1+n {
			return curve.Point{}, ErrInvalidLength
		}
		x := bigint.FromBigUint(bigint.FromBytesBigEndian(b[1:]))
		yEven, yOdd, ok := c.SolveY(x)
		if !ok {
			return curve.Point{}, ErrPointNotOnCurve
		}
		wantOdd := b[0] == 0x03
		y := yEven
		if wantOdd {
			y = yOdd
		}
		p := curve.Point{X: x, Y: y}
		if !c.IsOnCurve(p) {
			return curve.Point{}, ErrPointNotOnCurve
		}
		return p, nil

	default:
		return curve.Point{}, ErrInvalidPrefix
	}
}
