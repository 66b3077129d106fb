package bigint

import "strings"

// Sign distinguishes the two signed variants a BigInt may carry. The
// convention throughout this package is that +0 and -0 compare equal;
// callers never observe a "negative zero" as distinct from zero.
type Sign int8

const (
	// Positive is the sign of zero and of every positive value.
	Positive Sign = 1
	// Negative is the sign of every value strictly less than zero.
	Negative Sign = -1
)

// Negate returns the opposite sign.
func (s Sign) Negate() Sign {
	if s == Positive {
		return Negative
	}
	return Positive
}

// BigInt is a signed arbitrary-precision integer: a {magnitude, sign}
// pair. Existing instances are immutable; every operation below returns
// a new value.
type BigInt struct {
	mag  BigUint
	sign Sign
}

// IntZero is the BigInt value 0.
func IntZero() BigInt { return BigInt{mag: Zero(), sign: Positive} }

// IntOne is the BigInt value 1.
func IntOne() BigInt { return BigInt{mag: One(), sign: Positive} }

// FromInt64 constructs a BigInt from a signed machine integer, preserving
// its sign and taking the magnitude of |n|.
func FromInt64(n int64) BigInt {
	if n < 0 {
		// Avoid overflow on math.MinInt64 by negating via uint64 two's
		// complement arithmetic.
		u := uint64(-(n + 1)) + 1
		return BigInt{mag: FromUint64(u), sign: Negative}
	}
	return BigInt{mag: FromUint64(uint64(n)), sign: Positive}
}

// FromUint64Int constructs a non-negative BigInt from an unsigned
// machine integer. Construction from unsigned types always yields +.
func FromUint64Int(n uint64) BigInt {
	return BigInt{mag: FromUint64(n), sign: Positive}
}

// FromBigUint constructs a non-negative BigInt from a BigUint magnitude.
func FromBigUint(u BigUint) BigInt {
	return BigInt{mag: u, sign: Positive}
}

// FromHex parses an optionally-signed hexadecimal string: an optional
// leading '-', then hex digits with both even and odd counts accepted
// (odd counts are zero-padded on the left) and any non-hex character
// rejected.
func FromHex(s string) (BigInt, error) {
	sign := Positive
	if strings.HasPrefix(s, "-") {
		sign = Negative
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	mag, err := FromHexUint(s)
	if err != nil {
		return BigInt{}, err
	}
	if mag.IsZero() {
		sign = Positive
	}
	return BigInt{mag: mag, sign: sign}, nil
}

// Hex renders the BigInt as lower-case hex with an optional leading '-'.
// Zero always renders as "0" regardless of sign.
func (z BigInt) Hex() string {
	if z.mag.IsZero() {
		return "0"
	}
	if z.sign == Negative {
		return "-" + z.mag.Hex()
	}
	return z.mag.Hex()
}

// String implements fmt.Stringer.
func (z BigInt) String() string { return z.Hex() }

// Sign returns the value's sign (zero is Positive by convention).
func (z BigInt) Sign() Sign { return z.sign }

// Abs returns the BigUint magnitude.
func (z BigInt) Abs() BigUint { return z.mag }

// IsZero reports whether the value is zero, regardless of sign.
func (z BigInt) IsZero() bool { return z.mag.IsZero() }

// IsNegative reports whether the value is strictly less than zero.
func (z BigInt) IsNegative() bool { return z.sign == Negative && !z.mag.IsZero() }

// IsEven tests the low bit of the magnitude.
func (z BigInt) IsEven() bool { return z.mag.IsEven() }

// Neg returns -z. Negation never mutates z; it flips the sign on a new
// value, and +0 negates to +0 by the equal-zero convention.
func (z BigInt) Neg() BigInt {
	if z.mag.IsZero() {
		return z
	}
	return BigInt{mag: z.mag, sign: z.sign.Negate()}
}

// Cmp compares z and w, treating +0 and -0 as equal.
func (z BigInt) Cmp(w BigInt) int {
	zZero, wZero := z.mag.IsZero(), w.mag.IsZero()
	if zZero && wZero {
		return 0
	}
	if zZero {
		if w.sign == Positive {
			return -1
		}
		return 1
	}
	if wZero {
		if z.sign == Positive {
			return 1
		}
		return -1
	}
	if z.sign != w.sign {
		if z.sign == Positive {
			return 1
		}
		return -1
	}
	c := z.mag.Cmp(w.mag)
	if z.sign == Negative {
		c = -c
	}
	return c
}

// Equal reports whether z == w.
func (z BigInt) Equal(w BigInt) bool { return z.Cmp(w) == 0 }

// Add implements the usual sign-dispatch rule for signed-magnitude
// addition: same sign adds magnitudes and keeps the sign; differing signs
// subtract the smaller magnitude from the larger and the sign follows the
// larger (or +0 when equal).
func (z BigInt) Add(w BigInt) BigInt {
	if z.sign == w.sign {
		return BigInt{mag: z.mag.Add(w.mag), sign: z.sign}
	}
	switch z.mag.Cmp(w.mag) {
	case 0:
		return IntZero()
	case 1:
		return BigInt{mag: z.mag.Sub(w.mag), sign: z.sign}
	default:
		return BigInt{mag: w.mag.Sub(z.mag), sign: w.sign}
	}
}

// Sub returns z - w, implemented as z + (-w).
func (z BigInt) Sub(w BigInt) BigInt { return z.Add(w.Neg()) }

// Mul returns z*w; the sign of the product is the XOR of the input
// signs.
func (z BigInt) Mul(w BigInt) BigInt {
	mag := z.mag.Mul(w.mag)
	if mag.IsZero() {
		return IntZero()
	}
	sign := Positive
	if z.sign != w.sign {
		sign = Negative
	}
	return BigInt{mag: mag, sign: sign}
}

// QuoRem returns the quotient and remainder of z/w using
// truncation-toward-zero semantics: the quotient's sign is the XOR of the
// input signs, and the remainder's sign follows the dividend.
func (z BigInt) QuoRem(w BigInt) (q, r BigInt, err error) {
	qMag, rMag, err := z.mag.DivMod(w.mag)
	if err != nil {
		return BigInt{}, BigInt{}, err
	}
	qSign := Positive
	if z.sign != w.sign {
		qSign = Negative
	}
	if qMag.IsZero() {
		qSign = Positive
	}
	q = BigInt{mag: qMag, sign: qSign}

	rSign := z.sign
	if rMag.IsZero() {
		rSign = Positive
	}
	r = BigInt{mag: rMag, sign: rSign}
	return q, r, nil
}

// Shl returns z << n.
func (z BigInt) Shl(n int) BigInt {
	return BigInt{mag: z.mag.Shl(n), sign: z.sign}
}

// Shr returns z >> n using floor division on the magnitude.
func (z BigInt) Shr(n int) BigInt {
	mag := z.mag.Shr(n)
	if mag.IsZero() {
		return IntZero()
	}
	return BigInt{mag: mag, sign: z.sign}
}

// BitLen returns the magnitude's bit length.
func (z BigInt) BitLen() int { return z.mag.BitLen() }
