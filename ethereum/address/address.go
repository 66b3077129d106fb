// Package address derives Ethereum addresses from public keys and
// implements the EIP-55 mixed-case checksum encoding, following
// original_source's types/address.rs.
package address

import (
	"errors"
	"fmt"
	"strings"

	"signet.dev/signet/curve"
	"signet.dev/signet/hash/sha3"
)

// ErrInvalidChecksum is returned by VerifyChecksum when a mixed-case
// address does not match its EIP-55 checksum.
var ErrInvalidChecksum = errors.New("address: checksum mismatch")

// ErrInvalidLength is returned when a hex address string does not
// decode to exactly 20 bytes.
var ErrInvalidLength = errors.New("address: invalid length")

// Address is a 20-byte Ethereum account address.
type Address [20]byte

// FromPublicKey derives the address of an uncompressed public key
// point: Keccak-256 of the 64-byte concatenated X||Y coordinates,
// keeping the low 20 bytes.
func FromPublicKey(pub curve.Point) Address {
	buf := make([]byte, 64)
	x := pub.X.Abs().Bytes()
	y := pub.Y.Abs().Bytes()
	copy(buf[32-len(x):32], x)
	copy(buf[64-len(y):64], y)

	digest := sha3.Keccak256(buf)
	var addr Address
	copy(addr[:], digest[12:])
	return addr
}

// Hex returns the EIP-55 mixed-case checksummed hex representation,
// prefixed with 0x.
func (a Address) Hex() string {
	lower := fmt.Sprintf("%040x", a[:])
	digest := sha3.Keccak256([]byte(lower))

	var sb strings.Builder
	sb.WriteString("0x")
	for i, c := range lower {
		if c >= '0' && c <= '9' {
			sb.WriteRune(c)
			continue
		}
		// i-th hex character's checksum bit lives in nibble i of the
		// digest, high nibble for even i, low nibble for odd i.
		nibble := digest[i/2]
		if i%2 == 0 {
			nibble >>= 4
		} else {
			nibble &= 0x0f
		}
		if nibble >= 8 {
			sb.WriteRune(c - 'a' + 'A')
		} else {
			sb.WriteRune(c)
		}
	}
	return sb.String()
}

// Parse decodes a hex address string (with or without 0x prefix,
// checksummed or all lower/upper case) into an Address without
// validating its checksum.
func Parse(s string) (Address, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	if len(s) != 40 {
		return Address{}, ErrInvalidLength
	}

	var a Address
	for i := 0; i < 20; i++ {
		hi, ok1 := hexNibble(s[2*i])
		lo, ok2 := hexNibble(s[2*i+1])
		if !ok1 || !ok2 {
			return Address{}, ErrInvalidLength
		}
		a[i] = hi<<4 | lo
	}
	return a, nil
}

// VerifyChecksum parses s and confirms its mixed-case form matches
// the EIP-55 checksum of the decoded address. An all-lower or
// all-upper input is accepted unconditionally, matching the EIP-55
// convention that such addresses carry no checksum information.
func VerifyChecksum(s string) (Address, error) {
	a, err := Parse(s)
	if err != nil {
		return Address{}, err
	}

	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if trimmed == strings.ToLower(trimmed) || trimmed == strings.ToUpper(trimmed) {
		return a, nil
	}
	if a.Hex() != "0x"+trimmed {
		return Address{}, ErrInvalidChecksum
	}
	return a, nil
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
