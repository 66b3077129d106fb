// Package rlp implements Ethereum's Recursive Length Prefix encoding
// for the byte strings and lists this module's transaction builder
// needs, following the encoding rules of the Ethereum yellow paper
// appendix B rather than importing go-ethereum's rlp package.
package rlp

import (
	"errors"

	"github.com/holiman/uint256"
)

// ErrUnexpectedEOF is returned by Decode when the input ends before a
// declared length is satisfied.
var ErrUnexpectedEOF = errors.New("rlp: unexpected end of input")

// ErrInvalidEncoding reports a malformed RLP encoding. Decode does not
// return it: every prefix byte maps to one of its cases.
var ErrInvalidEncoding = errors.New("rlp: invalid encoding")

// Item is a decoded RLP value. IsList tells which field holds it: List
// for a list (nil when the list is empty), Bytes otherwise.
type Item struct {
	Bytes []byte
	List  []Item
	IsList bool
}

// EncodeBytes RLP-encodes a byte string.
func EncodeBytes(b []byte) []byte {
	if len(b) == 1 && b[0] < 0x80 {
		return b
	}
	return append(encodeLength(len(b), 0x80), b...)
}

// EncodeUint256 RLP-encodes u using its minimal big-endian
// representation (no leading zero bytes), delegating the trim-leading-
// zeros step to uint256.Int.Bytes().
func EncodeUint256(u *uint256.Int) []byte {
	if u.IsZero() {
		return EncodeBytes(nil)
	}
	return EncodeBytes(u.Bytes())
}

// EncodeList RLP-encodes a list whose elements have already been
// individually RLP-encoded.
func EncodeList(items ...[]byte) []byte {
	var payload []byte
	for _, it := range items {
		payload = append(payload, it...)
	}
	return append(encodeLength(len(payload), 0xc0), payload...)
}

func encodeLength(n int, offset byte) []byte {
	if n < 56 {
		return []byte{offset + byte(n)}
	}
	lenBytes := minimalBigEndian(uint64(n))
	return append([]byte{offset + 55 + byte(len(lenBytes))}, lenBytes...)
}

func minimalBigEndian(n uint64) []byte {
	var buf [8]byte
	for i := 7; i >= 0; i-- {
		buf[i] = byte(n)
		n >>= 8
	}
	i := 0
	for i < 7 && buf[i] == 0 {
		i++
	}
	return buf[i:]
}

// Decode parses a single RLP item from the head of b, returning the
// item and the number of bytes consumed.
func Decode(b []byte) (Item, int, error) {
	if len(b) == 0 {
		return Item{}, 0, ErrUnexpectedEOF
	}
	prefix := b[0]

	switch {
	case prefix < 0x80:
		return Item{Bytes: b[:1]}, 1, nil

	case prefix < 0xb8:
		n := int(prefix - 0x80)
		if len(b) < 1+n {
			return Item{}, 0, ErrUnexpectedEOF
		}
		return Item{Bytes: b[1 : 1+n]}, 1 + n, nil

	case prefix < 0xc0:
		lenOfLen := int(prefix - 0xb7)
		if len(b) < 1+lenOfLen {
			return Item{}, 0, ErrUnexpectedEOF
		}
		n := beToUint64(b[1 : 1+lenOfLen])
		start := 1 + lenOfLen
		if len(b) < start+int(n) {
			return Item{}, 0, ErrUnexpectedEOF
		}
		return Item{Bytes: b[start : start+int(n)]}, start + int(n), nil

	case prefix < 0xf8:
		n := int(prefix - 0xc0)
		if len(b) < 1+n {
			return Item{}, 0, ErrUnexpectedEOF
		}
		list, err := decodeList(b[1 : 1+n])
		if err != nil {
			return Item{}, 0, err
		}
		return Item{List: list, IsList: true}, 1 + n, nil

	default:
		lenOfLen := int(prefix - 0xf7)
		if len(b) < 1+lenOfLen {
			return Item{}, 0, ErrUnexpectedEOF
		}
		n := beToUint64(b[1 : 1+lenOfLen])
		start := 1 + lenOfLen
		if len(b) < start+int(n) {
			return Item{}, 0, ErrUnexpectedEOF
		}
		list, err := decodeList(b[start : start+int(n)])
		if err != nil {
			return Item{}, 0, err
		}
		return Item{List: list, IsList: true}, start + int(n), nil
	}
}

func decodeList(payload []byte) ([]Item, error) {
	var items []Item
	for len(payload) > 0 {
		item, consumed, err := Decode(payload)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		payload = payload[consumed:]
	}
	return items, nil
}

func beToUint64(b []byte) uint64 {
	var n uint64
	for _, by := range b {
		n = n<<8 | uint64(by)
	}
	return n
}
