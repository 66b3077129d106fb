// Package hexutil provides the lower-case, optionally-"0x"-prefixed hex
// codec used throughout this module's wire encodings.
package hexutil

import (
	"encoding/hex"
	"errors"
	"strings"
)

// ErrOddLength is returned by Decode when given a string with an odd
// number of hex digits after stripping a "0x" prefix.
var ErrOddLength = errors.New("hexutil: odd-length hex string")

// Encode renders b as "0x"-prefixed lower-case hex.
func Encode(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// Decode parses an optionally "0x"/"0X"-prefixed hex string.
func Decode(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	if len(s)%2 != 0 {
		return nil, ErrOddLength
	}
	return hex.DecodeString(s)
}
