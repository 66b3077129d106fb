package rlp

import (
	"bytes"
	"testing"

	"github.com/holiman/uint256"
	"signet.dev/signet/internal/testutils"
)

func TestEncodeBytesShortString(t *testing.T) {
	got := EncodeBytes([]byte("dog"))
	want := []byte{0x83, 'd', 'o', 'g'}
	testutils.AssertBytesEqual(t, "short string", want, got)
}

func TestEncodeBytesSingleByteBelow0x80(t *testing.T) {
	got := EncodeBytes([]byte{0x00})
	testutils.AssertBytesEqual(t, "single zero byte", []byte{0x00}, got)
}

func TestEncodeBytesEmpty(t *testing.T) {
	got := EncodeBytes(nil)
	testutils.AssertBytesEqual(t, "empty string", []byte{0x80}, got)
}

func TestEncodeBytesLongString(t *testing.T) {
	long := bytes.Repeat([]byte{'a'}, 56)
	got := EncodeBytes(long)
	testutils.AssertIntsEqual(t, "prefix byte", 0xb8, int(got[0]))
	testutils.AssertIntsEqual(t, "length byte", 56, int(got[1]))
}

func TestEncodeListOfStrings(t *testing.T) {
	cat := EncodeBytes([]byte("cat"))
	dog := EncodeBytes([]byte("dog"))
	got := EncodeList(cat, dog)
	want := []byte{0xc8, 0x83, 'c', 'a', 't', 0x83, 'd', 'o', 'g'}
	testutils.AssertBytesEqual(t, "list of strings", want, got)
}

func TestEncodeUint256Zero(t *testing.T) {
	got := EncodeUint256(uint256.NewInt(0))
	testutils.AssertBytesEqual(t, "zero encodes as empty string", []byte{0x80}, got)
}

func TestEncodeUint256Small(t *testing.T) {
	got := EncodeUint256(uint256.NewInt(1))
	testutils.AssertBytesEqual(t, "small value", []byte{0x01}, got)
}

func TestDecodeRoundTripList(t *testing.T) {
	cat := EncodeBytes([]byte("cat"))
	dog := EncodeBytes([]byte("dog"))
	encoded := EncodeList(cat, dog)

	item, consumed, err := Decode(encoded)
	testutils.AssertNoError(t, "decode", err)
	testutils.AssertIntsEqual(t, "consumed all bytes", len(encoded), consumed)
	testutils.AssertTrue(t, "is list", item.IsList)
	testutils.AssertIntsEqual(t, "two elements", 2, len(item.List))
	testutils.AssertBytesEqual(t, "first element", []byte("cat"), item.List[0].Bytes)
	testutils.AssertBytesEqual(t, "second element", []byte("dog"), item.List[1].Bytes)
}

func TestDecodeLongString(t *testing.T) {
	long := bytes.Repeat([]byte{'a'}, 100)
	encoded := EncodeBytes(long)

	item, consumed, err := Decode(encoded)
	testutils.AssertNoError(t, "decode", err)
	testutils.AssertIntsEqual(t, "consumed", len(encoded), consumed)
	testutils.AssertBytesEqual(t, "payload", long, item.Bytes)
}

func TestDecodeTruncatedInputErrors(t *testing.T) {
	_, _, err := Decode([]byte{0x83, 'd', 'o'})
	testutils.AssertError(t, "truncated string rejected", err)
}
