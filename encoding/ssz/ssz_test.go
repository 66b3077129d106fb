package ssz

import (
	"testing"

	"signet.dev/signet/internal/testutils"
)

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	c := &SignatureContainer{V: 1}
	c.R[0] = 0xaa
	c.S[31] = 0xbb

	buf := c.MarshalSSZ()
	testutils.AssertIntsEqual(t, "encoded length", 65, len(buf))

	var decoded SignatureContainer
	err := decoded.UnmarshalSSZ(buf)
	testutils.AssertNoError(t, "unmarshal", err)
	testutils.AssertBytesEqual(t, "r matches", c.R[:], decoded.R[:])
	testutils.AssertBytesEqual(t, "s matches", c.S[:], decoded.S[:])
	testutils.AssertIntsEqual(t, "v matches", int(c.V), int(decoded.V))
}

func TestUnmarshalRejectsWrongLength(t *testing.T) {
	var c SignatureContainer
	err := c.UnmarshalSSZ(make([]byte, 10))
	testutils.AssertError(t, "wrong length rejected", err)
}

func TestHashTreeRootIsDeterministic(t *testing.T) {
	c := &SignatureContainer{V: 27}
	c.R[0] = 1
	c.S[0] = 2

	root1 := c.HashTreeRoot()
	root2 := c.HashTreeRoot()
	testutils.AssertBytesEqual(t, "deterministic root", root1[:], root2[:])
}

func TestHashTreeRootDiffersOnFieldChange(t *testing.T) {
	a := &SignatureContainer{V: 27}
	a.R[0] = 1

	b := &SignatureContainer{V: 27}
	b.R[0] = 2

	rootA := a.HashTreeRoot()
	rootB := b.HashTreeRoot()
	testutils.AssertTrue(t, "roots differ", rootA != rootB)
}

func TestMixInLengthChangesWithLength(t *testing.T) {
	var root [32]byte
	root[0] = 1

	a := MixInLength(root, 1)
	b := MixInLength(root, 2)
	testutils.AssertTrue(t, "mix-in differs with length", a != b)
}

func TestNextPowerOfTwo(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 4: 4, 5: 8}
	for in, want := range cases {
		got := nextPowerOfTwo(in)
		testutils.AssertIntsEqual(t, "next power of two", want, got)
	}
}
