// Package ssz implements the fixed-size subset of Simple Serialize
// (SSZ) encoding and Merkle hash-tree-root computation needed to
// produce an SSZ container digest for a signature, following the
// merkleization rules fastssz-generated code implements rather than
// importing the fastssz code generator itself.
package ssz

import (
	"encoding/binary"
	"errors"

	"signet.dev/signet/hash/sha2"
)

// ErrInvalidLength is returned when a fixed-size field does not match
// its declared width.
var ErrInvalidLength = errors.New("ssz: invalid field length")

const chunkSize = 32

// SignatureContainer is the SSZ container this module hashes: a
// 32-byte r, a 32-byte s, and a single-byte v, in that order
// (ethereum/tx fills V from a signed transaction's v value).
type SignatureContainer struct {
	R [32]byte
	S [32]byte
	V byte
}

// MarshalSSZ serializes the container using SSZ's fixed-size tuple
// encoding: fields are concatenated in declaration order with no
// length prefixes, since every field here is fixed-width.
func (s *SignatureContainer) MarshalSSZ() []byte {
	buf := make([]byte, 0, 65)
	buf = append(buf, s.R[:]...)
	buf = append(buf, s.S[:]...)
	buf = append(buf, s.V)
	return buf
}

// UnmarshalSSZ parses a buffer produced by MarshalSSZ.
func (s *SignatureContainer) UnmarshalSSZ(buf []byte) error {
	if len(buf) != 65 {
		return ErrInvalidLength
	}
	copy(s.R[:], buf[0:32])
	copy(s.S[:], buf[32:64])
	s.V = buf[64]
	return nil
}

// HashTreeRoot computes the SSZ Merkle root of the container: each
// field becomes one or more 32-byte chunks, chunks are padded to the
// next power of two with zero chunks, and merkleized pairwise with
// sha256.
func (s *SignatureContainer) HashTreeRoot() [32]byte {
	vChunk := [32]byte{}
	vChunk[0] = s.V
	return merkleize([][32]byte{s.R, s.S, vChunk})
}

func merkleize(chunks [][32]byte) [32]byte {
	n := nextPowerOfTwo(len(chunks))
	padded := make([][32]byte, n)
	copy(padded, chunks)

	for len(padded) > 1 {
		next := make([][32]byte, len(padded)/2)
		for i := range next {
			next[i] = hashPair(padded[2*i], padded[2*i+1])
		}
		padded = next
	}
	if len(padded) == 0 {
		return [32]byte{}
	}
	return padded[0]
}

func hashPair(a, b [32]byte) [32]byte {
	buf := make([]byte, 64)
	copy(buf[:32], a[:])
	copy(buf[32:], b[:])
	return sha2.Sum256(buf)
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// MixInLength combines a merkle root with a length value, the way SSZ
// list types append a length-mixin chunk before the final hash. Not
// needed by SignatureContainer itself (all its fields are fixed-size)
// but kept for list-typed fields ethereum/tx's access lists use.
func MixInLength(root [32]byte, length uint64) [32]byte {
	var lenChunk [32]byte
	binary.LittleEndian.PutUint64(lenChunk[:8], length)
	return hashPair(root, lenChunk)
}
