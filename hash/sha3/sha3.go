// Package sha3 implements the Keccak-f[1600] permutation and the sponge
// construction it underlies, built up directly from the theta/rho/pi/chi/
// iota round steps rather than delegating to golang.org/x/crypto/sha3.
// It provides the four FIPS 202 SHA-3 digest sizes and the legacy
// (pre-standardization) Keccak-256 variant used throughout Ethereum.
package sha3

const laneCount = 25

var roundConstants = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rotationConstants[i] is the cyclic left-rotation applied to lane i (the
// spec's ROTC amounts) during the rho step.
var rotationConstants = [laneCount]uint{
	0, 1, 62, 28, 27,
	36, 44, 6, 55, 20,
	3, 10, 43, 25, 39,
	41, 45, 15, 21, 8,
	18, 2, 61, 56, 14,
}

// piLane[i] is the source lane that the pi permutation moves to index i.
var piLane = [laneCount]int{
	0, 6, 12, 18, 24,
	3, 9, 10, 16, 22,
	1, 7, 13, 19, 20,
	4, 5, 11, 17, 23,
	2, 8, 14, 15, 21,
}

func rotl64(x uint64, n uint) uint64 {
	if n == 0 {
		return x
	}
	return x<<n | x>>(64-n)
}

func keccakF1600(state *[laneCount]uint64) {
	for round := 0; round < 24; round++ {
		// Theta: each column's parity is XORed into the two
		// neighboring columns.
		var bc [5]uint64
		for i := 0; i < 5; i++ {
			bc[i] = state[i] ^ state[i+5] ^ state[i+10] ^ state[i+15] ^ state[i+20]
		}
		for i := 0; i < 5; i++ {
			t := bc[(i+4)%5] ^ rotl64(bc[(i+1)%5], 1)
			for j := 0; j < 25; j += 5 {
				state[j+i] ^= t
			}
		}

		// Rho and pi: rotate each lane and permute it to its
		// destination, combined into a single pass using a
		// temporary copy of the state.
		var permuted [laneCount]uint64
		for i := 0; i < laneCount; i++ {
			permuted[i] = rotl64(state[piLane[i]], rotationConstants[piLane[i]])
		}

		// Chi: nonlinear row-wise mixing.
		for row := 0; row < 25; row += 5 {
			var t [5]uint64
			copy(t[:], permuted[row:row+5])
			for i := 0; i < 5; i++ {
				state[row+i] = t[i] ^ (^t[(i+1)%5] & t[(i+2)%5])
			}
		}

		// Iota: mix in the round constant.
		state[0] ^= roundConstants[round]
	}
}

type outputSize int

// Digest sizes in bytes for the supported variants.
const (
	Size224 outputSize = 28
	Size256 outputSize = 32
	Size384 outputSize = 48
	Size512 outputSize = 64
)

const (
	delimiterSHA3    = 0x06
	delimiterKeccak  = 0x01
)

func sponge(msg []byte, outputBytes int, delimiter byte) []byte {
	rate := 200 - 2*outputBytes
	var state [laneCount]uint64

	absorbFullBlock := func(block []byte) {
		for i := 0; i < rate/8; i++ {
			var lane uint64
			for j := 0; j < 8; j++ {
				lane |= uint64(block[8*i+j]) << uint(8*j)
			}
			state[i] ^= lane
		}
		keccakF1600(&state)
	}

	remaining := msg
	for len(remaining) >= rate {
		absorbFullBlock(remaining[:rate])
		remaining = remaining[rate:]
	}

	padded := make([]byte, rate)
	copy(padded, remaining)
	padded[len(remaining)] ^= delimiter
	padded[rate-1] ^= 0x80
	absorbFullBlock(padded)

	out := make([]byte, 0, outputBytes)
	for len(out) < outputBytes {
		for i := 0; i < rate/8 && len(out) < outputBytes; i++ {
			lane := state[i]
			for j := 0; j < 8 && len(out) < outputBytes; j++ {
				out = append(out, byte(lane>>uint(8*j)))
			}
		}
		if len(out) < outputBytes {
			keccakF1600(&state)
		}
	}
	return out
}

// Sum224 computes the SHA3-224 digest of msg.
func Sum224(msg []byte) [Size224]byte {
	var out [Size224]byte
	copy(out[:], sponge(msg, int(Size224), delimiterSHA3))
	return out
}

// Sum256 computes the SHA3-256 digest of msg.
func Sum256(msg []byte) [Size256]byte {
	var out [Size256]byte
	copy(out[:], sponge(msg, int(Size256), delimiterSHA3))
	return out
}

// Sum384 computes the SHA3-384 digest of msg.
func Sum384(msg []byte) [Size384]byte {
	var out [Size384]byte
	copy(out[:], sponge(msg, int(Size384), delimiterSHA3))
	return out
}

// Sum512 computes the SHA3-512 digest of msg.
func Sum512(msg []byte) [Size512]byte {
	var out [Size512]byte
	copy(out[:], sponge(msg, int(Size512), delimiterSHA3))
	return out
}

// Keccak256 computes the legacy (pre-FIPS-202) Keccak-256 digest of msg,
// distinguished from SHA3-256 only by its delimiter suffix. This is the
// hash Ethereum uses throughout its address derivation and state trie.
func Keccak256(msg []byte) [Size256]byte {
	var out [Size256]byte
	copy(out[:], sponge(msg, int(Size256), delimiterKeccak))
	return out
}
