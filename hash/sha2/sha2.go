// Package sha2 implements the SHA-256, SHA-384, and SHA-512 compression
// functions from FIPS 180-4 directly over the message schedule and
// round constants, rather than delegating to crypto/sha256 or
// crypto/sha512.
package sha2

// Sha256BlockBytes and Sha256OutputBytes are SHA-256's block and digest
// sizes.
const (
	Sha256BlockBytes  = 64
	Sha256OutputBytes = 32
)

// Sha512BlockBytes, Sha512OutputBytes, and Sha384OutputBytes are the
// block and digest sizes shared by the 64-bit-lane variants; SHA-384
// uses the same block size and round structure as SHA-512, differing
// only in initial state and output truncation.
const (
	Sha512BlockBytes  = 128
	Sha512OutputBytes = 64
	Sha384OutputBytes = 48
)

var sha256K = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

var sha256Init = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

func rotr32(x uint32, n uint) uint32 { return x>>n | x<<(32-n) }

func sha256Pad(msg []byte) []byte {
	bitLen := uint64(len(msg)) * 8
	padded := append([]byte(nil), msg...)
	padded = append(padded, 0x80)
	for len(padded)%Sha256BlockBytes != 56 {
		padded = append(padded, 0)
	}
	for i := 7; i >= 0; i-- {
		padded = append(padded, byte(bitLen>>(uint(i)*8)))
	}
	return padded
}

// Sum256 computes the SHA-256 digest of msg.
func Sum256(msg []byte) [Sha256OutputBytes]byte {
	h := sha256Init
	padded := sha256Pad(msg)

	var w [64]uint32
	for block := 0; block < len(padded); block += Sha256BlockBytes {
		b := padded[block : block+Sha256BlockBytes]
		for i := 0; i < 16; i++ {
			w[i] = uint32(b[4*i])<<24 | uint32(b[4*i+1])<<16 | uint32(b[4*i+2])<<8 | uint32(b[4*i+3])
		}
		for i := 16; i < 64; i++ {
			s0 := rotr32(w[i-15], 7) ^ rotr32(w[i-15], 18) ^ (w[i-15] >> 3)
			s1 := rotr32(w[i-2], 17) ^ rotr32(w[i-2], 19) ^ (w[i-2] >> 10)
			w[i] = w[i-16] + s0 + w[i-7] + s1
		}

		a, bb, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]
		for i := 0; i < 64; i++ {
			bigS1 := rotr32(e, 6) ^ rotr32(e, 11) ^ rotr32(e, 25)
			ch := (e & f) ^ (^e & g)
			t1 := hh + bigS1 + ch + sha256K[i] + w[i]
			bigS0 := rotr32(a, 2) ^ rotr32(a, 13) ^ rotr32(a, 22)
			maj := (a & bb) ^ (a & c) ^ (bb & c)
			t2 := bigS0 + maj

			hh, g, f, e, d, c, bb, a = g, f, e, d+t1, c, bb, a, t1+t2
		}

		h[0] += a
		h[1] += bb
		h[2] += c
		h[3] += d
		h[4] += e
		h[5] += f
		h[6] += g
		h[7] += hh
	}

	var out [Sha256OutputBytes]byte
	for i, word := range h {
		out[4*i] = byte(word >> 24)
		out[4*i+1] = byte(word >> 16)
		out[4*i+2] = byte(word >> 8)
		out[4*i+3] = byte(word)
	}
	return out
}

var sha512K = [80]uint64{
	0x428a2f98d728ae22, 0x7137449123ef65cd, 0xb5c0fbcfec4d3b2f, 0xe9b5dba58189dbbc,
	0x3956c25bf348b538, 0x59f111f1b605d019, 0x923f82a4af194f9b, 0xab1c5ed5da6d8118,
	0xd807aa98a3030242, 0x12835b0145706fbe, 0x243185be4ee4b28c, 0x550c7dc3d5ffb4e2,
	0x72be5d74f27b896f, 0x80deb1fe3b1696b1, 0x9bdc06a725c71235, 0xc19bf174cf692694,
	0xe49b69c19ef14ad2, 0xefbe4786384f25e3, 0x0fc19dc68b8cd5b5, 0x240ca1cc77ac9c65,
	0x2de92c6f592b0275, 0x4a7484aa6ea6e483, 0x5cb0a9dcbd41fbd4, 0x76f988da831153b5,
	0x983e5152ee66dfab, 0xa831c66d2db43210, 0xb00327c898fb213f, 0xbf597fc7beef0ee4,
	0xc6e00bf33da88fc2, 0xd5a79147930aa725, 0x06ca6351e003826f, 0x142929670a0e6e70,
	0x27b70a8546d22ffc, 0x2e1b21385c26c926, 0x4d2c6dfc5ac42aed, 0x53380d139d95b3df,
	0x650a73548baf63de, 0x766a0abb3c77b2a8, 0x81c2c92e47edaee6, 0x92722c851482353b,
	0xa2bfe8a14cf10364, 0xa81a664bbc423001, 0xc24b8b70d0f89791, 0xc76c51a30654be30,
	0xd192e819d6ef5218, 0xd69906245565a910, 0xf40e35855771202a, 0x106aa07032bbd1b8,
	0x19a4c116b8d2d0c8, 0x1e376c085141ab53, 0x2748774cdf8eeb99, 0x34b0bcb5e19b48a8,
	0x391c0cb3c5c95a63, 0x4ed8aa4ae3418acb, 0x5b9cca4f7763e373, 0x682e6ff3d6b2b8a3,
	0x748f82ee5defb2fc, 0x78a5636f43172f60, 0x84c87814a1f0ab72, 0x8cc702081a6439ec,
	0x90befffa23631e28, 0xa4506cebde82bde9, 0xbef9a3f7b2c67915, 0xc67178f2e372532b,
	0xca273eceea26619c, 0xd186b8c721c0c207, 0xeada7dd6cde0eb1e, 0xf57d4f7fee6ed178,
	0x06f067aa72176fba, 0x0a637dc5a2c898a6, 0x113f9804bef90dae, 0x1b710b35131c471b,
	0x28db77f523047d84, 0x32caab7b40c72493, 0x3c9ebe0a15c9bebc, 0x431d67c49c100d4c,
	0x4cc5d4becb3e42b6, 0x597f299cfc657e2a, 0x5fcb6fab3ad6faec, 0x6c44198c4a475817,
}

var sha512Init = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

var sha384Init = [8]uint64{
	0xcbbb9d5dc1059ed8, 0x629a292a367cd507, 0x9159015a3070dd17, 0x152fecd8f70e5939,
	0x67332667ffc00b31, 0x8eb44a8768581511, 0xdb0c2e0d64f98fa7, 0x47b5481dbefa4fa4,
}

func rotr64(x uint64, n uint) uint64 { return x>>n | x<<(64-n) }

func sha512Pad(msg []byte) []byte {
	bitLen := uint64(len(msg)) * 8
	padded := append([]byte(nil), msg...)
	padded = append(padded, 0x80)
	for len(padded)%Sha512BlockBytes != 112 {
		padded = append(padded, 0)
	}
	// 128-bit big-endian length field; the high 64 bits are always zero
	// at the message sizes this package handles.
	for i := 0; i < 8; i++ {
		padded = append(padded, 0)
	}
	for i := 7; i >= 0; i-- {
		padded = append(padded, byte(bitLen>>(uint(i)*8)))
	}
	return padded
}

func sha512Compress(init [8]uint64, msg []byte) [8]uint64 {
	h := init
	padded := sha512Pad(msg)

	var w [80]uint64
	for block := 0; block < len(padded); block += Sha512BlockBytes {
		b := padded[block : block+Sha512BlockBytes]
		for i := 0; i < 16; i++ {
			var word uint64
			for j := 0; j < 8; j++ {
				word = word<<8 | uint64(b[8*i+j])
			}
			w[i] = word
		}
		for i := 16; i < 80; i++ {
			s0 := rotr64(w[i-15], 1) ^ rotr64(w[i-15], 8) ^ (w[i-15] >> 7)
			s1 := rotr64(w[i-2], 19) ^ rotr64(w[i-2], 61) ^ (w[i-2] >> 6)
			w[i] = w[i-16] + s0 + w[i-7] + s1
		}

		a, bb, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]
		for i := 0; i < 80; i++ {
			bigS1 := rotr64(e, 14) ^ rotr64(e, 18) ^ rotr64(e, 41)
			ch := (e & f) ^ (^e & g)
			t1 := hh + bigS1 + ch + sha512K[i] + w[i]
			bigS0 := rotr64(a, 28) ^ rotr64(a, 34) ^ rotr64(a, 39)
			maj := (a & bb) ^ (a & c) ^ (bb & c)
			t2 := bigS0 + maj

			hh, g, f, e, d, c, bb, a = g, f, e, d+t1, c, bb, a, t1+t2
		}

		h[0] += a
		h[1] += bb
		h[2] += c
		h[3] += d
		h[4] += e
		h[5] += f
		h[6] += g
		h[7] += hh
	}
	return h
}

// Sum512 computes the SHA-512 digest of msg.
func Sum512(msg []byte) [Sha512OutputBytes]byte {
	h := sha512Compress(sha512Init, msg)
	var out [Sha512OutputBytes]byte
	for i, word := range h {
		for j := 0; j < 8; j++ {
			out[8*i+j] = byte(word >> uint(56-8*j))
		}
	}
	return out
}

// Sum384 computes the SHA-384 digest of msg: the SHA-512 compression
// function with SHA-384's initial state, truncated to 48 bytes.
func Sum384(msg []byte) [Sha384OutputBytes]byte {
	h := sha512Compress(sha384Init, msg)
	var out [Sha512OutputBytes]byte
	for i, word := range h {
		for j := 0; j < 8; j++ {
			out[8*i+j] = byte(word >> uint(56-8*j))
		}
	}
	var truncated [Sha384OutputBytes]byte
	copy(truncated[:], out[:Sha384OutputBytes])
	return truncated
}
