// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package sm3

import (
	"math/bits"

	"sm3crypt/utils"
)

// schedule holds W[0..67] of one block. W'[j] = W[j] ^ W[j+4] is derived per round.
type schedule [68]uint32

// roundT[j] = rotl(0x79cc4519, j) for j < 16, rotl(0x7a879d8a, j mod 32) otherwise.
var roundT = [64]uint32{
	0x79cc4519, 0xf3988a32, 0xe7311465, 0xce6228cb,
	0x9cc45197, 0x3988a32f, 0x7311465e, 0xe6228cbc,
	0xcc451979, 0x988a32f3, 0x311465e7, 0x6228cbce,
	0xc451979c, 0x88a32f39, 0x11465e73, 0x228cbce6,
	0x9d8a7a87, 0x3b14f50f, 0x7629ea1e, 0xec53d43c,
	0xd8a7a879, 0xb14f50f3, 0x629ea1e7, 0xc53d43ce,
	0x8a7a879d, 0x14f50f3b, 0x29ea1e76, 0x53d43cec,
	0xa7a879d8, 0x4f50f3b1, 0x9ea1e762, 0x3d43cec5,
	0x7a879d8a, 0xf50f3b14, 0xea1e7629, 0xd43cec53,
	0xa879d8a7, 0x50f3b14f, 0xa1e7629e, 0x43cec53d,
	0x879d8a7a, 0x0f3b14f5, 0x1e7629ea, 0x3cec53d4,
	0x79d8a7a8, 0xf3b14f50, 0xe7629ea1, 0xcec53d43,
	0x9d8a7a87, 0x3b14f50f, 0x7629ea1e, 0xec53d43c,
	0xd8a7a879, 0xb14f50f3, 0x629ea1e7, 0xc53d43ce,
	0x8a7a879d, 0x14f50f3b, 0x29ea1e76, 0x53d43cec,
	0xa7a879d8, 0x4f50f3b1, 0x9ea1e762, 0x3d43cec5,
}

func p0(x uint32) uint32 { return x ^ bits.RotateLeft32(x, 9) ^ bits.RotateLeft32(x, 17) }
func p1(x uint32) uint32 { return x ^ bits.RotateLeft32(x, 15) ^ bits.RotateLeft32(x, 23) }

func ff0(x, y, z uint32) uint32 { return x ^ y ^ z }
func gg0(x, y, z uint32) uint32 { return x ^ y ^ z }
func ff1(x, y, z uint32) uint32 { return (x & y) | ((x | y) & z) }
func gg1(x, y, z uint32) uint32 { return z ^ (x & (y ^ z)) }

type roundFuncs struct {
	ff, gg func(x, y, z uint32) uint32
}

// rounds 0-15 use the xor pair, 16-63 the majority/choice pair.
var roundPairs = [2]roundFuncs{
	{ff: ff0, gg: gg0},
	{ff: ff1, gg: gg1},
}

func pairOf(j int) *roundFuncs {
	if j < 16 {
		return &roundPairs[0]
	}
	return &roundPairs[1]
}

// W[j] for j in 16..67.
func expandWord(w *schedule, j int) uint32 {
	return p1(w[j-16]^w[j-9]^bits.RotateLeft32(w[j-3], 15)) ^ bits.RotateLeft32(w[j-13], 7) ^ w[j-6]
}

// fill w from one 64-byte block.
func expand(w *schedule, block []byte) {
	_ = block[BlockSize-1]
	for i := 0; i < 16; i++ {
		w[i] = utils.BigEndianBytesToUint32([4]byte(block[i*4 : i*4+4]))
	}
	for j := 16; j < len(w); j++ {
		w[j] = expandWord(w, j)
	}
}

/*
compress one block into state.

	w is caller-owned scratch; it holds message-derived words on return and
	must be erased by the caller before it goes out of scope.
*/
func transform(state *[8]uint32, block []byte, w *schedule) {
	expand(w, block)

	a, b, c, d := state[0], state[1], state[2], state[3]
	e, f, g, h := state[4], state[5], state[6], state[7]

	for j := 0; j < 64; j++ {
		rf := pairOf(j)
		a12 := bits.RotateLeft32(a, 12)
		ss1 := bits.RotateLeft32(a12+e+roundT[j], 7)
		tt1 := rf.ff(a, b, c) + d + (ss1 ^ a12) + (w[j] ^ w[j+4])
		tt2 := rf.gg(e, f, g) + h + ss1 + w[j]

		d, c, b, a = c, bits.RotateLeft32(b, 9), a, tt1
		h, g, f, e = g, bits.RotateLeft32(f, 19), e, p0(tt2)
	}

	state[0] ^= a
	state[1] ^= b
	state[2] ^= c
	state[3] ^= d
	state[4] ^= e
	state[5] ^= f
	state[6] ^= g
	state[7] ^= h
}
