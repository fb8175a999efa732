// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>

/*
Package sm3 implements the SM3 hash function (GB/T 32905-2016).

	Contexts follow init -> update* -> final. Final erases the context, so a
	finalized context has to be re-initialised before it is used again.
	A context must not be shared between goroutines without external locking.
*/
package sm3

import (
	"runtime"

	"sm3crypt/utils"
)

const (
	Size      = 32 // digest length in bytes
	BlockSize = 64 // compression block length in bytes
)

var initialState = [8]uint32{
	0x7380166f, 0x4914b2b9, 0x172442d7, 0xda8a0600,
	0xa96f30bc, 0x163138aa, 0xe38dee4d, 0xb0fb0e4e,
}

// first byte 0x80, rest zero.
var padding = [BlockSize]byte{0x80}

type Ctx struct {
	state [8]uint32
	count uint64 // bits absorbed so far, including the pending tail
	buf   [BlockSize]byte
}

// Init resets ctx to the standard initial state. Safe on fresh or finalized contexts.
func (ctx *Ctx) Init() {
	ctx.state = initialState
	ctx.count = 0
	utils.Xbzero(ctx.buf[:])
}

// Update absorbs p. Empty input is a no-op.
func (ctx *Ctx) Update(p []byte) {
	var w schedule
	ctx.update(p, &w)
	utils.XbzeroWords(w[:])
}

// Final pads, emits the digest and erases ctx.
func (ctx *Ctx) Final() (digest [Size]byte) {
	var w schedule
	ctx.final(&digest, &w)
	ctx.erase()
	utils.XbzeroWords(w[:])
	return
}

// Hash computes the digest of p using ctx as working storage. ctx is erased on return.
func Hash(p []byte, ctx *Ctx) (digest [Size]byte) {
	var w schedule
	ctx.Init()
	ctx.update(p, &w)
	ctx.final(&digest, &w)
	ctx.erase()
	utils.XbzeroWords(w[:])
	return
}

// Sum returns the SM3 digest of p.
func Sum(p []byte) [Size]byte {
	var ctx Ctx
	return Hash(p, &ctx)
}

func (ctx *Ctx) pending() int {
	return int(ctx.count>>3) & (BlockSize - 1)
}

func (ctx *Ctx) update(p []byte, w *schedule) {
	if len(p) == 0 {
		return
	}
	r := ctx.pending()
	ctx.count += uint64(len(p)) << 3

	if len(p) < BlockSize-r {
		copy(ctx.buf[r:], p)
		return
	}

	// complete the pending block first.
	n := copy(ctx.buf[r:], p)
	transform(&ctx.state, ctx.buf[:], w)
	p = p[n:]

	for len(p) >= BlockSize {
		transform(&ctx.state, p[:BlockSize], w)
		p = p[BlockSize:]
	}
	copy(ctx.buf[:], p)
}

// Merkle-Damgard padding with the 64-bit big-endian bit count at offset 56.
func (ctx *Ctx) pad(w *schedule) {
	r := ctx.pending()
	if r < 56 {
		copy(ctx.buf[r:56], padding[:])
	} else {
		copy(ctx.buf[r:], padding[:])
		transform(&ctx.state, ctx.buf[:], w)
		utils.Xbzero(ctx.buf[:56])
	}
	utils.PutBigEndianUint64(ctx.buf[56:], ctx.count)
	transform(&ctx.state, ctx.buf[:], w)
}

func (ctx *Ctx) final(digest *[Size]byte, w *schedule) {
	ctx.pad(w)
	for i, s := range ctx.state {
		utils.PutBigEndianUint32(digest[i*4:], s)
	}
}

func (ctx *Ctx) erase() {
	utils.XbzeroWords(ctx.state[:])
	ctx.count = 0
	utils.Xbzero(ctx.buf[:])
	runtime.KeepAlive(ctx)
}
