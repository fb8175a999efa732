// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>

/*
Package sm3hmac implements HMAC-SM3 as used by GM/T 0042-2015.

	HMAC(key, msg) = SM3((K ^ opad) || SM3((K ^ ipad) || msg))

	K is the key zero-padded to 64 bytes, or the SM3 digest of the key
	zero-padded to 64 bytes when the key is longer than one block.
*/
package sm3hmac

import (
	"crypto/subtle"
	"runtime"

	"sm3crypt/sm3"
	"sm3crypt/utils"
)

const (
	Size      = sm3.Size
	BlockSize = sm3.BlockSize

	ipad = 0x36
	opad = 0x5c
)

type Ctx struct {
	inner sm3.Ctx
	okey  [BlockSize]byte // K ^ opad, kept for the outer hash
}

// K into dst, which must be zeroed beforehand.
func normalizeKey(dst *[BlockSize]byte, key []byte) {
	if len(key) > BlockSize {
		var kctx sm3.Ctx
		sum := sm3.Hash(key, &kctx)
		copy(dst[:], sum[:])
		utils.Xbzero(sum[:])
		return
	}
	copy(dst[:], key)
}

// Init keys ctx. The inner hash has absorbed K ^ ipad on return.
func (ctx *Ctx) Init(key []byte) {
	k := &ctx.okey
	utils.Xbzero(k[:])
	normalizeKey(k, key)

	for i := range k {
		k[i] ^= ipad
	}
	ctx.inner.Init()
	ctx.inner.Update(k[:])

	for i := range k {
		k[i] ^= ipad ^ opad
	}
}

func (ctx *Ctx) Update(p []byte) {
	ctx.inner.Update(p)
}

// Final returns the MAC and erases ctx including the padded key.
func (ctx *Ctx) Final() (mac [Size]byte) {
	innerSum := ctx.inner.Final()

	var outer sm3.Ctx
	outer.Init()
	outer.Update(ctx.okey[:])
	outer.Update(innerSum[:])
	mac = outer.Final()

	utils.Xbzero(innerSum[:])
	utils.Xbzero(ctx.okey[:])
	runtime.KeepAlive(ctx)
	return
}

// MAC computes HMAC-SM3 of data under key, using ctx as working storage.
func MAC(data, key []byte, ctx *Ctx) [Size]byte {
	ctx.Init(key)
	ctx.Update(data)
	return ctx.Final()
}

// Sum computes HMAC-SM3 of data under key.
func Sum(data, key []byte) [Size]byte {
	var ctx Ctx
	return MAC(data, key, &ctx)
}

// Verify reports whether mac is the HMAC-SM3 of data under key, in constant time.
func Verify(data, key, mac []byte) bool {
	want := Sum(data, key)
	ok := subtle.ConstantTimeCompare(want[:], mac) == 1
	utils.Xbzero(want[:])
	return ok
}
