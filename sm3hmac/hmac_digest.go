// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package sm3hmac

import (
	"hash"
	"runtime"

	"sm3crypt/utils"
)

/*
hash.Hash view of a Ctx.

	primed is the keyed context before any message byte; Reset restores it.
	It holds only key-derived pads, never the raw key, and lives until Erase.
*/
type digest struct {
	primed Ctx
	ctx    Ctx
}

// New returns a hash.Hash computing HMAC-SM3 under key.
// Sum leaves the running state untouched. Call Erase when done with it.
func New(key []byte) hash.Hash {
	d := new(digest)
	d.primed.Init(key)
	d.Reset()
	return d
}

// Erase zeroes the keyed state of h if it came from New. The hash is unusable afterwards.
func Erase(h hash.Hash) bool {
	d, ok := h.(*digest)
	if !ok {
		return false
	}
	d.primed.inner.Final()
	d.ctx.inner.Final()
	utils.Xbzero(d.primed.okey[:])
	utils.Xbzero(d.ctx.okey[:])
	runtime.KeepAlive(d)
	return true
}

func (d *digest) Reset()         { d.ctx = d.primed }
func (d *digest) Size() int      { return Size }
func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (int, error) {
	d.ctx.Update(p)
	return len(p), nil
}

func (d *digest) Sum(in []byte) []byte {
	d0 := d.ctx
	mac := d0.Final()
	return append(in, mac[:]...)
}
