// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package sm3

import "hash"

// hash.Hash view of a Ctx.
type digest struct {
	ctx Ctx
}

// New returns a hash.Hash computing SM3. Sum does not change the running state.
func New() hash.Hash {
	d := new(digest)
	d.Reset()
	return d
}

func (d *digest) Reset()         { d.ctx.Init() }
func (d *digest) Size() int      { return Size }
func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (int, error) {
	d.ctx.Update(p)
	return len(p), nil
}

func (d *digest) Sum(in []byte) []byte {
	// Final erases, so finalize a copy.
	d0 := d.ctx
	sum := d0.Final()
	return append(in, sum[:]...)
}
