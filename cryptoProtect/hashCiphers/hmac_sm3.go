// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package hashciphers

import (
	"sm3crypt/sm3hmac"
	"sm3crypt/utils"
)

// HmacSM3 is a keyed engine. SetKey must precede NewHasher.
type HmacSM3 struct {
	key  []byte
	ctx  sm3hmac.Ctx
	live bool
}

// private copy of key. The previous key, if any, is erased.
func (hm *HmacSM3) SetKey(key []byte) {
	utils.Xbzero(hm.key)
	hm.key = append(make([]byte, 0, len(key)), key...)
}

// erase the stored key.
func (hm *HmacSM3) DropKey() {
	utils.Xbzero(hm.key)
	hm.key = nil
}

func (hm *HmacSM3) CalculateHash(msg []byte) []byte {
	tmp := sm3hmac.Sum(msg, hm.key)
	return tmp[:]
}

func (hm *HmacSM3) GetHashLen() uint64 { return sm3hmac.Size }

func (hm *HmacSM3) NewHasher() {
	hm.ctx.Init(hm.key)
	hm.live = true
}

func (hm *HmacSM3) Accumulate(msg []byte) (cnt int, err error) {
	if !hm.live {
		return 0, ErrNoHasher
	}
	hm.ctx.Update(msg)
	return len(msg), nil
}

func (hm *HmacSM3) AggregatedHash() []byte {
	if !hm.live {
		return nil
	}
	hm.live = false
	tmp := hm.ctx.Final()
	return tmp[:]
}
