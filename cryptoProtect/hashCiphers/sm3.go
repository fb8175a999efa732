// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package hashciphers

import (
	gmsm3 "github.com/emmansun/gmsm/sm3"

	"sm3crypt/sm3"
)

/*
SM3 drives sm3.Ctx directly.

	AggregatedHash finalizes and erases the context, so the next round of
	Accumulate needs a fresh NewHasher.
*/
type SM3 struct {
	ctx  sm3.Ctx
	live bool
}

func (sm *SM3) CalculateHash(msg []byte) []byte {
	tmp := sm3.Sum(msg)
	return tmp[:]
}

func (sm *SM3) GetHashLen() uint64 { return sm3.Size }

func (sm *SM3) NewHasher() {
	sm.ctx.Init()
	sm.live = true
}

func (sm *SM3) Accumulate(msg []byte) (cnt int, err error) {
	if !sm.live {
		return 0, ErrNoHasher
	}
	sm.ctx.Update(msg)
	return len(msg), nil
}

func (sm *SM3) AggregatedHash() []byte {
	if !sm.live {
		return nil
	}
	sm.live = false
	tmp := sm.ctx.Final()
	return tmp[:]
}

// GmsmSM3 is the emmansun/gmsm implementation, kept as an independent reference.
type GmsmSM3 struct {
	streamHasher
}

func (sm *GmsmSM3) CalculateHash(msg []byte) []byte {
	tmp := gmsm3.Sum(msg)
	return tmp[:]
}

func (sm *GmsmSM3) GetHashLen() uint64 { return uint64(gmsm3.Size) }
func (sm *GmsmSM3) NewHasher()         { sm.renew(gmsm3.New) }
