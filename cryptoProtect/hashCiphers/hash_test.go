// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package hashciphers

import (
	"encoding/hex"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sm3crypt/utils"
)

type engine interface {
	CalculateHash(msg []byte) []byte
	GetHashLen() uint64
	NewHasher()
	Accumulate(msg []byte) (int, error)
	AggregatedHash() []byte
}

func TestStreamingMatchesOneShot(t *testing.T) {
	hm := &HmacSM3{}
	hm.SetKey([]byte(`Jefe`))
	engines := map[string]engine{
		`sm3`:         &SM3{},
		`sm3-gmsm`:    &GmsmSM3{},
		`hmac-sm3`:    hm,
		`sha256`:      &Sha256{},
		`sha3-256`:    &Sha3_256{},
		`blake2b-256`: &Blake2b256{},
		`blake2s-256`: &Blake2s256{},
	}
	msg, err := utils.RandBytes(300)
	require.NoError(t, err)

	for name, e := range engines {
		_, err := e.Accumulate(msg)
		assert.ErrorIs(t, err, ErrNoHasher, name)
		assert.Nil(t, e.AggregatedHash(), name)

		want := e.CalculateHash(msg)
		assert.Len(t, want, int(e.GetHashLen()), name)

		// twice, so reuse after AggregatedHash is covered.
		for i := 0; i < 2; i++ {
			e.NewHasher()
			n, err := e.Accumulate(msg[:100])
			require.NoError(t, err)
			assert.Equal(t, 100, n)
			_, err = e.Accumulate(msg[100:])
			require.NoError(t, err)
			assert.Equal(t, want, e.AggregatedHash(), name)
		}
		utils.AddTag2HexHeader(want, name)
	}
}

func TestSM3AgreesWithGmsm(t *testing.T) {
	var ours SM3
	var ref GmsmSM3
	assert.Equal(t, uint64(32), ref.GetHashLen())
	assert.Equal(t, ours.GetHashLen(), ref.GetHashLen())
	for n := 0; n < 200; n += 7 {
		msg, err := utils.RandBytes(n)
		require.NoError(t, err)
		assert.Equal(t, ref.CalculateHash(msg), ours.CalculateHash(msg), "len %d", n)
	}
}

func TestHmacKey(t *testing.T) {
	var hm HmacSM3
	hm.SetKey([]byte(`Jefe`))
	mac := hm.CalculateHash([]byte(`what do ya want for nothing?`))
	assert.Equal(t, `2e87f1d16862e6d964b50a5200bf2b10b764faa9680a296a2405f24bec39f882`, hex.EncodeToString(mac))

	key := hm.key
	hm.DropKey()
	assert.True(t, utils.AllZero(key))
	assert.Nil(t, hm.key)
	log.Println(`hmac key dropped`)
}
