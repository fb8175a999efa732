// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package sm3

import (
	"encoding/hex"
	"math/bits"
	"math/rand"
	"strings"
	"testing"
	"unsafe"

	gmsm3 "github.com/emmansun/gmsm/sm3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sm3crypt/utils"
)

var vectors = []struct {
	msg  string
	want string
}{
	{``, `1ab21d8355cfa17f8e61194831e81a8f22bec8c728fefb747ed035eb5082aa2b`},
	{`abc`, `66c7f0f462eeedd9d1f2d46bdc10e4e24167c4875cf2f7a2297da02b8f4ba8e0`},
	{strings.Repeat(`abcd`, 16), `debe9ff92275b8a138604889c18e5a4d6fdb70e5387e5765293dcba39c0c5732`},
}

// view the whole context as raw bytes.
func ctxBytes(ctx *Ctx) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(ctx)), unsafe.Sizeof(*ctx))
}

func TestKnownAnswers(t *testing.T) {
	for _, v := range vectors {
		sum := Sum([]byte(v.msg))
		assert.Equal(t, v.want, hex.EncodeToString(sum[:]), "msg %q", v.msg)

		var ctx Ctx
		ctx.Init()
		ctx.Update([]byte(v.msg))
		got := ctx.Final()
		assert.Equal(t, sum, got)
	}
}

func TestRoundConstants(t *testing.T) {
	for j := 0; j < 64; j++ {
		base := uint32(0x79cc4519)
		if j >= 16 {
			base = 0x7a879d8a
		}
		assert.Equal(t, bits.RotateLeft32(base, j%32), roundT[j], "T[%d]", j)
	}
}

func TestPermutations(t *testing.T) {
	assert.Equal(t, uint32(0), p0(0))
	assert.Equal(t, uint32(1|1<<9|1<<17), p0(1))
	assert.Equal(t, uint32(1|1<<15|1<<23), p1(1))
	// ff1 is majority, gg1 is choice.
	assert.Equal(t, uint32(0b1110_1000), ff1(0b1111_0000, 0b1100_1100, 0b1010_1010))
	assert.Equal(t, uint32(0b1100_1010), gg1(0b1111_0000, 0b1100_1100, 0b1010_1010))
}

func TestBlockBoundaries(t *testing.T) {
	for _, n := range []int{1, 55, 56, 57, 63, 64, 65, 119, 120, 127, 128, 129, 1000} {
		msg := make([]byte, n)
		for i := range msg {
			msg[i] = byte(i*7 + n)
		}
		want := gmsm3.Sum(msg)
		assert.Equal(t, want, Sum(msg), "len %d", n)
	}
}

func TestChunkingInvariance(t *testing.T) {
	rnd := rand.New(rand.NewSource(32905))
	for round := 0; round < 50; round++ {
		msg := make([]byte, rnd.Intn(600))
		rnd.Read(msg)
		want := Sum(msg)

		var ctx Ctx
		ctx.Init()
		rest := msg
		for len(rest) > 0 {
			n := rnd.Intn(len(rest) + 1)
			ctx.Update(rest[:n])
			rest = rest[n:]
		}
		ctx.Update(nil)
		require.Equal(t, want, ctx.Final(), "len %d", len(msg))
	}
}

func TestByteAtATime(t *testing.T) {
	msg := []byte(strings.Repeat(`abcd`, 40))
	var ctx Ctx
	ctx.Init()
	for i := range msg {
		ctx.Update(msg[i : i+1])
	}
	assert.Equal(t, gmsm3.Sum(msg), ctx.Final())
}

func TestAgainstReference(t *testing.T) {
	for n := 0; n < 300; n += 13 {
		msg, err := utils.RandBytes(n)
		require.NoError(t, err)
		assert.Equal(t, gmsm3.Sum(msg), Sum(msg), "len %d", n)
	}
}

func TestFinalErasesContext(t *testing.T) {
	var ctx Ctx
	ctx.Init()
	ctx.Update([]byte(`a partial block that stays pending`))
	assert.False(t, utils.AllZero(ctxBytes(&ctx)))
	ctx.Final()
	assert.True(t, utils.AllZero(ctxBytes(&ctx)))

	Hash([]byte(strings.Repeat(`x`, 130)), &ctx)
	assert.True(t, utils.AllZero(ctxBytes(&ctx)))
}

func TestReinit(t *testing.T) {
	var fresh, used Ctx
	fresh.Init()

	used.Init()
	used.Update([]byte(`abc`))
	used.Init()
	assert.Equal(t, ctxBytes(&fresh), ctxBytes(&used))

	used.Final()
	used.Init()
	assert.Equal(t, ctxBytes(&fresh), ctxBytes(&used))
	used.Update([]byte(`abc`))
	sum := used.Final()
	assert.Equal(t, vectors[1].want, hex.EncodeToString(sum[:]))
}

func TestDeterminism(t *testing.T) {
	msg := []byte(`determinism`)
	a, b := Sum(msg), Sum(msg)
	assert.Equal(t, a, b)
	assert.Len(t, a[:], Size)
}

func TestHashInterface(t *testing.T) {
	h := New()
	assert.Equal(t, Size, h.Size())
	assert.Equal(t, BlockSize, h.BlockSize())

	h.Write([]byte(`ab`))
	first := h.Sum(nil)
	h.Write([]byte(`c`))
	assert.Equal(t, vectors[1].want, hex.EncodeToString(h.Sum(nil)))
	// Sum must not disturb the running state.
	assert.Equal(t, vectors[1].want, hex.EncodeToString(h.Sum(nil)))

	ab := Sum([]byte(`ab`))
	assert.Equal(t, ab[:], first)

	h.Reset()
	assert.Equal(t, vectors[0].want, hex.EncodeToString(h.Sum([]byte{})))
	assert.Equal(t, []byte{0xee}, h.Sum([]byte{0xee})[:1])
}

func BenchmarkUpdate8K(b *testing.B) {
	buf := make([]byte, 8192)
	b.SetBytes(int64(len(buf)))
	var ctx Ctx
	ctx.Init()
	for i := 0; i < b.N; i++ {
		ctx.Update(buf)
	}
}
