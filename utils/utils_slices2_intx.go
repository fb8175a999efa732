// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package utils

func BigEndianBytesToUint32(inp [4]byte) (res uint32) {
	var functor func(byte, int) uint32 = func(b byte, i int) uint32 { return uint32(b) << i }
	res = functor(inp[0], 24) | functor(inp[1], 16) | functor(inp[2], 8) | functor(inp[3], 0)
	return
}

