// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package utils

// dst must hold at least 4 bytes.
func PutBigEndianUint32(dst []byte, inp uint32) {
	_ = dst[3]
	dst[0] = byte(inp >> 24)
	dst[1] = byte(inp >> 16)
	dst[2] = byte(inp >> 8)
	dst[3] = byte(inp)
}

// dst must hold at least 8 bytes.
func PutBigEndianUint64(dst []byte, inp uint64) {
	_ = dst[7]
	for i := 0; i < 8; i++ {
		dst[i] = byte(inp >> (56 - (i << 3)))
	}
}

