// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package utils

import "runtime"

/*
Xbzero zeroes inp in place.

	Kept out of line and pinned with runtime.KeepAlive, so the stores stay
	even when the caller never reads inp again.
*/
//go:noinline
func Xbzero(inp []byte) {
	for i := range inp {
		inp[i] = 0
	}
	runtime.KeepAlive(inp)
}

// XbzeroWords is Xbzero for 32-bit word buffers such as hash states and schedules.
//
//go:noinline
func XbzeroWords(inp []uint32) {
	for i := range inp {
		inp[i] = 0
	}
	runtime.KeepAlive(inp)
}
