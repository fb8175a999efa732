// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package utils

import (
	"fmt"
)

/*
compare whether two byte slices are the same.

	return true, `ok` if two bytesSlices are equal, otherwise return false with the reason.
	Not constant time. Use it for digests in tests and tooling only.
*/
func CmpByte2Slices(a []byte, b []byte) (bool, string) {
	lena, lenb := len(a), len(b)
	if lena != lenb {
		return false, fmt.Sprintf(`unequal: differentLen found:(%d,%d)`, lena, lenb)
	}
	for idx, val := range a {
		if val != b[idx] {
			return false, fmt.Sprintf(`unequal: differentVal found at:%d`, idx)
		}
	}
	return true, `ok`
}

// true if every byte of inp is zero.
func AllZero(inp []byte) bool {
	var acc byte
	for _, v := range inp {
		acc |= v
	}
	return acc == 0
}
