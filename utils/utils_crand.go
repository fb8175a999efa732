// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package utils

import (
	crand "crypto/rand"
)

func SetRandByte(inp *[]byte) (int, error) {
	return crand.Read(*inp)
}

// fresh slice of n random bytes.
func RandBytes(n int) ([]byte, error) {
	res := make([]byte, n)
	if _, err := SetRandByte(&res); err != nil {
		return nil, err
	}
	return res, nil
}
