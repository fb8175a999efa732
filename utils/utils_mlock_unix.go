//go:build linux || darwin || freebsd || netbsd || openbsd
// +build linux darwin freebsd netbsd openbsd

// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package utils

import (
	"log"

	"golang.org/x/sys/unix"
)

// Keep key material out of swap. Failure (e.g. RLIMIT_MEMLOCK) is logged and ignored.
func LockMemory(inp []byte) bool {
	if len(inp) == 0 {
		return false
	}
	if err := unix.Mlock(inp); err != nil {
		log.Println(`mlock failed:`, err.Error())
		return false
	}
	return true
}

// erase then release a buffer taken by LockMemory.
func UnlockMemory(inp []byte, locked bool) {
	Xbzero(inp)
	if !locked || len(inp) == 0 {
		return
	}
	if err := unix.Munlock(inp); err != nil {
		log.Println(`munlock failed:`, err.Error())
	}
}
