//go:build !(linux || darwin || freebsd || netbsd || openbsd)
// +build !linux,!darwin,!freebsd,!netbsd,!openbsd

// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package utils

func LockMemory(inp []byte) bool { return false }

func UnlockMemory(inp []byte, locked bool) { Xbzero(inp) }
