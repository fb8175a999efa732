// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package hashciphers

import (
	"crypto/sha256"

	"golang.org/x/crypto/sha3"
)

type (
	Sha256   struct{ streamHasher }
	Sha3_256 struct{ streamHasher }
)

func (s *Sha3_256) CalculateHash(msg []byte) []byte {
	res := sha3.Sum256(msg)
	return res[:]
}

func (sha *Sha256) CalculateHash(msg []byte) []byte {
	tmp := sha256.Sum256(msg)
	return tmp[:]
}

func (sha *Sha256) GetHashLen() uint64 { return sha256.Size }
func (s *Sha3_256) GetHashLen() uint64 { return 32 }

func (sha *Sha256) NewHasher() { sha.renew(sha256.New) }
func (s *Sha3_256) NewHasher() { s.renew(sha3.New256) }
