// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package hashciphers

import (
	"errors"
	"hash"
)

var ErrNoHasher = errors.New(`hasher not initiated, call NewHasher first`)

// shared streaming part for engines backed by a hash.Hash.
type streamHasher struct {
	hasher hash.Hash
}

func (s *streamHasher) renew(newFunc func() hash.Hash) {
	if s.hasher != nil {
		s.hasher.Reset()
		return
	}
	s.hasher = newFunc()
}

func (s *streamHasher) Accumulate(msg []byte) (cnt int, err error) {
	if s.hasher == nil {
		return 0, ErrNoHasher
	}
	return s.hasher.Write(msg)
}

func (s *streamHasher) AggregatedHash() []byte {
	if s.hasher == nil {
		return nil
	}
	return s.hasher.Sum(nil)
}
