// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package cryptoprotect

import (
	"errors"
	"sort"
	"strings"

	hashciphers "sm3crypt/cryptoProtect/hashCiphers"
	"sm3crypt/defErr"
)

/*
	Hash engines are picked by a small number, or by name from the command line
	and configuration. SM3 and HMAC-SM3 are this module's own implementations,
	the rest come from gmsm, the standard library and x/crypto.
*/

type hash_cipher_choice uint // hash crypto alias

const (
	PICK_SM3        hash_cipher_choice = iota + 1 // sm3 hash
	PICK_HMAC_SM3                                 // hmac-sm3, keyed
	PICK_SM3_GMSM                                 // sm3 from emmansun/gmsm
	PICK_SHA256                                   // sha256
	PICK_SHA3_256                                 // sha3-256
	PICK_BLAKE2B256                               // blake2b256
	PICK_BLAKE2S256                               // blake2s256
)

var (
	ErrUnknownHash = errors.New(`unknown hash cipher`)
	ErrKeyRequired = errors.New(`hash cipher needs a key`)
	ErrKeyUnwanted = errors.New(`hash cipher takes no key`)
)

var hashCipherNames = map[string]hash_cipher_choice{
	`sm3`:         PICK_SM3,
	`hmac-sm3`:    PICK_HMAC_SM3,
	`sm3-gmsm`:    PICK_SM3_GMSM,
	`sha256`:      PICK_SHA256,
	`sha3-256`:    PICK_SHA3_256,
	`blake2b-256`: PICK_BLAKE2B256,
	`blake2s-256`: PICK_BLAKE2S256,
}

type HashCipher interface {
	CalculateHash(msg []byte) []byte // not for file
	GetHashLen() uint64
}

// streaming form, used for files and stdin.
type StreamHashCipher interface {
	HashCipher
	NewHasher()
	Accumulate(msg []byte) (int, error)
	AggregatedHash() []byte
}

func (c hash_cipher_choice) Keyed() bool { return c == PICK_HMAC_SM3 }

func (c hash_cipher_choice) String() string {
	for name, v := range hashCipherNames {
		if v == c {
			return name
		}
	}
	return `unknown`
}

// case-insensitive name lookup.
func HashCipherChoice(name string) (hash_cipher_choice, error) {
	c, ok := hashCipherNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, defErr.Concat(ErrUnknownHash, name)
	}
	return c, nil
}

func SupportedHashCiphers() []string {
	res := make([]string, 0, len(hashCipherNames))
	for name := range hashCipherNames {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

/*
PickHashCipher builds the engine for choice.

	key must be non-nil exactly when the choice is keyed; the engine keeps its own copy.
*/
func PickHashCipher(choice hash_cipher_choice, key []byte) (StreamHashCipher, error) {
	if choice.Keyed() && key == nil {
		return nil, defErr.Concat(ErrKeyRequired, choice.String())
	}
	if !choice.Keyed() && key != nil {
		return nil, defErr.Concat(ErrKeyUnwanted, choice.String())
	}
	switch choice {
	case PICK_SM3:
		return &hashciphers.SM3{}, nil
	case PICK_HMAC_SM3:
		hm := &hashciphers.HmacSM3{}
		hm.SetKey(key)
		return hm, nil
	case PICK_SM3_GMSM:
		return &hashciphers.GmsmSM3{}, nil
	case PICK_SHA256:
		return &hashciphers.Sha256{}, nil
	case PICK_SHA3_256:
		return &hashciphers.Sha3_256{}, nil
	case PICK_BLAKE2B256:
		return &hashciphers.Blake2b256{}, nil
	case PICK_BLAKE2S256:
		return &hashciphers.Blake2s256{}, nil
	}
	return nil, ErrUnknownHash
}
