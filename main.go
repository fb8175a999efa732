// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>

// sm3sum prints SM3, HMAC-SM3 (or other registered) digests of files or stdin.
package main

import (
	"crypto/hmac"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"log"
	"os"
	"strings"

	gmsm3 "github.com/emmansun/gmsm/sm3"
	"github.com/spf13/pflag"

	"sm3crypt/config"
	cryptoprotect "sm3crypt/cryptoProtect"
	hashciphers "sm3crypt/cryptoProtect/hashCiphers"
	"sm3crypt/defErr"
	"sm3crypt/utils"
)

var ErrMismatch = errors.New(`digest differs from reference implementation`)

type options struct {
	cfg  *config.DigestToolConfig
	list bool
	args []string
}

// engine used as an io.Writer.
type accumulator struct {
	h cryptoprotect.StreamHashCipher
}

func (a accumulator) Write(p []byte) (int, error) { return a.h.Accumulate(p) }

// crypto/hmac over gmsm, only for cross-checking HMAC-SM3.
type hmacReference struct {
	key    []byte
	hasher hash.Hash
}

func (r *hmacReference) CalculateHash(msg []byte) []byte {
	m := hmac.New(gmsm3.New, r.key)
	m.Write(msg)
	return m.Sum(nil)
}
func (r *hmacReference) GetHashLen() uint64 { return uint64(gmsm3.Size) }

// a previous hasher is rekeyed in place, so no stale state survives.
func (r *hmacReference) NewHasher() {
	if r.hasher != nil {
		r.hasher.Reset()
		return
	}
	r.hasher = hmac.New(gmsm3.New, r.key)
}

func (r *hmacReference) Accumulate(msg []byte) (int, error) {
	if r.hasher == nil {
		return 0, hashciphers.ErrNoHasher
	}
	return r.hasher.Write(msg)
}

func (r *hmacReference) AggregatedHash() []byte {
	if r.hasher == nil {
		return nil
	}
	return r.hasher.Sum(nil)
}

func parseArgs(args []string) (*options, error) {
	fs := pflag.NewFlagSet(`sm3sum`, pflag.ContinueOnError)
	cfgPath := fs.StringP(`config`, `c`, ``, `YAML configuration file`)
	algo := fs.StringP(`algo`, `a`, config.DefaultAlgorithm, `hash algorithm: `+strings.Join(cryptoprotect.SupportedHashCiphers(), `, `))
	keyFile := fs.StringP(`key-file`, `k`, ``, `file holding the MAC key (hmac-sm3)`)
	chunk := fs.Int(`chunk`, config.DefaultChunkSize, `read size in bytes`)
	check := fs.Bool(`check`, false, `recompute with emmansun/gmsm and compare`)
	list := fs.BoolP(`list`, `l`, false, `list algorithms and exit`)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := config.DefaultDigestConfig()
	if *cfgPath != `` {
		var err error
		if cfg, err = config.ParseDigestYAML(*cfgPath); err != nil {
			return nil, err
		}
	}
	// explicit flags win over the file.
	if fs.Changed(`algo`) {
		cfg.Digest.Algorithm = *algo
	}
	if fs.Changed(`key-file`) {
		cfg.Digest.KeyFile = *keyFile
	}
	if fs.Changed(`chunk`) {
		cfg.Digest.ChunkSize = *chunk
	}
	if fs.Changed(`check`) {
		cfg.Digest.CrossCheck = *check
	}
	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	return &options{cfg: cfg, list: *list, args: fs.Args()}, nil
}

func referenceFor(algo string, key []byte) (cryptoprotect.StreamHashCipher, error) {
	switch strings.ToLower(algo) {
	case `sm3`:
		return cryptoprotect.PickHashCipher(cryptoprotect.PICK_SM3_GMSM, nil)
	case `hmac-sm3`:
		return &hmacReference{key: key}, nil
	}
	return nil, defErr.Concat(errors.New(`no reference implementation`), algo)
}

// stream r through every engine in one pass.
func digestReader(r io.Reader, chunk int, engines ...cryptoprotect.StreamHashCipher) ([][]byte, error) {
	writers := make([]io.Writer, len(engines))
	for i, h := range engines {
		h.NewHasher()
		writers[i] = accumulator{h}
	}
	buf := make([]byte, chunk)
	if _, err := io.CopyBuffer(io.MultiWriter(writers...), r, buf); err != nil {
		return nil, err
	}
	res := make([][]byte, len(engines))
	for i, h := range engines {
		res[i] = h.AggregatedHash()
	}
	return res, nil
}

func digestOne(name string, r io.Reader, opt *options, engines []cryptoprotect.StreamHashCipher, out io.Writer) error {
	sums, err := digestReader(r, opt.cfg.Digest.ChunkSize, engines...)
	if err != nil {
		return defErr.DescribeThenConcat(name, err)
	}
	if len(sums) > 1 {
		if ok, reason := utils.CmpByte2Slices(sums[0], sums[1]); !ok {
			return defErr.Concat(ErrMismatch, name+`: `+reason)
		}
	}
	fmt.Fprintf(out, "%s  %s\n", hex.EncodeToString(sums[0]), name)
	return nil
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	opt, err := parseArgs(args)
	if err != nil {
		log.Println(err.Error())
		return 2
	}
	if opt.list {
		for _, name := range cryptoprotect.SupportedHashCiphers() {
			fmt.Fprintln(stdout, name)
		}
		return 0
	}

	d := opt.cfg.Digest
	choice, err := cryptoprotect.HashCipherChoice(d.Algorithm)
	if err != nil {
		log.Println(err.Error())
		return 2
	}

	var key []byte
	if choice.Keyed() {
		if d.KeyFile == `` {
			log.Println(`--key-file is required for`, choice.String())
			return 2
		}
		if key, err = os.ReadFile(d.KeyFile); err != nil {
			log.Println(defErr.DescribeThenConcat(`unable to read key`, err).Error())
			return 1
		}
		locked := utils.LockMemory(key)
		defer utils.UnlockMemory(key, locked)
	}

	h, err := cryptoprotect.PickHashCipher(choice, key)
	if err != nil {
		log.Println(err.Error())
		return 2
	}
	if hm, ok := h.(*hashciphers.HmacSM3); ok {
		defer hm.DropKey()
	}
	engines := []cryptoprotect.StreamHashCipher{h}
	if d.CrossCheck {
		ref, err := referenceFor(choice.String(), key)
		if err != nil {
			log.Println(err.Error())
			return 2
		}
		engines = append(engines, ref)
	}

	if len(opt.args) == 0 {
		opt.args = []string{`-`}
	}
	if err = digestAll(opt, engines, stdin, stdout); err != nil {
		log.Println(err.Error())
		return 1
	}
	return 0
}

// every name is attempted; failures are chained and reported together.
func digestAll(opt *options, engines []cryptoprotect.StreamHashCipher, stdin io.Reader, stdout io.Writer) error {
	var failed error
	for _, name := range opt.args {
		var r io.Reader = stdin
		var f *os.File
		if name != `-` {
			var err error
			if f, err = os.Open(name); err != nil {
				failed = defErr.PushErrorToErrChain(failed, err)
				continue
			}
			r = f
		}
		if err := digestOne(name, r, opt, engines, stdout); err != nil {
			failed = defErr.PushErrorToErrChain(failed, err)
		}
		if f != nil {
			f.Close()
		}
	}
	return failed
}

func main() {
	log.SetFlags(0)
	log.SetPrefix(`sm3sum: `)
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}
