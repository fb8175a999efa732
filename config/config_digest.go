// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>

package config

import (
	"errors"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"sm3crypt/defErr"
)

const (
	DefaultAlgorithm = `sm3`
	DefaultChunkSize = 32 << 10
	MaxChunkSize     = 16 << 20
)

type (
	DigestConfig struct {
		Algorithm  string `yaml:"Algorithm"`
		KeyFile    string `yaml:"KeyFile"`
		ChunkSize  int    `yaml:"ChunkSize"`
		CrossCheck bool   `yaml:"CrossCheck"`
	}
	DigestToolConfig struct {
		Digest DigestConfig `yaml:"digest"`
	}
)

var (
	safe_read_digest sync.RWMutex
	ErrChunkSize     = errors.New(`ChunkSize out of range`)
)

func DefaultDigestConfig() *DigestToolConfig {
	return &DigestToolConfig{Digest: DigestConfig{
		Algorithm: DefaultAlgorithm,
		ChunkSize: DefaultChunkSize,
	}}
}

// fill missing fields and reject nonsense.
func (c *DigestToolConfig) Normalize() error {
	if c.Digest.Algorithm == `` {
		c.Digest.Algorithm = DefaultAlgorithm
	}
	if c.Digest.ChunkSize == 0 {
		c.Digest.ChunkSize = DefaultChunkSize
	}
	if c.Digest.ChunkSize < 0 || c.Digest.ChunkSize > MaxChunkSize {
		return ErrChunkSize
	}
	return nil
}

func ParseDigestYAML(path string) (*DigestToolConfig, error) {
	safe_read_digest.RLock()
	cfg_data, err := os.ReadFile(path)
	safe_read_digest.RUnlock()
	if err != nil {
		return nil, defErr.DescribeThenConcat(`unable to read `+path, err)
	}
	res := DefaultDigestConfig()
	if err = yaml.Unmarshal(cfg_data, res); err != nil {
		return nil, defErr.DescribeThenConcat(`unable to parse `+path, err)
	}
	if err = res.Normalize(); err != nil {
		return nil, defErr.DescribeThenConcat(path, err)
	}
	return res, nil
}
