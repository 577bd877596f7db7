// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package buildcache stores compiled WASM artifacts under a content hash of
// the sources that produced them, so a repeated `yogurt build` with nothing
// changed can skip invoking tinygo. Cached payloads are snappy-compressed
// the same way the teacher's own test fixtures are snappy-compressed
// ssz_snappy files, trading a cheap decompress for meaningfully smaller
// on-disk cache entries - a compiled subgraph module compresses well since
// it is mostly the tinygo/wasm-opt toolchain's own boilerplate runtime.
package buildcache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/golang/snappy"
)

// ErrMiss is returned by Load when no cache entry matches the given key.
var ErrMiss = errors.New("buildcache: no entry for key")

// Cache is a directory of snappy-compressed build artifacts keyed by a
// hash of their inputs.
type Cache struct {
	dir string
}

// Open returns a Cache rooted at dir, creating it if necessary.
func Open(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("buildcache: %w", err)
	}
	return &Cache{dir: dir}, nil
}

// Key hashes every named input file's contents together with opt, the
// build flag that changes tinygo's output for otherwise-identical sources.
// Inputs are sorted so key order does not affect the digest.
func Key(opt string, inputFiles []string) (string, error) {
	sorted := append([]string(nil), inputFiles...)
	sort.Strings(sorted)

	h := sha256.New()
	io.WriteString(h, opt)
	for _, path := range sorted {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("buildcache: hash %s: %w", path, err)
		}
		_, err = io.Copy(h, f)
		f.Close()
		if err != nil {
			return "", fmt.Errorf("buildcache: hash %s: %w", path, err)
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.dir, key+".wasm.snappy")
}

// Load returns the cached artifact for key, decompressed, or ErrMiss if no
// entry exists.
func (c *Cache) Load(key string) ([]byte, error) {
	raw, err := os.ReadFile(c.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("buildcache: %w", err)
	}
	out, err := snappy.Decode(nil, raw)
	if err != nil {
		return nil, fmt.Errorf("buildcache: corrupt cache entry %s: %w", key, err)
	}
	return out, nil
}

// Store compresses wasmBytes and writes it under key, replacing any
// existing entry.
func (c *Cache) Store(key string, wasmBytes []byte) error {
	compressed := snappy.Encode(nil, wasmBytes)
	if err := os.WriteFile(c.path(key), compressed, 0o644); err != nil {
		return fmt.Errorf("buildcache: %w", err)
	}
	return nil
}
