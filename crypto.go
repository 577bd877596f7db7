// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package yogurt

// Keccak256 hashes data through the host's crypto.keccak256 import and
// decodes the resulting 32-byte managed buffer. The module never links its
// own keccak implementation: the host is the single source of truth for
// the hash used throughout the surrounding chain (log topics, CREATE2
// addresses, ...).
func Keccak256(h Heap, data []byte) [32]byte {
	wire := EncodeBytes(h, data)
	out := DecodeBytes(h, Imports.Keccak256(wire))
	var digest [32]byte
	copy(digest[:], out)
	return digest
}
