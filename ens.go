// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package yogurt

// ENSNameByHash resolves an ENS namehash to its plaintext name, if the host
// has it in its reverse-lookup table.
func ENSNameByHash(h Heap, hash [32]byte) (string, bool) {
	p := Imports.ENSNameByHash(EncodeBytes(h, hash[:]))
	if p.IsNull() {
		return "", false
	}
	return DecodeString(h, p), true
}
