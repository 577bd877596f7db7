// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package yogurt

// BytesToString converts a byte buffer through typeConversion.bytesToString
// (lossy UTF-8 decoding performed host-side, as opposed to DecodeString's
// UTF-16LE managed-string decoding).
func BytesToString(h Heap, b []byte) string {
	return DecodeString(h, Imports.BytesToString(EncodeBytes(h, b)))
}

// BytesToHex renders b as a "0x"-prefixed hex string via the host.
func BytesToHex(h Heap, b []byte) string {
	return DecodeString(h, Imports.BytesToHex(EncodeBytes(h, b)))
}

// StringToH160 parses a hex address string into a 20-byte Address via the
// host's own validation/parsing logic, rather than reimplementing it.
func StringToH160(h Heap, s string) Address {
	wire := EncodeString(h, s)
	var addr Address
	copy(addr[:], DecodeBytes(h, Imports.StringToH160(wire)))
	return addr
}

// BytesToBase58 renders b as a base58-encoded string via the host.
func BytesToBase58(h Heap, b []byte) string {
	return DecodeString(h, Imports.BytesToBase58(EncodeBytes(h, b)))
}
