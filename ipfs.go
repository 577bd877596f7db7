// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package yogurt

// IPFSCat fetches the content at an IPFS hash or path through ipfs.cat. A
// null result (content unavailable, or fetch timed out) decodes to
// (nil, false) rather than an error (§7 null-return policy).
func IPFSCat(h Heap, hashOrPath string) ([]byte, bool) {
	p := Imports.IPFSCat(EncodeString(h, hashOrPath))
	if p.IsNull() {
		return nil, false
	}
	return DecodeBytes(h, p), true
}

// IPFSMap names an exported handler, callbackExportName, the host should invoke once per
// top-level JSON entry found while streaming the given IPFS path, mirroring
// ipfs.map's shape; userData is an opaque pointer round-tripped back to the
// callback on each invocation.
func IPFSMap(h Heap, hashOrPath, callbackExportName string, userData Ptr, flags []string) {
	flagsArr := EncodeArrayOfStrings(h, flags)
	Imports.IPFSMap(
		EncodeString(h, hashOrPath),
		EncodeString(h, callbackExportName),
		userData,
		flagsArr,
	)
}

// EncodeArrayOfStrings is a small convenience composite used by IPFSMap and
// available to any caller that needs a plain Array of managed strings.
func EncodeArrayOfStrings(h Heap, items []string) Ptr {
	c := NewEncoder(h)
	defer c.Release()
	var wire Ptr
	DefineArray(c, &wire, &items, func(c *Codec, wire *Ptr, native *string) {
		DefineString(c, wire, native)
	})
	return wire
}
