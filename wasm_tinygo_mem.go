// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build tinygo

package yogurt

import "unsafe"

// On TinyGo's wasm targets there is exactly one linear memory and it is the
// process address space, so a raw uint32 offset and an unsafe.Pointer are
// the same bit pattern. These helpers are the only place that fact is
// relied upon; everything above this file talks only in terms of Ptr and
// byte offsets.

func unsafePointerOf(p *[0]byte) unsafe.Pointer { return unsafe.Pointer(p) }

func readByteRaw(addr uint32) byte {
	return *(*byte)(unsafe.Pointer(uintptr(addr)))
}

func writeByteRaw(addr uint32, v byte) {
	*(*byte)(unsafe.Pointer(uintptr(addr))) = v
}

func readU32Raw(addr uint32) uint32 {
	var b [4]byte
	for i := range b {
		b[i] = readByteRaw(addr + uint32(i))
	}
	return readU32At(b[:])
}

func writeU32Raw(addr uint32, v uint32) {
	var b [4]byte
	putU32At(b[:], v)
	for i, c := range b {
		writeByteRaw(addr+uint32(i), c)
	}
}
