// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build tinygo

package yogurt

import (
	"sync/atomic"
)

// __heap_base is placed by the linker immediately past the module's static
// data section; its address, not its value, is what we want. TinyGo's
// wasm-unknown target (the -target cmd/yogurt's build command passes)
// reserves the symbol the same way clang's wasm-ld does.
//
//go:extern __heap_base
var heapBaseSymbol [0]byte

// wasmMemoryGrow grows the module's single linear memory by delta pages and
// returns the previous size in pages, or -1 on failure. It lowers directly
// to the memory.grow instruction; TinyGo exposes this intrinsic on its
// wasm targets without a host import, since growing memory the module
// itself owns is not a host call.
func wasmMemoryGrow(deltaPages int32) int32

// wasmMemorySize returns the current size of linear memory in pages.
func wasmMemorySize() int32

var (
	heapCursor    atomic.Uint32
	heapCursorSet atomic.Bool
)

func heapBaseAddr() uint32 {
	return uint32(uintptr(unsafePointerOf(&heapBaseSymbol)))
}

// realHeap implements Heap directly against linear memory via unaligned
// unsafe loads and stores. It is the production counterpart to SimHeap,
// exercising the identical Define* codec logic from codec.go against real
// memory instead of a Go slice.
type realHeap struct{}

// Heap_ is the process-wide linear-memory handle the runtime exports in this
// file allocate through.
var Heap_ realHeap

func (realHeap) Alloc(size uint32, classID uint32) Ptr {
	total := align8(headerSize + size)

	if !heapCursorSet.Load() {
		heapCursor.Store(heapBaseAddr())
		heapCursorSet.Store(true)
	}
	start := heapCursor.Add(total) - total
	end := start + total

	pages := wasmMemorySize()
	need := (int64(end) + pageSize - 1) / pageSize
	if need > int64(pages) {
		if wasmMemoryGrow(int32(need)-pages) < 0 {
			Trap("out of memory")
		}
	}

	writeU32Raw(start+0, 0)
	writeU32Raw(start+4, 0)
	writeU32Raw(start+8, 0)
	writeU32Raw(start+12, classID)
	writeU32Raw(start+16, size)

	return Ptr(start + headerSize)
}

func (realHeap) ReadU32(p Ptr, offset uint32) uint32 {
	if p.IsNull() {
		return 0
	}
	return readU32Raw(uint32(p) + offset)
}

func (realHeap) ReadU64(p Ptr, offset uint32) uint64 {
	if p.IsNull() {
		return 0
	}
	lo := readU32Raw(uint32(p) + offset)
	hi := readU32Raw(uint32(p) + offset + 4)
	return uint64(lo) | uint64(hi)<<32
}

func (realHeap) ReadI32(p Ptr, offset uint32) int32 {
	return int32(realHeap{}.ReadU32(p, offset))
}

func (realHeap) ReadBytes(p Ptr, offset, length uint32) []byte {
	if p.IsNull() || length == 0 {
		return nil
	}
	out := make([]byte, length)
	for i := uint32(0); i < length; i++ {
		out[i] = readByteRaw(uint32(p) + offset + i)
	}
	return out
}

func (realHeap) WriteU32(p Ptr, offset uint32, v uint32) { writeU32Raw(uint32(p)+offset, v) }
func (realHeap) WriteU64(p Ptr, offset uint32, v uint64) {
	writeU32Raw(uint32(p)+offset, uint32(v))
	writeU32Raw(uint32(p)+offset+4, uint32(v>>32))
}
func (realHeap) WriteI32(p Ptr, offset uint32, v int32) { writeU32Raw(uint32(p)+offset, uint32(v)) }
func (realHeap) WriteBytes(p Ptr, offset uint32, data []byte) {
	for i, b := range data {
		writeByteRaw(uint32(p)+offset+uint32(i), b)
	}
}

func (realHeap) Header(p Ptr) Header {
	base := uint32(p) - headerSize
	return Header{
		MMInfo:  readU32Raw(base + 0),
		GCInfo:  readU32Raw(base + 4),
		GCInfo2: readU32Raw(base + 8),
		RTID:    readU32Raw(base + 12),
		RTSize:  readU32Raw(base + 16),
	}
}

func (realHeap) Cursor() uint32 { return heapCursor.Load() }

// --- required exports (§4.5) ---

//export __new
func wasmNew(size int32, classID int32) int32 {
	return int32(Heap_.Alloc(uint32(size), uint32(classID)))
}

//export __pin
func wasmPin(ptr int32) int32 { return ptr }

//export __unpin
func wasmUnpin(ptr int32) {}

//export __collect
func wasmCollect() {}

//export abort
func wasmAbort(msgPtr, filePtr, line, col int32) {
	Trap("abort")
}
