// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !tinygo

package yogurt

// pageSize is the WebAssembly linear-memory page granularity.
const pageSize = 65536

// DefaultHeapBase is the simulated heap's default linker heap-base address,
// used whenever a test does not care about the exact value. Real modules
// get theirs from the tinygo linker; this one is just a plausible, readable
// stand-in 1 KiB in, inside the first page.
const DefaultHeapBase = 1024

// SimHeap is a Heap backed by an ordinary growable Go byte slice. It is the
// non-wasm compilation path referenced by the testing-stubs component: every
// codec in this package is written against the Heap interface, so the exact
// same Define* code that runs inside a real module also runs, unit-tested,
// against a SimHeap.
type SimHeap struct {
	mem      []byte
	heapBase uint32
	cursor   uint32
	ceiling  uint32 // 0 means unbounded
}

// NewSimHeap creates a simulated heap with one page pre-allocated and the
// given heap-base address, matching S5's starting condition.
func NewSimHeap(heapBase uint32) *SimHeap {
	return &SimHeap{
		mem:      make([]byte, pageSize),
		heapBase: heapBase,
		cursor:   heapBase,
	}
}

// WithCeiling caps how far the simulated heap may grow, in bytes, so tests
// can observe ErrOutOfMemory instead of growing forever. Zero means no cap.
func (h *SimHeap) WithCeiling(bytes uint32) *SimHeap {
	h.ceiling = bytes
	return h
}

func (h *SimHeap) growTo(end uint32) {
	if end > h.ceiling && h.ceiling != 0 {
		panic(ErrOutOfMemory)
	}
	if int(end) <= len(h.mem) {
		return
	}
	pages := (end + pageSize - 1) / pageSize
	grown := make([]byte, pages*pageSize)
	copy(grown, h.mem)
	h.mem = grown
}

// Alloc implements Heap.
func (h *SimHeap) Alloc(size uint32, classID uint32) Ptr {
	total := align8(headerSize + size)
	start := h.cursor
	end := start + total
	h.growTo(end)

	hdr := h.mem[start : start+headerSize]
	putU32At(hdr[0:4], 0)
	putU32At(hdr[4:8], 0)
	putU32At(hdr[8:12], 0)
	putU32At(hdr[12:16], classID)
	putU32At(hdr[16:20], size)

	h.cursor = end
	return Ptr(start + headerSize)
}

func (h *SimHeap) slice(p Ptr, offset, length uint32) []byte {
	base := uint32(p) + offset
	return h.mem[base : base+length]
}

func (h *SimHeap) ReadU32(p Ptr, offset uint32) uint32 {
	if p.IsNull() {
		return 0
	}
	return readU32At(h.slice(p, offset, 4))
}

func (h *SimHeap) ReadU64(p Ptr, offset uint32) uint64 {
	if p.IsNull() {
		return 0
	}
	return readU64At(h.slice(p, offset, 8))
}

func (h *SimHeap) ReadI32(p Ptr, offset uint32) int32 {
	return int32(h.ReadU32(p, offset))
}

func (h *SimHeap) ReadBytes(p Ptr, offset, length uint32) []byte {
	if p.IsNull() || length == 0 {
		return nil
	}
	out := make([]byte, length)
	copy(out, h.slice(p, offset, length))
	return out
}

func (h *SimHeap) WriteU32(p Ptr, offset uint32, v uint32) {
	putU32At(h.slice(p, offset, 4), v)
}

func (h *SimHeap) WriteU64(p Ptr, offset uint32, v uint64) {
	putU64At(h.slice(p, offset, 8), v)
}

func (h *SimHeap) WriteI32(p Ptr, offset uint32, v int32) {
	h.WriteU32(p, offset, uint32(v))
}

func (h *SimHeap) WriteBytes(p Ptr, offset uint32, data []byte) {
	copy(h.slice(p, offset, uint32(len(data))), data)
}

func (h *SimHeap) Header(p Ptr) Header {
	base := uint32(p) - headerSize
	raw := h.mem[base : base+headerSize]
	return Header{
		MMInfo:  readU32At(raw[0:4]),
		GCInfo:  readU32At(raw[4:8]),
		GCInfo2: readU32At(raw[8:12]),
		RTID:    readU32At(raw[12:16]),
		RTSize:  readU32At(raw[16:20]),
	}
}

func (h *SimHeap) Cursor() uint32 { return h.cursor }

// Pages reports the simulated memory's current size in 64 KiB pages, the
// quantity S5 asserts a lower bound on.
func (h *SimHeap) Pages() uint32 { return uint32(len(h.mem)) / pageSize }
