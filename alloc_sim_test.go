// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package yogurt

import "testing"

func TestSimHeapAllocHeaderAndMonotonicity(t *testing.T) {
	h := NewSimHeap(DefaultHeapBase)

	p1 := h.Alloc(10, ClassByteBuffer)
	if p1.IsNull() {
		t.Fatal("Alloc returned null pointer")
	}
	hdr := h.Header(p1)
	if hdr.RTID != ClassByteBuffer {
		t.Errorf("RTID = %d, want %d", hdr.RTID, ClassByteBuffer)
	}
	if hdr.RTSize != 10 {
		t.Errorf("RTSize = %d, want 10", hdr.RTSize)
	}

	cursorAfterFirst := h.Cursor()
	if cursorAfterFirst <= DefaultHeapBase {
		t.Fatalf("cursor did not advance past heap base: %d", cursorAfterFirst)
	}

	p2 := h.Alloc(4, ClassObject)
	if uint32(p2) < uint32(p1) {
		t.Errorf("second allocation address %d precedes first %d", p2, p1)
	}
	if h.Cursor() <= cursorAfterFirst {
		t.Fatal("cursor did not advance monotonically across allocations")
	}
}

func TestSimHeapAllocAlignment(t *testing.T) {
	h := NewSimHeap(0)
	h.Alloc(1, ClassObject)
	// Every allocation's total footprint (header + payload) is rounded to 8
	// bytes, so the next object's header always starts on an 8-byte boundary.
	if h.Cursor()%8 != 0 {
		t.Errorf("cursor %d is not 8-byte aligned", h.Cursor())
	}
}

func TestSimHeapReadWriteRoundTrip(t *testing.T) {
	h := NewSimHeap(DefaultHeapBase)
	p := h.Alloc(16, ClassObject)

	h.WriteU32(p, 0, 0xDEADBEEF)
	if got := h.ReadU32(p, 0); got != 0xDEADBEEF {
		t.Errorf("ReadU32 = %#x, want %#x", got, 0xDEADBEEF)
	}

	h.WriteU64(p, 8, 0x0102030405060708)
	if got := h.ReadU64(p, 8); got != 0x0102030405060708 {
		t.Errorf("ReadU64 = %#x, want %#x", got, 0x0102030405060708)
	}

	h.WriteI32(p, 4, -7)
	if got := h.ReadI32(p, 4); got != -7 {
		t.Errorf("ReadI32 = %d, want -7", got)
	}

	data := []byte{1, 2, 3, 4, 5}
	h.WriteBytes(p, 0, data)
	if got := h.ReadBytes(p, 0, uint32(len(data))); string(got) != string(data) {
		t.Errorf("ReadBytes = %v, want %v", got, data)
	}
}

func TestSimHeapNullReadsAreZero(t *testing.T) {
	h := NewSimHeap(DefaultHeapBase)
	if got := h.ReadU32(Null, 0); got != 0 {
		t.Errorf("ReadU32(Null, ...) = %d, want 0", got)
	}
	if got := h.ReadU64(Null, 0); got != 0 {
		t.Errorf("ReadU64(Null, ...) = %d, want 0", got)
	}
	if got := h.ReadBytes(Null, 0, 4); got != nil {
		t.Errorf("ReadBytes(Null, ...) = %v, want nil", got)
	}
}

func TestSimHeapGrowsPastInitialPage(t *testing.T) {
	h := NewSimHeap(0)
	before := h.Pages()
	// Force growth well past the first page.
	h.Alloc(pageSize*2, ClassByteBuffer)
	if h.Pages() <= before {
		t.Errorf("Pages() did not grow: before=%d after=%d", before, h.Pages())
	}
}

func TestSimHeapCeilingPanics(t *testing.T) {
	h := NewSimHeap(0).WithCeiling(64)

	defer func() {
		r := recover()
		if r != ErrOutOfMemory {
			t.Fatalf("recovered %v, want ErrOutOfMemory", r)
		}
	}()
	h.Alloc(1<<20, ClassByteBuffer)
	t.Fatal("Alloc did not panic past the ceiling")
}
