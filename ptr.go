// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package yogurt

// Ptr is a 32-bit offset into the module's linear memory, referring to the
// payload (not the header) of a managed object. The zero value is the null
// pointer; it is the only pointer value that may legitimately point at
// nothing.
//
// Ptr carries no type information at runtime - the phantom typing the ABI
// bridge relies on is enforced entirely at the call site, by which Define*
// function a caller chooses to pair with it.
type Ptr uint32

// Null is the wire representation of an absent reference.
const Null Ptr = 0

// IsNull reports whether p refers to nothing.
func (p Ptr) IsNull() bool { return p == Null }

// Raw returns the pointer's unsigned 32-bit wire form.
func (p Ptr) Raw() uint32 { return uint32(p) }

// Signed returns the pointer's form as the host imports expect it: a plain
// i32, reinterpreting the bit pattern as signed.
func (p Ptr) Signed() int32 { return int32(p) }

// PtrFromSigned reinterprets a signed i32 returned by a host import (which
// may legitimately use the sign bit, e.g. -1 sentinels are never used by
// this ABI but the conversion must still be exact) as a wire pointer.
func PtrFromSigned(v int32) Ptr { return Ptr(uint32(v)) }

const headerSize = 20

// class IDs stable across the whole bridge; see the class-ID table.
const (
	ClassObject     = 0
	ClassByteBuffer = 1
	ClassString     = 2

	ClassArray         = 1000
	ClassTypedMap      = 1001
	ClassTypedMapEntry = 1002
	ClassStoreValue    = 1003
	ClassArrayOfStore  = 1004
)

// Header mirrors the five 4-byte fields that precede every managed object's
// payload, in the order they appear in memory (mm_info, gc_info, gc_info2,
// rt_id, rt_size).
type Header struct {
	MMInfo  uint32
	GCInfo  uint32
	GCInfo2 uint32
	RTID    uint32
	RTSize  uint32
}
