// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package yogurt

// arrayFieldCount is the number of 4-byte fields in an Array header:
// buffer, buffer_data_start, buffer_data_length, length.
const arrayFieldCount = 4

// ElemCodec encodes or decodes a single array element, in whichever
// direction c is currently running. Every DefineArray call site supplies
// one of these, the same role a per-field Define* call plays in a struct's
// DefineSSZ method in the teacher library.
type ElemCodec[T any] func(c *Codec, wire *Ptr, native *T)

// DefineArray encodes or decodes an Array of reference-typed elements
// (§4.4 law 2). Encoding allocates the element buffer and the four-field
// Array header, in that order, so the header-before-payload law (§4.4 law
// 1) holds for the Array object itself. A zero-length slice still produces
// a zero-length buffer and a length-0 header (S2).
func DefineArray[T any](c *Codec, wire *Ptr, native *[]T, elem ElemCodec[T]) {
	if c.enc {
		*wire = encodeArray(c, *native, elem)
		return
	}
	*native = decodeArray(c, *wire, elem)
}

func encodeArray[T any](c *Codec, items []T, elem ElemCodec[T]) Ptr {
	return encodeArrayClassed(c, items, elem, ClassArray)
}

// encodeArrayClassed is encodeArray parameterized over the header's class
// id, used by StoreValue's nested Array variant (class 1004) to tag itself
// distinctly from a plain pointer Array (class 1000) while sharing every
// byte of layout logic.
func encodeArrayClassed[T any](c *Codec, items []T, elem ElemCodec[T], classID uint32) Ptr {
	n := uint32(len(items))
	buf := c.h.Alloc(n*4, ClassByteBuffer)
	for i := range items {
		var childWire Ptr
		elem(c, &childWire, &items[i])
		buf.writeElem(c.h, uint32(i), childWire)
	}
	hdr := c.h.Alloc(arrayFieldCount*4, classID)
	c.h.WriteU32(hdr, 0, buf.Raw())
	c.h.WriteU32(hdr, 4, 0)
	c.h.WriteU32(hdr, 8, n*4)
	c.h.WriteU32(hdr, 12, n)
	return hdr
}

func decodeArray[T any](c *Codec, p Ptr, elem ElemCodec[T]) []T {
	if p.IsNull() {
		return nil
	}
	if hdr := c.h.Header(p); hdr.RTID != ClassArray && hdr.RTID != ClassArrayOfStore {
		Trap(ErrUnknownClassID.Error())
	}
	buf := Ptr(c.h.ReadU32(p, 0))
	start := c.h.ReadU32(p, 4)
	length := c.h.ReadU32(p, 12)

	out := make([]T, length)
	for i := uint32(0); i < length; i++ {
		childWire := Ptr(c.h.ReadU32(buf, start+i*4))
		elem(c, &childWire, &out[i])
	}
	return out
}

// writeElem stores a 32-bit element pointer at index i of an element
// buffer - a tiny helper so encodeArray reads the same either way whether
// the buffer already exists (written here) or not.
func (buf Ptr) writeElem(h Heap, i uint32, v Ptr) {
	h.WriteU32(buf, i*4, v.Raw())
}

// DefinePrimitiveArray encodes or decodes an Array whose buffer holds packed
// 32-bit primitives directly (the "packed primitives" branch of §4.4 law 2),
// used for parameter arrays of small integers rather than pointers.
func DefinePrimitiveArray(c *Codec, wire *Ptr, native *[]uint32) {
	if c.enc {
		n := uint32(len(*native))
		buf := c.h.Alloc(n*4, ClassByteBuffer)
		for i, v := range *native {
			c.h.WriteU32(buf, uint32(i)*4, v)
		}
		hdr := c.h.Alloc(arrayFieldCount*4, ClassArray)
		c.h.WriteU32(hdr, 0, buf.Raw())
		c.h.WriteU32(hdr, 4, 0)
		c.h.WriteU32(hdr, 8, n*4)
		c.h.WriteU32(hdr, 12, n)
		*wire = hdr
		return
	}
	if wire.IsNull() {
		*native = nil
		return
	}
	buf := Ptr(c.h.ReadU32(*wire, 0))
	start := c.h.ReadU32(*wire, 4)
	length := c.h.ReadU32(*wire, 12)
	out := make([]uint32, length)
	for i := uint32(0); i < length; i++ {
		out[i] = c.h.ReadU32(buf, start+i*4)
	}
	*native = out
}
