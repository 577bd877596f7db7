// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package yogurt

import "unicode/utf16"

// DefineString encodes or decodes a UTF-16LE managed string (§4.3). A null
// wire pointer decodes to the empty string; encoding the empty string
// still allocates a zero-length string object, per S1/S2's sibling case.
func DefineString(c *Codec, wire *Ptr, native *string) {
	if c.enc {
		*wire = EncodeString(c.h, *native)
		return
	}
	*native = DecodeString(c.h, *wire)
}

// EncodeString allocates a class-2 managed string holding s's UTF-16LE
// code units and returns its payload pointer. Fresh allocations are always
// zero-filled (the heap never reuses bytes), so each code unit can be
// merged into its half-word independently without a separate clearing pass.
func EncodeString(h Heap, s string) Ptr {
	units := utf16.Encode([]rune(s))
	p := h.Alloc(uint32(len(units))*2, ClassString)
	for i, u := range units {
		writeU16(h, p, uint32(i)*2, u)
	}
	return p
}

// DecodeString reads a class-2 managed string's payload and re-assembles a
// Go string, replacing unpaired surrogates with U+FFFD (P3).
func DecodeString(h Heap, p Ptr) string {
	if p.IsNull() {
		return ""
	}
	hdr := h.Header(p)
	count := hdr.RTSize / 2
	units := make([]uint16, count)
	for i := uint32(0); i < count; i++ {
		units[i] = readU16(h, p, i*2)
	}
	return string(utf16.Decode(units))
}

func writeU16(h Heap, p Ptr, offset uint32, v uint16) {
	h.WriteU32(p, offset&^3, mergeU16(h.ReadU32(p, offset&^3), offset, v))
}

// mergeU16 overlays a little-endian 16-bit value into whichever half of a
// 32-bit word offset falls in, since Heap only exposes 32/64-bit unaligned
// stores plus raw byte slices; this keeps string writes to the same small
// primitive surface as everything else in the package.
func mergeU16(word uint32, offset uint32, v uint16) uint32 {
	if offset%4 == 0 {
		return (word &^ 0xFFFF) | uint32(v)
	}
	return (word &^ 0xFFFF0000) | uint32(v)<<16
}

func readU16(h Heap, p Ptr, offset uint32) uint16 {
	word := h.ReadU32(p, offset&^3)
	if offset%4 == 0 {
		return uint16(word)
	}
	return uint16(word >> 16)
}

// DefineBytes encodes or decodes a class-1 managed byte buffer (§4.3). A
// null wire pointer decodes to a nil slice.
func DefineBytes(c *Codec, wire *Ptr, native *[]byte) {
	if c.enc {
		*wire = EncodeBytes(c.h, *native)
		return
	}
	*native = DecodeBytes(c.h, *wire)
}

// EncodeBytes allocates a class-1 managed byte buffer holding a copy of b.
func EncodeBytes(h Heap, b []byte) Ptr {
	p := h.Alloc(uint32(len(b)), ClassByteBuffer)
	if len(b) > 0 {
		h.WriteBytes(p, 0, b)
	}
	return p
}

// DecodeBytes reads rt_size from p's header and copies that many bytes out.
func DecodeBytes(h Heap, p Ptr) []byte {
	if p.IsNull() {
		return nil
	}
	hdr := h.Header(p)
	return h.ReadBytes(p, 0, hdr.RTSize)
}

// DecodeBool implements the single-argument handler entry convention for
// primitive bool params (§4.3): ptr != 0.
func DecodeBool(ptr Ptr) bool { return !ptr.IsNull() }

// DecodeI32 implements the single-argument handler entry convention for a
// signed 32-bit primitive param passed inline in the pointer slot.
func DecodeI32(ptr Ptr) int32 { return ptr.Signed() }

// DecodeU32 implements the single-argument handler entry convention for an
// unsigned 32-bit primitive param passed inline in the pointer slot.
func DecodeU32(ptr Ptr) uint32 { return ptr.Raw() }
