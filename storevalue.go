// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package yogurt

// StoreValueKind discriminates the ten StoreValue variants (§6).
type StoreValueKind int32

const (
	StoreValueKindString     StoreValueKind = 0
	StoreValueKindInt        StoreValueKind = 1
	StoreValueKindBigDecimal StoreValueKind = 2
	StoreValueKindBool       StoreValueKind = 3
	StoreValueKindArray      StoreValueKind = 4
	StoreValueKindNull       StoreValueKind = 5
	StoreValueKindBytes      StoreValueKind = 6
	StoreValueKindBigInt     StoreValueKind = 7
	StoreValueKindInt8       StoreValueKind = 8
	StoreValueKindTimestamp  StoreValueKind = 9
)

// StoreValue is the native mirror of the tagged-variant wire shape
// `{kind:i32, _pad:u32, payload:u64}` used for entity field values. Only
// the field matching Kind is meaningful; the zero value is
// StoreValueKindString with an empty string, so a caller must set Kind
// explicitly rather than rely on a default.
type StoreValue struct {
	Kind StoreValueKind

	Str        string
	Int        int32
	Int8       int8
	Bool       bool
	Bytes      []byte
	Array      []StoreValue
	Timestamp  int64
	BigDecimal Ptr // opaque host-owned handle (§3 arbitrary-precision numbers)
	BigInt     Ptr // opaque host-owned handle
}

// NewStringValue, NewIntValue, ... are convenience constructors mirroring
// the shape of the kind table, so call sites building entities read like
// the table in §6 rather than hand-filling a struct literal.
func NewStringValue(s string) StoreValue    { return StoreValue{Kind: StoreValueKindString, Str: s} }
func NewIntValue(i int32) StoreValue        { return StoreValue{Kind: StoreValueKindInt, Int: i} }
func NewBoolValue(b bool) StoreValue        { return StoreValue{Kind: StoreValueKindBool, Bool: b} }
func NewBytesValue(b []byte) StoreValue     { return StoreValue{Kind: StoreValueKindBytes, Bytes: b} }
func NewNullValue() StoreValue              { return StoreValue{Kind: StoreValueKindNull} }
func NewInt8Value(i int8) StoreValue        { return StoreValue{Kind: StoreValueKindInt8, Int8: i} }
func NewTimestampValue(t int64) StoreValue  { return StoreValue{Kind: StoreValueKindTimestamp, Timestamp: t} }
func NewBigIntValue(handle Ptr) StoreValue  { return StoreValue{Kind: StoreValueKindBigInt, BigInt: handle} }
func NewBigDecimalValue(handle Ptr) StoreValue {
	return StoreValue{Kind: StoreValueKindBigDecimal, BigDecimal: handle}
}
func NewArrayValue(items []StoreValue) StoreValue {
	return StoreValue{Kind: StoreValueKindArray, Array: items}
}

// DefineStoreValue encodes or decodes a StoreValue tagged variant (§4.4 law
// 3). An unknown kind decodes to StoreValueKindNull rather than trapping
// (§4.4 edge case).
func DefineStoreValue(c *Codec, wire *Ptr, native *StoreValue) {
	if c.enc {
		*wire = EncodeStoreValue(c, *native)
		return
	}
	*native = DecodeStoreValue(c, *wire)
}

// EncodeStoreValue allocates a class-1003 variant object for v.
func EncodeStoreValue(c *Codec, v StoreValue) Ptr {
	var payload uint64
	switch v.Kind {
	case StoreValueKindString:
		payload = uint64(EncodeString(c.h, v.Str).Raw())
	case StoreValueKindInt:
		payload = uint64(uint32(v.Int)) // sign-extended into the u64 slot
		if v.Int < 0 {
			payload |= 0xFFFFFFFF00000000
		}
	case StoreValueKindBigDecimal:
		payload = uint64(v.BigDecimal.Raw())
	case StoreValueKindBool:
		if v.Bool {
			payload = 1
		}
	case StoreValueKindArray:
		arr := encodeArrayClassed(c, v.Array, func(c *Codec, wire *Ptr, native *StoreValue) {
			*wire = EncodeStoreValue(c, *native)
		}, ClassArrayOfStore)
		payload = uint64(arr.Raw())
	case StoreValueKindNull:
		payload = 0
	case StoreValueKindBytes:
		payload = uint64(EncodeBytes(c.h, v.Bytes).Raw())
	case StoreValueKindBigInt:
		payload = uint64(v.BigInt.Raw())
	case StoreValueKindInt8:
		payload = uint64(uint8(v.Int8))
		if v.Int8 < 0 {
			payload |= 0xFFFFFFFFFFFFFF00
		}
	case StoreValueKindTimestamp:
		payload = uint64(v.Timestamp)
	}

	p := c.h.Alloc(16, ClassStoreValue)
	c.h.WriteU32(p, 0, uint32(v.Kind))
	c.h.WriteU32(p, 4, 0)
	c.h.WriteU64(p, 8, payload)
	return p
}

// DecodeStoreValue reads a class-1003 variant object back into native form.
func DecodeStoreValue(c *Codec, p Ptr) StoreValue {
	if p.IsNull() {
		return NewNullValue()
	}
	kind := StoreValueKind(c.h.ReadI32(p, 0))
	payload := c.h.ReadU64(p, 8)

	switch kind {
	case StoreValueKindString:
		return NewStringValue(DecodeString(c.h, Ptr(uint32(payload))))
	case StoreValueKindInt:
		return NewIntValue(int32(uint32(payload)))
	case StoreValueKindBigDecimal:
		return NewBigDecimalValue(Ptr(uint32(payload)))
	case StoreValueKindBool:
		return NewBoolValue(payload != 0)
	case StoreValueKindArray:
		items := decodeArray(c, Ptr(uint32(payload)), func(c *Codec, wire *Ptr, native *StoreValue) {
			*native = DecodeStoreValue(c, *wire)
		})
		return NewArrayValue(items)
	case StoreValueKindBytes:
		return NewBytesValue(DecodeBytes(c.h, Ptr(uint32(payload))))
	case StoreValueKindBigInt:
		return NewBigIntValue(Ptr(uint32(payload)))
	case StoreValueKindInt8:
		return NewInt8Value(int8(uint8(payload)))
	case StoreValueKindTimestamp:
		return NewTimestampValue(int64(payload))
	default:
		return NewNullValue()
	}
}
