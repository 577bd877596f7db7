// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package yogurt

import "testing"

func storeValueRoundTrip(t *testing.T, h *SimHeap, v StoreValue) StoreValue {
	t.Helper()
	enc := NewEncoder(h)
	wire := EncodeStoreValue(enc, v)
	enc.Release()

	dec := NewDecoder(h)
	got := DecodeStoreValue(dec, wire)
	dec.Release()
	return got
}

// TestStoreValueRoundTrip exercises every StoreValueKind except the nested
// Array/BigDecimal/BigInt handle variants, which have their own tests below.
func TestStoreValueRoundTrip(t *testing.T) {
	h := NewSimHeap(DefaultHeapBase)
	cases := []StoreValue{
		NewStringValue("hello"),
		NewStringValue(""),
		NewIntValue(42),
		NewIntValue(-42),
		NewBoolValue(true),
		NewBoolValue(false),
		NewBytesValue([]byte{0x01, 0x02, 0xFF}),
		NewNullValue(),
		NewInt8Value(-1),
		NewInt8Value(127),
		NewTimestampValue(1_700_000_000),
	}
	for _, want := range cases {
		got := storeValueRoundTrip(t, h, want)
		if got.Kind != want.Kind {
			t.Fatalf("round trip kind = %v, want %v", got.Kind, want.Kind)
		}
		switch want.Kind {
		case StoreValueKindString:
			if got.Str != want.Str {
				t.Errorf("Str round trip = %q, want %q", got.Str, want.Str)
			}
		case StoreValueKindInt:
			if got.Int != want.Int {
				t.Errorf("Int round trip = %d, want %d", got.Int, want.Int)
			}
		case StoreValueKindBool:
			if got.Bool != want.Bool {
				t.Errorf("Bool round trip = %v, want %v", got.Bool, want.Bool)
			}
		case StoreValueKindBytes:
			if string(got.Bytes) != string(want.Bytes) {
				t.Errorf("Bytes round trip = %x, want %x", got.Bytes, want.Bytes)
			}
		case StoreValueKindInt8:
			if got.Int8 != want.Int8 {
				t.Errorf("Int8 round trip = %d, want %d", got.Int8, want.Int8)
			}
		case StoreValueKindTimestamp:
			if got.Timestamp != want.Timestamp {
				t.Errorf("Timestamp round trip = %d, want %d", got.Timestamp, want.Timestamp)
			}
		}
	}
}

func TestStoreValueBigIntAndBigDecimalHandlesRoundTrip(t *testing.T) {
	h := NewSimHeap(DefaultHeapBase)
	handle := h.Alloc(8, ClassObject)

	got := storeValueRoundTrip(t, h, NewBigIntValue(handle))
	if got.Kind != StoreValueKindBigInt || got.BigInt != handle {
		t.Errorf("BigInt round trip = %+v, want handle %v preserved", got, handle)
	}

	got = storeValueRoundTrip(t, h, NewBigDecimalValue(handle))
	if got.Kind != StoreValueKindBigDecimal || got.BigDecimal != handle {
		t.Errorf("BigDecimal round trip = %+v, want handle %v preserved", got, handle)
	}
}

func TestStoreValueArrayRoundTrip(t *testing.T) {
	h := NewSimHeap(DefaultHeapBase)
	want := NewArrayValue([]StoreValue{NewIntValue(1), NewStringValue("two"), NewBoolValue(true)})
	got := storeValueRoundTrip(t, h, want)
	if got.Kind != StoreValueKindArray {
		t.Fatalf("round trip kind = %v, want Array", got.Kind)
	}
	if len(got.Array) != len(want.Array) {
		t.Fatalf("Array round trip length = %d, want %d", len(got.Array), len(want.Array))
	}
	if got.Array[0].Int != 1 || got.Array[1].Str != "two" || got.Array[2].Bool != true {
		t.Errorf("Array round trip = %+v, want %+v", got.Array, want.Array)
	}
}

func TestDecodeStoreValueNull(t *testing.T) {
	h := NewSimHeap(DefaultHeapBase)
	dec := NewDecoder(h)
	defer dec.Release()
	got := DecodeStoreValue(dec, Null)
	if got.Kind != StoreValueKindNull {
		t.Errorf("DecodeStoreValue(Null).Kind = %v, want StoreValueKindNull", got.Kind)
	}
}

func TestDecodeStoreValueUnknownKindDecodesToNull(t *testing.T) {
	// §4.4 edge case: an unrecognised kind tag decodes to null rather than
	// trapping, distinct from a corrupted class id (array.go, typedmap.go).
	h := NewSimHeap(DefaultHeapBase)
	p := h.Alloc(16, ClassStoreValue)
	h.WriteU32(p, 0, 255)
	h.WriteU32(p, 4, 0)
	h.WriteU64(p, 8, 0)

	dec := NewDecoder(h)
	defer dec.Release()
	got := DecodeStoreValue(dec, p)
	if got.Kind != StoreValueKindNull {
		t.Errorf("DecodeStoreValue(unknown kind).Kind = %v, want StoreValueKindNull", got.Kind)
	}
}

// TestTypedMapThreeKindEntitySet is S3: a TypedMap with three StoreValue
// kinds, including a BigInt handle and a bool, round-tripped as an entity's
// field set would be.
func TestTypedMapThreeKindEntitySet(t *testing.T) {
	h := NewSimHeap(DefaultHeapBase)
	handle := h.Alloc(8, ClassObject)
	want := TypedMap{
		{Key: "name", Value: NewStringValue("acme")},
		{Key: "balance", Value: NewBigIntValue(handle)},
		{Key: "active", Value: NewBoolValue(true)},
	}

	enc := NewEncoder(h)
	var wire Ptr
	DefineTypedMap(enc, &wire, &want)
	enc.Release()

	dec := NewDecoder(h)
	var got TypedMap
	DefineTypedMap(dec, &wire, &got)
	dec.Release()

	if len(got) != len(want) {
		t.Fatalf("TypedMap round trip length = %d, want %d", len(got), len(want))
	}
	name, ok := got.Get("name")
	if !ok || name.Str != "acme" {
		t.Errorf("Get(name) = %+v, %v, want acme, true", name, ok)
	}
	balance, ok := got.Get("balance")
	if !ok || balance.Kind != StoreValueKindBigInt || balance.BigInt != handle {
		t.Errorf("Get(balance) = %+v, %v, want BigInt handle %v", balance, ok, handle)
	}
	active, ok := got.Get("active")
	if !ok || active.Kind != StoreValueKindBool || !active.Bool {
		t.Errorf("Get(active) = %+v, %v, want bool true", active, ok)
	}
}
