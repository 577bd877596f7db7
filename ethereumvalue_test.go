// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package yogurt

import "testing"

func ethereumValueRoundTrip(h *SimHeap, v EthereumValue) EthereumValue {
	enc := NewEncoder(h)
	wire := EncodeEthereumValue(enc, v)
	enc.Release()

	dec := NewDecoder(h)
	got := DecodeEthereumValue(dec, wire)
	dec.Release()
	return got
}

func TestEthereumValueRoundTrip(t *testing.T) {
	h := NewSimHeap(DefaultHeapBase)
	intHandle := h.Alloc(8, ClassObject)
	uintHandle := h.Alloc(8, ClassObject)

	var addr Address
	copy(addr[:], []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20})

	cases := []EthereumValue{
		{Kind: EthereumValueKindAddress, Address: addr},
		{Kind: EthereumValueKindFixedBytes, FixedBytes: []byte{0xAA, 0xBB}},
		{Kind: EthereumValueKindBytes, Bytes: []byte{0x01, 0x02, 0x03}},
		{Kind: EthereumValueKindInt, Int: intHandle},
		{Kind: EthereumValueKindUint, Uint: uintHandle},
		{Kind: EthereumValueKindBool, Bool: true},
		{Kind: EthereumValueKindString, Str: "transfer"},
	}
	for _, want := range cases {
		got := ethereumValueRoundTrip(h, want)
		if got.Kind != want.Kind {
			t.Fatalf("round trip kind = %v, want %v", got.Kind, want.Kind)
		}
		switch want.Kind {
		case EthereumValueKindAddress:
			if got.Address != want.Address {
				t.Errorf("Address round trip = %x, want %x", got.Address, want.Address)
			}
		case EthereumValueKindFixedBytes:
			if string(got.FixedBytes) != string(want.FixedBytes) {
				t.Errorf("FixedBytes round trip = %x, want %x", got.FixedBytes, want.FixedBytes)
			}
		case EthereumValueKindBytes:
			if string(got.Bytes) != string(want.Bytes) {
				t.Errorf("Bytes round trip = %x, want %x", got.Bytes, want.Bytes)
			}
		case EthereumValueKindInt:
			if got.Int != want.Int {
				t.Errorf("Int round trip = %v, want %v", got.Int, want.Int)
			}
		case EthereumValueKindUint:
			if got.Uint != want.Uint {
				t.Errorf("Uint round trip = %v, want %v", got.Uint, want.Uint)
			}
		case EthereumValueKindBool:
			if got.Bool != want.Bool {
				t.Errorf("Bool round trip = %v, want %v", got.Bool, want.Bool)
			}
		case EthereumValueKindString:
			if got.Str != want.Str {
				t.Errorf("Str round trip = %q, want %q", got.Str, want.Str)
			}
		}
	}
}

func TestEthereumValueArrayVariantsRoundTrip(t *testing.T) {
	h := NewSimHeap(DefaultHeapBase)
	elems := []EthereumValue{
		{Kind: EthereumValueKindString, Str: "a"},
		{Kind: EthereumValueKindString, Str: "b"},
	}

	for _, kind := range []EthereumValueKind{
		EthereumValueKindFixedArray, EthereumValueKindArray, EthereumValueKindTuple,
	} {
		want := EthereumValue{Kind: kind}
		switch kind {
		case EthereumValueKindFixedArray:
			want.FixedArray = elems
		case EthereumValueKindArray:
			want.Array = elems
		case EthereumValueKindTuple:
			want.Tuple = elems
		}

		got := ethereumValueRoundTrip(h, want)
		if got.Kind != kind {
			t.Fatalf("round trip kind = %v, want %v", got.Kind, kind)
		}
		var gotElems []EthereumValue
		switch kind {
		case EthereumValueKindFixedArray:
			gotElems = got.FixedArray
		case EthereumValueKindArray:
			gotElems = got.Array
		case EthereumValueKindTuple:
			gotElems = got.Tuple
		}
		if len(gotElems) != len(elems) {
			t.Fatalf("%v round trip length = %d, want %d", kind, len(gotElems), len(elems))
		}
		for i := range elems {
			if gotElems[i].Str != elems[i].Str {
				t.Errorf("%v round trip[%d] = %q, want %q", kind, i, gotElems[i].Str, elems[i].Str)
			}
		}
	}
}

func TestDecodeEthereumValueNull(t *testing.T) {
	h := NewSimHeap(DefaultHeapBase)
	dec := NewDecoder(h)
	defer dec.Release()
	got := DecodeEthereumValue(dec, Null)
	if got.Kind != EthereumValueKindAddress {
		t.Errorf("DecodeEthereumValue(Null).Kind = %v, want zero value (EthereumValueKindAddress)", got.Kind)
	}
}
