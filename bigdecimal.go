// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package yogurt

// BigDecimal is an opaque host-owned arbitrary-precision decimal handle,
// the BigDecimal counterpart of BigInt.
type BigDecimal struct {
	h   Heap
	ptr Ptr
}

// WrapBigDecimal adapts an existing wire pointer into a BigDecimal bound to h.
func WrapBigDecimal(h Heap, ptr Ptr) BigDecimal { return BigDecimal{h: h, ptr: ptr} }

// Ptr returns the underlying wire handle.
func (b BigDecimal) Ptr() Ptr { return b.ptr }

func (b BigDecimal) Plus(o BigDecimal) BigDecimal {
	return BigDecimal{b.h, Imports.BigDecimalPlus(b.ptr, o.ptr)}
}
func (b BigDecimal) Minus(o BigDecimal) BigDecimal {
	return BigDecimal{b.h, Imports.BigDecimalMinus(b.ptr, o.ptr)}
}
func (b BigDecimal) Times(o BigDecimal) BigDecimal {
	return BigDecimal{b.h, Imports.BigDecimalTimes(b.ptr, o.ptr)}
}
func (b BigDecimal) DividedBy(o BigDecimal) BigDecimal {
	return BigDecimal{b.h, Imports.BigDecimalDividedBy(b.ptr, o.ptr)}
}

// Equals asks the host to compare two decimals directly, since decimal
// equality (unlike integer equality) is not safe to approximate from the
// decimal string form alone (trailing zero normalisation differs by host).
func (b BigDecimal) Equals(o BigDecimal) bool {
	return Imports.BigDecimalEquals(b.ptr, o.ptr)
}

// String renders b through bigDecimal.toString.
func (b BigDecimal) String() string {
	return DecodeString(b.h, Imports.BigDecimalToString(b.ptr))
}

// BigDecimalFromString is the one arbitrary-precision type that does expose
// a fromString host constructor (§6), unlike BigInt.
func BigDecimalFromString(h Heap, s string) BigDecimal {
	wire := EncodeString(h, s)
	return BigDecimal{h: h, ptr: Imports.BigDecimalFromString(wire)}
}
