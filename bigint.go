// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package yogurt

import "github.com/holiman/uint256"

// BigInt is an opaque host-owned arbitrary-precision integer handle (§3):
// every arithmetic operation below calls the matching bigInt.* import and
// returns a new handle, never decoding the host's internal representation.
type BigInt struct {
	h   Heap
	ptr Ptr
}

// WrapBigInt adapts a raw wire pointer already produced elsewhere (e.g. a
// StoreValue's BigInt field, or a Block's Number) into a BigInt bound to h.
func WrapBigInt(h Heap, ptr Ptr) BigInt { return BigInt{h: h, ptr: ptr} }

// Ptr returns the underlying wire handle, e.g. to store back into a
// StoreValue or chain record field.
func (b BigInt) Ptr() Ptr { return b.ptr }

func (b BigInt) Plus(o BigInt) BigInt        { return BigInt{b.h, Imports.BigIntPlus(b.ptr, o.ptr)} }
func (b BigInt) Minus(o BigInt) BigInt       { return BigInt{b.h, Imports.BigIntMinus(b.ptr, o.ptr)} }
func (b BigInt) Times(o BigInt) BigInt       { return BigInt{b.h, Imports.BigIntTimes(b.ptr, o.ptr)} }
func (b BigInt) DividedBy(o BigInt) BigInt   { return BigInt{b.h, Imports.BigIntDividedBy(b.ptr, o.ptr)} }
func (b BigInt) Mod(o BigInt) BigInt         { return BigInt{b.h, Imports.BigIntMod(b.ptr, o.ptr)} }
func (b BigInt) Pow(exp uint32) BigInt       { return BigInt{b.h, Imports.BigIntPow(b.ptr, exp)} }
func (b BigInt) BitOr(o BigInt) BigInt       { return BigInt{b.h, Imports.BigIntBitOr(b.ptr, o.ptr)} }
func (b BigInt) BitAnd(o BigInt) BigInt      { return BigInt{b.h, Imports.BigIntBitAnd(b.ptr, o.ptr)} }
func (b BigInt) LeftShift(bits uint32) BigInt  { return BigInt{b.h, Imports.BigIntLeftShift(b.ptr, bits)} }
func (b BigInt) RightShift(bits uint32) BigInt { return BigInt{b.h, Imports.BigIntRightShift(b.ptr, bits)} }

// String renders b through bigInt.toString and decodes the resulting
// managed string.
func (b BigInt) String() string {
	return DecodeString(b.h, Imports.BigIntToString(b.ptr))
}

// Hex renders b through bigInt.toHex.
func (b BigInt) Hex() string {
	return DecodeString(b.h, Imports.BigIntToHex(b.ptr))
}

// Uint256 materialises b as a github.com/holiman/uint256.Int by round-
// tripping it through bigInt.toString and parsing the decimal text. This
// is the one place this package actually inspects a bigInt handle's value
// rather than treating it as opaque - useful for indexer logic that wants
// to compare or sum amounts - and it costs one host call plus one parse,
// not a representation assumption.
func (b BigInt) Uint256() (*uint256.Int, error) {
	n := new(uint256.Int)
	if err := n.SetFromDecimal(b.String()); err != nil {
		return nil, err
	}
	return n, nil
}

// Note: §6 exposes no bigInt.fromString import (unlike bigDecimal, which
// does), so there is no general way to lift a native uint256.Int back into
// a bigInt handle from inside the module - only the host ever originates
// one. Code that needs a handle for a locally computed value must route it
// through an arithmetic op (Plus, Times, ...) seeded from an existing
// handle, exactly as the source ABI requires.
