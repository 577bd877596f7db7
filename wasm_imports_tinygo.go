// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build tinygo

package yogurt

// Every import below is bound to the literal module name "env" and the
// exact dotted name §6 specifies, regardless of how unidiomatic that name
// looks as a Go identifier - the dotted form is part of the wire contract,
// not a naming choice we get to make.

//go:wasmimport env store.get
func imp_storeGet(entity, id int32) int32

//go:wasmimport env store.set
func imp_storeSet(entity, id, data int32)

//go:wasmimport env store.remove
func imp_storeRemove(entity, id int32)

//go:wasmimport env ethereum.call
func imp_ethereumCall(call int32) int32

//go:wasmimport env ethereum.encode
func imp_ethereumEncode(params int32) int32

//go:wasmimport env ethereum.decode
func imp_ethereumDecode(types, data int32) int32

//go:wasmimport env typeConversion.bytesToString
func imp_bytesToString(b int32) int32

//go:wasmimport env typeConversion.bytesToHex
func imp_bytesToHex(b int32) int32

//go:wasmimport env typeConversion.bigIntToString
func imp_bigIntToString(b int32) int32

//go:wasmimport env typeConversion.bigIntToHex
func imp_bigIntToHex(b int32) int32

//go:wasmimport env typeConversion.stringToH160
func imp_stringToH160(s int32) int32

//go:wasmimport env typeConversion.bytesToBase58
func imp_bytesToBase58(b int32) int32

//go:wasmimport env bigInt.plus
func imp_bigIntPlus(a, b int32) int32

//go:wasmimport env bigInt.minus
func imp_bigIntMinus(a, b int32) int32

//go:wasmimport env bigInt.times
func imp_bigIntTimes(a, b int32) int32

//go:wasmimport env bigInt.dividedBy
func imp_bigIntDividedBy(a, b int32) int32

//go:wasmimport env bigInt.mod
func imp_bigIntMod(a, b int32) int32

//go:wasmimport env bigInt.pow
func imp_bigIntPow(a, exp int32) int32

//go:wasmimport env bigInt.bitOr
func imp_bigIntBitOr(a, b int32) int32

//go:wasmimport env bigInt.bitAnd
func imp_bigIntBitAnd(a, b int32) int32

//go:wasmimport env bigInt.leftShift
func imp_bigIntLeftShift(a, bits int32) int32

//go:wasmimport env bigInt.rightShift
func imp_bigIntRightShift(a, bits int32) int32

//go:wasmimport env bigDecimal.plus
func imp_bigDecimalPlus(a, b int32) int32

//go:wasmimport env bigDecimal.minus
func imp_bigDecimalMinus(a, b int32) int32

//go:wasmimport env bigDecimal.times
func imp_bigDecimalTimes(a, b int32) int32

//go:wasmimport env bigDecimal.dividedBy
func imp_bigDecimalDividedBy(a, b int32) int32

//go:wasmimport env bigDecimal.equals
func imp_bigDecimalEquals(a, b int32) int32

//go:wasmimport env bigDecimal.toString
func imp_bigDecimalToString(a int32) int32

//go:wasmimport env bigDecimal.fromString
func imp_bigDecimalFromString(s int32) int32

//go:wasmimport env crypto.keccak256
func imp_keccak256(data int32) int32

//go:wasmimport env json.fromBytes
func imp_jsonFromBytes(b int32) int32

//go:wasmimport env json.toI64
func imp_jsonToI64(v int32) int64

//go:wasmimport env json.toU64
func imp_jsonToU64(v int32) uint64

//go:wasmimport env json.toF64
func imp_jsonToF64(v int32) float64

//go:wasmimport env json.toBigInt
func imp_jsonToBigInt(v int32) int32

//go:wasmimport env ipfs.cat
func imp_ipfsCat(hash int32) int32

//go:wasmimport env ipfs.map
func imp_ipfsMap(hash, callback, userData, flags int32)

//go:wasmimport env log.log
func imp_log(level, msg int32)

//go:wasmimport env dataSource.create
func imp_dataSourceCreate(template, params int32)

//go:wasmimport env dataSource.address
func imp_dataSourceAddress() int32

//go:wasmimport env dataSource.network
func imp_dataSourceNetwork() int32

//go:wasmimport env dataSource.context
func imp_dataSourceContext() int32

//go:wasmimport env ens.nameByHash
func imp_ensNameByHash(hash int32) int32

// tinygoHost implements Host directly atop the go:wasmimport declarations
// above. It is the only Host implementation that actually crosses the wasm
// boundary; every other implementation in this repository (mock package)
// exists purely so the rest of the codebase can be unit tested without it.
type tinygoHost struct{}

func init() { Imports = tinygoHost{} }

func (tinygoHost) StoreGet(entity, id Ptr) Ptr { return PtrFromSigned(imp_storeGet(entity.Signed(), id.Signed())) }
func (tinygoHost) StoreSet(entity, id, data Ptr) {
	imp_storeSet(entity.Signed(), id.Signed(), data.Signed())
}
func (tinygoHost) StoreRemove(entity, id Ptr) { imp_storeRemove(entity.Signed(), id.Signed()) }

func (tinygoHost) EthereumCall(call Ptr) Ptr { return PtrFromSigned(imp_ethereumCall(call.Signed())) }
func (tinygoHost) EthereumEncode(params Ptr) Ptr {
	return PtrFromSigned(imp_ethereumEncode(params.Signed()))
}
func (tinygoHost) EthereumDecode(types, data Ptr) Ptr {
	return PtrFromSigned(imp_ethereumDecode(types.Signed(), data.Signed()))
}

func (tinygoHost) BytesToString(b Ptr) Ptr   { return PtrFromSigned(imp_bytesToString(b.Signed())) }
func (tinygoHost) BytesToHex(b Ptr) Ptr      { return PtrFromSigned(imp_bytesToHex(b.Signed())) }
func (tinygoHost) BigIntToString(b Ptr) Ptr  { return PtrFromSigned(imp_bigIntToString(b.Signed())) }
func (tinygoHost) BigIntToHex(b Ptr) Ptr     { return PtrFromSigned(imp_bigIntToHex(b.Signed())) }
func (tinygoHost) StringToH160(s Ptr) Ptr    { return PtrFromSigned(imp_stringToH160(s.Signed())) }
func (tinygoHost) BytesToBase58(b Ptr) Ptr   { return PtrFromSigned(imp_bytesToBase58(b.Signed())) }

func (tinygoHost) BigIntPlus(a, b Ptr) Ptr      { return PtrFromSigned(imp_bigIntPlus(a.Signed(), b.Signed())) }
func (tinygoHost) BigIntMinus(a, b Ptr) Ptr     { return PtrFromSigned(imp_bigIntMinus(a.Signed(), b.Signed())) }
func (tinygoHost) BigIntTimes(a, b Ptr) Ptr     { return PtrFromSigned(imp_bigIntTimes(a.Signed(), b.Signed())) }
func (tinygoHost) BigIntDividedBy(a, b Ptr) Ptr {
	return PtrFromSigned(imp_bigIntDividedBy(a.Signed(), b.Signed()))
}
func (tinygoHost) BigIntMod(a, b Ptr) Ptr { return PtrFromSigned(imp_bigIntMod(a.Signed(), b.Signed())) }
func (tinygoHost) BigIntPow(a Ptr, exp uint32) Ptr {
	return PtrFromSigned(imp_bigIntPow(a.Signed(), int32(exp)))
}
func (tinygoHost) BigIntBitOr(a, b Ptr) Ptr  { return PtrFromSigned(imp_bigIntBitOr(a.Signed(), b.Signed())) }
func (tinygoHost) BigIntBitAnd(a, b Ptr) Ptr { return PtrFromSigned(imp_bigIntBitAnd(a.Signed(), b.Signed())) }
func (tinygoHost) BigIntLeftShift(a Ptr, bits uint32) Ptr {
	return PtrFromSigned(imp_bigIntLeftShift(a.Signed(), int32(bits)))
}
func (tinygoHost) BigIntRightShift(a Ptr, bits uint32) Ptr {
	return PtrFromSigned(imp_bigIntRightShift(a.Signed(), int32(bits)))
}

func (tinygoHost) BigDecimalPlus(a, b Ptr) Ptr {
	return PtrFromSigned(imp_bigDecimalPlus(a.Signed(), b.Signed()))
}
func (tinygoHost) BigDecimalMinus(a, b Ptr) Ptr {
	return PtrFromSigned(imp_bigDecimalMinus(a.Signed(), b.Signed()))
}
func (tinygoHost) BigDecimalTimes(a, b Ptr) Ptr {
	return PtrFromSigned(imp_bigDecimalTimes(a.Signed(), b.Signed()))
}
func (tinygoHost) BigDecimalDividedBy(a, b Ptr) Ptr {
	return PtrFromSigned(imp_bigDecimalDividedBy(a.Signed(), b.Signed()))
}
func (tinygoHost) BigDecimalEquals(a, b Ptr) bool {
	return imp_bigDecimalEquals(a.Signed(), b.Signed()) != 0
}
func (tinygoHost) BigDecimalToString(a Ptr) Ptr { return PtrFromSigned(imp_bigDecimalToString(a.Signed())) }
func (tinygoHost) BigDecimalFromString(s Ptr) Ptr {
	return PtrFromSigned(imp_bigDecimalFromString(s.Signed()))
}

func (tinygoHost) Keccak256(data Ptr) Ptr { return PtrFromSigned(imp_keccak256(data.Signed())) }

func (tinygoHost) JSONFromBytes(b Ptr) Ptr { return PtrFromSigned(imp_jsonFromBytes(b.Signed())) }
func (tinygoHost) JSONToI64(v Ptr) int64   { return imp_jsonToI64(v.Signed()) }
func (tinygoHost) JSONToU64(v Ptr) uint64  { return imp_jsonToU64(v.Signed()) }
func (tinygoHost) JSONToF64(v Ptr) float64 { return imp_jsonToF64(v.Signed()) }
func (tinygoHost) JSONToBigInt(v Ptr) Ptr  { return PtrFromSigned(imp_jsonToBigInt(v.Signed())) }

func (tinygoHost) IPFSCat(hash Ptr) Ptr { return PtrFromSigned(imp_ipfsCat(hash.Signed())) }
func (tinygoHost) IPFSMap(hash, callback, userData, flags Ptr) {
	imp_ipfsMap(hash.Signed(), callback.Signed(), userData.Signed(), flags.Signed())
}

func (tinygoHost) Log(level int32, msg Ptr) { imp_log(level, msg.Signed()) }

func (tinygoHost) DataSourceCreate(template, params Ptr) {
	imp_dataSourceCreate(template.Signed(), params.Signed())
}
func (tinygoHost) DataSourceAddress() Ptr { return PtrFromSigned(imp_dataSourceAddress()) }
func (tinygoHost) DataSourceNetwork() Ptr { return PtrFromSigned(imp_dataSourceNetwork()) }
func (tinygoHost) DataSourceContext() Ptr { return PtrFromSigned(imp_dataSourceContext()) }

func (tinygoHost) ENSNameByHash(hash Ptr) Ptr { return PtrFromSigned(imp_ensNameByHash(hash.Signed())) }
