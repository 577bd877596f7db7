// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package yogurt

// Host is every function the ABI bridge imports from the "env" module
// (§6), expressed as a Go interface instead of forty-three individual
// go:wasmimport declarations. The tinygo build binds Imports to a real
// implementation backed by those declarations (wasm_imports_tinygo.go);
// any other build - including plain `go test` - can bind Imports to a
// fake, the way the distilled source's MockContext replaces every memory
// operation with a no-op so handler logic can be unit tested.
//
// Every pointer-valued argument and result is a Ptr, and the scalar ones
// (log level, shift and exponent counts, the JSON number and bigDecimal
// equality results) are plain Go integers, floats or bools matching the
// signatures of §6; the wire-level marshalling of arguments and
// results into and out of those pointers is the caller's job (bigint.go,
// ethereum.go, ...), not the Host boundary's.
type Host interface {
	StoreGet(entity, id Ptr) Ptr
	StoreSet(entity, id, data Ptr)
	StoreRemove(entity, id Ptr)

	EthereumCall(call Ptr) Ptr
	EthereumEncode(params Ptr) Ptr
	EthereumDecode(types, data Ptr) Ptr

	BytesToString(b Ptr) Ptr
	BytesToHex(b Ptr) Ptr
	BigIntToString(b Ptr) Ptr
	BigIntToHex(b Ptr) Ptr
	StringToH160(s Ptr) Ptr
	BytesToBase58(b Ptr) Ptr

	BigIntPlus(a, b Ptr) Ptr
	BigIntMinus(a, b Ptr) Ptr
	BigIntTimes(a, b Ptr) Ptr
	BigIntDividedBy(a, b Ptr) Ptr
	BigIntMod(a, b Ptr) Ptr
	BigIntPow(a Ptr, exp uint32) Ptr
	BigIntBitOr(a, b Ptr) Ptr
	BigIntBitAnd(a, b Ptr) Ptr
	BigIntLeftShift(a Ptr, bits uint32) Ptr
	BigIntRightShift(a Ptr, bits uint32) Ptr

	BigDecimalPlus(a, b Ptr) Ptr
	BigDecimalMinus(a, b Ptr) Ptr
	BigDecimalTimes(a, b Ptr) Ptr
	BigDecimalDividedBy(a, b Ptr) Ptr
	BigDecimalEquals(a, b Ptr) bool
	BigDecimalToString(a Ptr) Ptr
	BigDecimalFromString(s Ptr) Ptr

	Keccak256(data Ptr) Ptr

	JSONFromBytes(b Ptr) Ptr
	JSONToI64(v Ptr) int64
	JSONToU64(v Ptr) uint64
	JSONToF64(v Ptr) float64
	JSONToBigInt(v Ptr) Ptr

	IPFSCat(hash Ptr) Ptr
	IPFSMap(hash, callback, userData, flags Ptr)

	Log(level int32, msg Ptr)

	DataSourceCreate(template, params Ptr)
	DataSourceAddress() Ptr
	DataSourceNetwork() Ptr
	DataSourceContext() Ptr

	ENSNameByHash(hash Ptr) Ptr
}

// Imports is the process-wide Host binding every wrapper in this package
// calls through. It is nil until something sets it: the tinygo build's
// init (wasm_imports_tinygo.go) on the real target, or a test's explicit
// assignment of a fake (mock.New installs its Context) otherwise.
var Imports Host

// LogSeverity mirrors log.log's first argument (§6, §7).
type LogSeverity int32

const (
	LogCritical LogSeverity = 0
	LogError    LogSeverity = 1
	LogWarning  LogSeverity = 2
	LogInfo     LogSeverity = 3
	LogDebug    LogSeverity = 4
)
