// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package yogurt

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// ContractCall is the distilled specification's "contract-call marshalling"
// stub (§9 open question), resolved here as a concrete TypedMap-shaped
// payload the host's ethereum.call import can consume. The wire layout for
// a call request is not one of §3's fixed composites, so it is encoded the
// same way an entity is: an ordered TypedMap whose values carry enough
// type information (via EthereumValue's own Kind) for the host to perform
// the actual contract read.
type ContractCall struct {
	ContractAddress    Address
	ContractName       string
	FunctionName       string
	FunctionSignature  string
	Args               []EthereumValue
}

// Call marshals a ContractCall through ethereum.call and decodes the
// returned Array of EthereumValue results. A null result means the call
// reverted or the host could not resolve the contract (§7 null-return
// policy), surfaced here as ok=false rather than an error, matching the
// package's other null-returning host-call wrappers (IPFSCat,
// DataSourceContext).
func Call(h Heap, call ContractCall) (results []EthereumValue, ok bool) {
	c := NewEncoder(h)
	defer c.Release()

	argsWire := encodeArrayClassed(c, call.Args, ethereumValueElemCodec, ClassArray)
	m := TypedMap{
		{Key: "contractAddress", Value: NewBytesValue(call.ContractAddress[:])},
		{Key: "contractName", Value: NewStringValue(call.ContractName)},
		{Key: "functionName", Value: NewStringValue(call.FunctionName)},
		{Key: "functionSignature", Value: NewStringValue(call.FunctionSignature)},
	}
	var callWire Ptr
	DefineTypedMap(c, &callWire, &m)
	// The args array travels alongside the typed-map request rather than
	// inside it (EthereumValue is not a StoreValue), so the wire object the
	// host actually receives is a 2-field pair {request, args}.
	pair := h.Alloc(8, ClassObject)
	h.WriteU32(pair, 0, callWire.Raw())
	h.WriteU32(pair, 4, argsWire.Raw())

	resPtr := Imports.EthereumCall(pair)
	if resPtr.IsNull() {
		return nil, false
	}
	d := NewDecoder(h)
	defer d.Release()
	return decodeArray(d, resPtr, ethereumValueElemCodec), true
}

// FunctionSelector computes the 4-byte Keccak-256 selector of a canonical
// function signature (e.g. "transfer(address,uint256)"), via the host's
// crypto.keccak256 import - the module never ships its own hash
// implementation (crypto.go).
func FunctionSelector(h Heap, signature string) [4]byte {
	digest := Keccak256(h, []byte(signature))
	var sel [4]byte
	copy(sel[:], digest[:4])
	return sel
}

// CanonicalSignature builds the canonical "name(type1,type2,...)" form a
// selector or log topic hash is computed over, given the Solidity type
// strings of a function's or event's arguments in order. It leans on
// go-ethereum's accounts/abi package purely to normalise and validate each
// type string (e.g. rejecting a typo'd "uint256[1" before it ever reaches
// crypto.keccak256) - no go-ethereum chain I/O is involved, only its ABI
// type grammar, the same role the package plays in generated contract
// bindings this toolchain's codegen mimics.
func CanonicalSignature(name string, argTypes []string) (string, error) {
	canon := make([]string, len(argTypes))
	for i, t := range argTypes {
		typ, err := abi.NewType(t, "", nil)
		if err != nil {
			return "", err
		}
		canon[i] = typ.String()
	}
	return name + "(" + strings.Join(canon, ",") + ")", nil
}

// EventTopic computes the first log topic (the event signature hash) for
// an event named name with the given argument types: the CanonicalSignature
// form is hashed through crypto.keccak256 and the full 32-byte digest is
// returned. FunctionSelector, by contrast, hashes the signature string it is
// given as-is and keeps only the first 4 bytes.
func EventTopic(h Heap, name string, argTypes []string) ([32]byte, error) {
	sig, err := CanonicalSignature(name, argTypes)
	if err != nil {
		return [32]byte{}, err
	}
	return Keccak256(h, []byte(sig)), nil
}
