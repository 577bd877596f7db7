// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package yogurt

// EthereumValueKind discriminates the ten EthereumValue variants (§6), used
// for contract-call arguments and return values (§10.4).
type EthereumValueKind int32

const (
	EthereumValueKindAddress    EthereumValueKind = 0
	EthereumValueKindFixedBytes EthereumValueKind = 1
	EthereumValueKindBytes      EthereumValueKind = 2
	EthereumValueKindInt        EthereumValueKind = 3
	EthereumValueKindUint       EthereumValueKind = 4
	EthereumValueKindBool       EthereumValueKind = 5
	EthereumValueKindString     EthereumValueKind = 6
	EthereumValueKindFixedArray EthereumValueKind = 7
	EthereumValueKindArray      EthereumValueKind = 8
	EthereumValueKindTuple      EthereumValueKind = 9
)

// Address is a 20-byte Ethereum account address, decoded from a class-1
// byte buffer of exactly 20 bytes.
type Address [20]byte

// EthereumValue mirrors EthereumValue's tagged-variant wire shape, the
// counterpart of StoreValue for values flowing through ethereum.call,
// ethereum.encode and ethereum.decode rather than store.set.
type EthereumValue struct {
	Kind EthereumValueKind

	Address     Address
	FixedBytes  []byte
	Bytes       []byte
	Int         Ptr // opaque bigInt handle, signed range
	Uint        Ptr // opaque bigInt handle, unsigned range
	Bool        bool
	Str         string
	FixedArray  []EthereumValue
	Array       []EthereumValue
	Tuple       []EthereumValue
}

// DefineEthereumValue encodes or decodes an EthereumValue tagged variant.
func DefineEthereumValue(c *Codec, wire *Ptr, native *EthereumValue) {
	if c.enc {
		*wire = EncodeEthereumValue(c, *native)
		return
	}
	*native = DecodeEthereumValue(c, *wire)
}

func EncodeEthereumValue(c *Codec, v EthereumValue) Ptr {
	var payload uint64
	switch v.Kind {
	case EthereumValueKindAddress:
		payload = uint64(EncodeBytes(c.h, v.Address[:]).Raw())
	case EthereumValueKindFixedBytes:
		payload = uint64(EncodeBytes(c.h, v.FixedBytes).Raw())
	case EthereumValueKindBytes:
		payload = uint64(EncodeBytes(c.h, v.Bytes).Raw())
	case EthereumValueKindInt:
		payload = uint64(v.Int.Raw())
	case EthereumValueKindUint:
		payload = uint64(v.Uint.Raw())
	case EthereumValueKindBool:
		if v.Bool {
			payload = 1
		}
	case EthereumValueKindString:
		payload = uint64(EncodeString(c.h, v.Str).Raw())
	case EthereumValueKindFixedArray:
		arr := encodeArrayClassed(c, v.FixedArray, ethereumValueElemCodec, ClassArray)
		payload = uint64(arr.Raw())
	case EthereumValueKindArray:
		arr := encodeArrayClassed(c, v.Array, ethereumValueElemCodec, ClassArray)
		payload = uint64(arr.Raw())
	case EthereumValueKindTuple:
		arr := encodeArrayClassed(c, v.Tuple, ethereumValueElemCodec, ClassArray)
		payload = uint64(arr.Raw())
	}

	p := c.h.Alloc(16, ClassStoreValue) // tagged variants share one physical shape
	c.h.WriteU32(p, 0, uint32(v.Kind))
	c.h.WriteU32(p, 4, 0)
	c.h.WriteU64(p, 8, payload)
	return p
}

func DecodeEthereumValue(c *Codec, p Ptr) EthereumValue {
	if p.IsNull() {
		return EthereumValue{}
	}
	kind := EthereumValueKind(c.h.ReadI32(p, 0))
	payload := c.h.ReadU64(p, 8)
	ptr := Ptr(uint32(payload))

	switch kind {
	case EthereumValueKindAddress:
		var addr Address
		copy(addr[:], DecodeBytes(c.h, ptr))
		return EthereumValue{Kind: kind, Address: addr}
	case EthereumValueKindFixedBytes:
		return EthereumValue{Kind: kind, FixedBytes: DecodeBytes(c.h, ptr)}
	case EthereumValueKindBytes:
		return EthereumValue{Kind: kind, Bytes: DecodeBytes(c.h, ptr)}
	case EthereumValueKindInt:
		return EthereumValue{Kind: kind, Int: ptr}
	case EthereumValueKindUint:
		return EthereumValue{Kind: kind, Uint: ptr}
	case EthereumValueKindBool:
		return EthereumValue{Kind: kind, Bool: payload != 0}
	case EthereumValueKindString:
		return EthereumValue{Kind: kind, Str: DecodeString(c.h, ptr)}
	case EthereumValueKindFixedArray:
		return EthereumValue{Kind: kind, FixedArray: decodeArray(c, ptr, ethereumValueElemCodec)}
	case EthereumValueKindArray:
		return EthereumValue{Kind: kind, Array: decodeArray(c, ptr, ethereumValueElemCodec)}
	case EthereumValueKindTuple:
		return EthereumValue{Kind: kind, Tuple: decodeArray(c, ptr, ethereumValueElemCodec)}
	default:
		return EthereumValue{}
	}
}

func ethereumValueElemCodec(c *Codec, wire *Ptr, native *EthereumValue) {
	DefineEthereumValue(c, wire, native)
}
