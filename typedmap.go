// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package yogurt

// TypedMapEntry is one (key, value) pair of an entity, mirroring the
// typed-map entry wire shape (§3): a pointer to a string key and a pointer
// to a tagged-variant StoreValue.
type TypedMapEntry struct {
	Key   string
	Value StoreValue
}

// TypedMap is an ordered sequence of entries. The host does not require an
// ordering (§4.4), but keeping insertion order here makes encode/decode
// round-trips deterministic and lets generated entity code control field
// order the way a struct's field declaration order would.
type TypedMap []TypedMapEntry

// Get returns the value for key and whether it was present.
func (m TypedMap) Get(key string) (StoreValue, bool) {
	for _, e := range m {
		if e.Key == key {
			return e.Value, true
		}
	}
	return StoreValue{}, false
}

// DefineTypedMap encodes or decodes a Typed-map object (§3, §4.4). Encoding
// allocates, in order: each entry's key string and value variant, each
// entry object, the entries Array's buffer and header, and finally the
// Typed-map object itself - satisfying the header-before-payload law at
// every level.
func DefineTypedMap(c *Codec, wire *Ptr, native *TypedMap) {
	if c.enc {
		*wire = encodeTypedMap(c, *native)
		return
	}
	*native = decodeTypedMap(c, *wire)
}

func encodeTypedMap(c *Codec, m TypedMap) Ptr {
	entryPtrs := make([]Ptr, len(m))
	for i, e := range m {
		keyWire := EncodeString(c.h, e.Key)
		valWire := EncodeStoreValue(c, e.Value)

		entry := c.h.Alloc(8, ClassTypedMapEntry)
		c.h.WriteU32(entry, 0, keyWire.Raw())
		c.h.WriteU32(entry, 4, valWire.Raw())
		entryPtrs[i] = entry
	}

	entriesArray := encodeArray(c, entryPtrs, func(c *Codec, wire *Ptr, native *Ptr) {
		*wire = *native
	})

	mapObj := c.h.Alloc(4, ClassTypedMap)
	c.h.WriteU32(mapObj, 0, entriesArray.Raw())
	return mapObj
}

func decodeTypedMap(c *Codec, p Ptr) TypedMap {
	if p.IsNull() {
		return nil
	}
	entriesArray := Ptr(c.h.ReadU32(p, 0))
	entryPtrs := decodeArray(c, entriesArray, func(c *Codec, wire *Ptr, native *Ptr) {
		*native = *wire
	})

	out := make(TypedMap, len(entryPtrs))
	for i, entry := range entryPtrs {
		keyPtr := Ptr(c.h.ReadU32(entry, 0))
		if keyPtr.IsNull() {
			Trap(ErrBadTypedMapEntry.Error())
		}
		if hdr := c.h.Header(keyPtr); hdr.RTID != ClassString {
			Trap(ErrBadTypedMapEntry.Error())
		}
		valPtr := Ptr(c.h.ReadU32(entry, 4))
		out[i] = TypedMapEntry{
			Key:   DecodeString(c.h, keyPtr),
			Value: DecodeStoreValue(c, valPtr),
		}
	}
	return out
}
