// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package yogurt

import "sync"

// Codec is the single type every wire-shape definition in this package is
// written against, mirroring the teacher library's enc/dec dual-mode Codec:
// a Define* function is written once and runs in either direction depending
// on the enc flag (true when encoding). Here the two directions share a Heap
// instead of an io.Writer/io.Reader, because the ABI bridge's wire format
// is a pointer graph in linear memory, not a byte stream.
type Codec struct {
	h   Heap
	enc bool
	sv  SchemaVersion
}

// CurrentSchemaVersion is the SchemaVersion new Codecs are initialized
// with. Generated mapping code (cmd/yogurtgen) sets this once, from an
// init() emitted per the manifest's declared mapping.schemaVersion, so that
// every Codec a generated handler wrapper creates gates FieldPresence
// checks against the schema the mapping author actually wrote against. It
// defaults to zero, meaning "only fields present since schema version zero
// are considered live".
var CurrentSchemaVersion SchemaVersion

// codecPool reuses Codec wrappers the way the teacher reuses Encoder and
// Decoder instances, avoiding a fresh allocation per handler invocation -
// the one place in this codebase where that matters, since a handler may
// decode a deeply nested event on every call.
var codecPool = sync.Pool{
	New: func() any { return &Codec{} },
}

// NewEncoder returns a Codec bound to h in encode (native -> wire) mode.
func NewEncoder(h Heap) *Codec {
	c := codecPool.Get().(*Codec)
	c.h, c.enc, c.sv = h, true, CurrentSchemaVersion
	return c
}

// NewDecoder returns a Codec bound to h in decode (wire -> native) mode.
func NewDecoder(h Heap) *Codec {
	c := codecPool.Get().(*Codec)
	c.h, c.enc, c.sv = h, false, CurrentSchemaVersion
	return c
}

// Release returns c to the pool. Callers that keep a Codec only for the
// duration of a single Define* tree should defer Release immediately after
// obtaining it.
func (c *Codec) Release() {
	c.h, c.sv = nil, 0
	codecPool.Put(c)
}

// Heap exposes the underlying linear-memory handle, for Define* functions
// in other files of this package that need it directly (e.g. to allocate a
// buffer before filling it in).
func (c *Codec) Heap() Heap { return c.h }

// Encoding reports whether c is running in encode (native -> wire) mode.
func (c *Codec) Encoding() bool { return c.enc }

// SchemaVersion returns the schema version c gates generated FromWire
// field checks (generics.go's FieldPresence) against.
func (c *Codec) SchemaVersion() SchemaVersion { return c.sv }

// WithSchemaVersion overrides c's schema version, returning c for chaining.
// Tests use this to exercise a FieldPresence gate without touching the
// package-level CurrentSchemaVersion default.
func (c *Codec) WithSchemaVersion(v SchemaVersion) *Codec {
	c.sv = v
	return c
}

// Encodable is satisfied by any native type this package knows how to turn
// into a managed wire object.
type Encodable interface {
	EncodeWire(c *Codec) Ptr
}

// Decodable is satisfied by any native type this package knows how to
// populate from a managed wire object.
type Decodable interface {
	DecodeWire(c *Codec, p Ptr)
}

// ParamsDecoder is the interface codegen-emitted event parameter types
// satisfy, generalizing the teacher's newableObject[U] pointer-instantiation
// trick (generics.go) from "decode an SSZ object" to "decode an Event's
// params array".
type ParamsDecoder interface {
	FromWire(c *Codec, p Ptr) error
}

// newableParams is the domain analogue of the teacher's newableObject[U]:
// it lets DecodeParams instantiate a *U from just the type parameter.
type newableParams[U any] interface {
	ParamsDecoder
	*U
}

// DecodeParams allocates a zero U, decodes p into it via FromWire, and
// returns the populated pointer - the generic entry point generated event
// wrappers call so that the Event codec (chain.go) never needs to know the
// concrete params type of any one ABI event.
func DecodeParams[U any, PU newableParams[U]](c *Codec, p Ptr) (PU, error) {
	native := PU(new(U))
	if err := native.FromWire(c, p); err != nil {
		return nil, err
	}
	return native, nil
}
