// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package yogurt

// DataSourceCreate registers a dynamic data source from the named template,
// seeded with params (typically a single address or a small typed-map of
// constructor arguments).
func DataSourceCreate(h Heap, template string, params TypedMap) {
	c := NewEncoder(h)
	defer c.Release()
	var paramsWire Ptr
	DefineTypedMap(c, &paramsWire, &params)
	Imports.DataSourceCreate(EncodeString(h, template), paramsWire)
}

// DataSourceAddress returns the address of the data source currently
// executing the handler.
func DataSourceAddress(h Heap) Address {
	var addr Address
	copy(addr[:], DecodeBytes(h, Imports.DataSourceAddress()))
	return addr
}

// DataSourceNetwork returns the network name (e.g. "mainnet") of the chain
// the current data source is indexing.
func DataSourceNetwork(h Heap) string {
	return DecodeString(h, Imports.DataSourceNetwork())
}

// DataSourceContext resolves the distilled specification's "data-source
// context is a stub" open question (§9): a dynamic data source created with
// DataSourceCreate's params is retrievable here as the same TypedMap shape
// used for entities (§4.4), since the host stores the context exactly that
// way. ok is false when the current data source has no context (the
// common case for statically declared sources).
func DataSourceContext(h Heap) (ctx TypedMap, ok bool) {
	p := Imports.DataSourceContext()
	if p.IsNull() {
		return nil, false
	}
	c := NewDecoder(h)
	defer c.Release()
	DefineTypedMap(c, &p, &ctx)
	return ctx, true
}
