// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package yogurt

import "errors"

// ErrOutOfMemory is the value the simulated heap panics with when a
// requested allocation would grow the heap past its configured ceiling. The
// real tinygo build never uses this: it traps instead, per the module
// contract's failure model.
var ErrOutOfMemory = errors.New("yogurt: heap growth exceeded ceiling")

// ErrNilEvent is the trap reason DecodeEvent (chain.go) raises when asked
// to decode a null event pointer; the module contract treats this as a
// fatal programming error rather than an absent value, so it is never
// returned as a plain error - only passed to Trap.
var ErrNilEvent = errors.New("yogurt: event pointer is null")

// ErrUnknownClassID is the trap reason decodeArray (array.go) raises when a
// wire pointer's header rt_id is neither ClassArray nor ClassArrayOfStore -
// a corrupted or mistyped pointer, distinct from the "unknown StoreValue
// kind" edge case (§4.4), which decodes to null rather than trapping.
var ErrUnknownClassID = errors.New("yogurt: unrecognised class id in header")

// ErrBadTypedMapEntry is the trap reason decodeTypedMap (typedmap.go)
// raises when an entry's key pointer's header rt_id is not ClassString.
var ErrBadTypedMapEntry = errors.New("yogurt: typed-map entry key is not a string")

// ErrNoHandler is returned by the registry when asked to look up a handler
// that was never registered.
var ErrNoHandler = errors.New("yogurt: no handler registered under that name")

// ErrDuplicateHandler is returned when two handlers register under the same
// exported wasm name.
var ErrDuplicateHandler = errors.New("yogurt: handler already registered under that export name")

// Fault is the panic payload a handler raises to signal a trap (§7). Invoke
// (handler.go) recovers exactly this type and returns it as an error; any
// other panic value is allowed to propagate so that genuine bugs are not
// silently swallowed.
type Fault struct {
	Reason string
}

func (f *Fault) Error() string { return "yogurt: fault: " + f.Reason }

// Trap panics with a Fault, the only sanctioned way for handler code to
// request an immediate, non-resumable termination of the current
// invocation.
func Trap(reason string) {
	panic(&Fault{Reason: reason})
}
