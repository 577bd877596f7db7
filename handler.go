// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package yogurt

import (
	"strings"
	"sync"
)

// HandlerFunc is the shape every registered handler takes: a heap to decode
// against and the raw event pointer the host invoked the export with.
type HandlerFunc func(h Heap, event Ptr)

var (
	handlersMu sync.Mutex
	handlers   = map[string]HandlerFunc{}
)

// Register associates a handler under its exported wasm name. yogurtgen
// emits no registration code (it handles only //yogurt:entity and
// //yogurt:event types), so every handler is registered by an explicit
// call to Register.
func Register(exportName string, fn HandlerFunc) error {
	handlersMu.Lock()
	defer handlersMu.Unlock()
	if _, exists := handlers[exportName]; exists {
		return ErrDuplicateHandler
	}
	handlers[exportName] = fn
	return nil
}

// RegisteredHandlers returns the exported names of every handler currently
// registered, sorted by nothing in particular - callers that need a stable
// order sort it themselves.
func RegisteredHandlers() []string {
	handlersMu.Lock()
	defer handlersMu.Unlock()
	names := make([]string, 0, len(handlers))
	for name := range handlers {
		names = append(names, name)
	}
	return names
}

// Invoke looks up the handler registered under exportName and calls it with
// event, recovering a Fault panic into an error return; any other panic
// value is re-raised. Neither this package nor yogurtgen generates a
// //export wrapper around Invoke: the returned error is a normal Go error
// that the caller (a test, or a hand-written export) handles itself.
func Invoke(exportName string, h Heap, event Ptr) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if f, ok := r.(*Fault); ok {
				err = f
				return
			}
			panic(r)
		}
	}()

	handlersMu.Lock()
	fn, ok := handlers[exportName]
	handlersMu.Unlock()
	if !ok {
		return ErrNoHandler
	}
	fn(h, event)
	return nil
}

// MangleName implements the default export-name transform (P10): split a
// snake_case source identifier on underscores and concatenate every token,
// capitalising the first rune of every token after the first.
func MangleName(sourceIdent string) string {
	tokens := strings.Split(sourceIdent, "_")
	var b strings.Builder
	for i, tok := range tokens {
		if tok == "" {
			continue
		}
		if i == 0 {
			b.WriteString(tok)
			continue
		}
		b.WriteString(strings.ToUpper(tok[:1]))
		b.WriteString(tok[1:])
	}
	return b.String()
}
