// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"reflect"
	"strconv"
	"strings"
)

// fieldTag is the parsed form of a `yogurt:"key,variant,since=N,until=N"`
// struct tag. key names the wire-side field (a StoreValue key for entities,
// an EventParam name for events); variant disambiguates a Go type that maps
// to more than one wire representation (a yogurt.Ptr handle is either a
// bigInt or a bigDecimal; a Ptr-typed event param is either signed or
// unsigned). since/until bound the schema versions an event field is live
// for, the struct-tag surface of generics.go's FieldPresence; both are zero
// (the teacher's ForkFilter "always present" default) when absent.
type fieldTag struct {
	key     string
	variant string
	since   uint32
	until   uint32
}

// parseFieldTag reads the yogurt struct tag, falling back to goName when the
// tag (or its key portion) is absent - the same "tag missing, use the field
// name" convention json and yaml tags use.
func parseFieldTag(tag string, goName string) fieldTag {
	raw, ok := reflect.StructTag(tag).Lookup("yogurt")
	if !ok || raw == "" {
		return fieldTag{key: goName}
	}
	parts := strings.Split(raw, ",")
	ft := fieldTag{key: parts[0]}
	if ft.key == "" {
		ft.key = goName
	}
	for _, part := range parts[1:] {
		switch {
		case strings.HasPrefix(part, "since="):
			ft.since = parseVersion(strings.TrimPrefix(part, "since="))
		case strings.HasPrefix(part, "until="):
			ft.until = parseVersion(strings.TrimPrefix(part, "until="))
		default:
			ft.variant = part
		}
	}
	return ft
}

// parseVersion parses a since=/until= tag value, treating anything
// malformed as 0 rather than failing the whole generator run over a typo -
// codegen already surfaces the struct source location in its own errors,
// so a bad version number only ever costs a field its presence gate.
func parseVersion(s string) uint32 {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint32(v)
}
