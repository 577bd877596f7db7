// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package yogurt

// SchemaVersion numbers successive revisions of a manifest's event-param
// schema. It plays the same role for this ABI that the teacher's Fork enum
// plays for consensus hard forks: a totally ordered tag codegen can compare
// a currently-loaded schema against.
type SchemaVersion uint32

// FieldPresence generalizes the teacher's ForkFilter{Added, Removed} to
// event-param schema evolution: a field introduced in a later manifest
// revision, or retired in one, is annotated with the version range it is
// live for. Until is zero for a field that was never removed.
type FieldPresence struct {
	Since SchemaVersion
	Until SchemaVersion // 0 means "still present"
}

// Active reports whether the field tagged with p is present in schema
// version v - the one place in the domain model that needed the teacher's
// fork-gating machinery, since every other optional field in this ABI is
// expressed with a plain null pointer (§3) rather than a schema version.
func (p FieldPresence) Active(v SchemaVersion) bool {
	if v < p.Since {
		return false
	}
	if p.Until != 0 && v >= p.Until {
		return false
	}
	return true
}
