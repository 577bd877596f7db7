// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package yogurt

import "testing"

func TestFieldPresenceActive(t *testing.T) {
	cases := []struct {
		name string
		fp   FieldPresence
		v    SchemaVersion
		want bool
	}{
		{"always present, version 0", FieldPresence{}, 0, true},
		{"always present, later version", FieldPresence{}, 9, true},
		{"not yet introduced", FieldPresence{Since: 3}, 2, false},
		{"introduced exactly at this version", FieldPresence{Since: 3}, 3, true},
		{"introduced, still live", FieldPresence{Since: 3}, 5, true},
		{"retired before this version", FieldPresence{Since: 1, Until: 4}, 4, false},
		{"retired after this version", FieldPresence{Since: 1, Until: 4}, 3, true},
		{"never retired (Until zero)", FieldPresence{Since: 1}, 100, true},
	}
	for _, c := range cases {
		if got := c.fp.Active(c.v); got != c.want {
			t.Errorf("%s: FieldPresence{Since: %d, Until: %d}.Active(%d) = %v, want %v",
				c.name, c.fp.Since, c.fp.Until, c.v, got, c.want)
		}
	}
}
