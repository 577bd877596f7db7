// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import "testing"

func TestParseFieldTag(t *testing.T) {
	cases := []struct {
		tag, goName string
		want        fieldTag
	}{
		{``, "Balance", fieldTag{key: "Balance"}},
		{`yogurt:"balance"`, "Balance", fieldTag{key: "balance"}},
		{`yogurt:"balance,bigdecimal"`, "Balance", fieldTag{key: "balance", variant: "bigdecimal"}},
		{`json:"balance"`, "Balance", fieldTag{key: "Balance"}},
		{`yogurt:"fee,since=2"`, "Fee", fieldTag{key: "fee", since: 2}},
		{`yogurt:"fee,until=5"`, "Fee", fieldTag{key: "fee", until: 5}},
		{`yogurt:"fee,since=2,until=5"`, "Fee", fieldTag{key: "fee", since: 2, until: 5}},
		{`yogurt:"delta,int,since=3"`, "Delta", fieldTag{key: "delta", variant: "int", since: 3}},
	}
	for _, c := range cases {
		got := parseFieldTag(c.tag, c.goName)
		if got != c.want {
			t.Errorf("parseFieldTag(%q, %q) = %+v, want %+v", c.tag, c.goName, got, c.want)
		}
	}
}
