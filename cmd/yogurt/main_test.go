// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"testing"

	"github.com/yogurt-sh/yogurt/internal/manifest"
)

func TestRootCmdHasExpectedSubcommands(t *testing.T) {
	root := newRootCmd()
	want := map[string]bool{
		"init": false, "codegen": false, "build": false,
		"test": false, "validate": false, "deploy": false,
	}
	for _, c := range root.Commands() {
		name := c.Name()
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestMappingDirsDedupes(t *testing.T) {
	m := &manifest.Manifest{
		DataSources: []manifest.DataSource{
			{Mapping: manifest.Mapping{File: "src/mapping.go", SchemaVersion: 2}},
		},
		Templates: []manifest.DataSourceTemplate{
			{Mapping: manifest.Mapping{File: "src/mapping.go", SchemaVersion: 7}},
			{Mapping: manifest.Mapping{File: "src/pair/mapping.go", SchemaVersion: 3}},
		},
	}
	got := mappingDirs("subgraph.yaml", m)
	want := map[string]uint32{"src": 2, "src/pair": 3}
	if len(got) != len(want) {
		t.Fatalf("mappingDirs = %v, want %v", got, want)
	}
	for dir, schemaVersion := range want {
		if got[dir] != schemaVersion {
			t.Fatalf("mappingDirs[%q] = %d, want %d", dir, got[dir], schemaVersion)
		}
	}
}
