// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package manifest

import (
	"errors"
	"testing"
)

const sampleManifest = `
specVersion: 0.0.5
description: ERC-20 transfer indexer
schema:
  file: ./schema.graphql
dataSources:
  - kind: ethereum
    name: Token
    network: mainnet
    source:
      address: "0x0000000000000000000000000000000000dEaD"
      abi: ERC20
      startBlock: 4000000
    mapping:
      kind: ethereum/events
      apiVersion: 0.0.7
      entities:
        - Transfer
      abis:
        - name: ERC20
          file: ./abis/ERC20.json
      eventHandlers:
        - event: Transfer(indexed address,indexed address,uint256)
          handler: handleTransfer
          receipt: true
      file: ./src/mapping.go
templates:
  - kind: ethereum
    name: Pair
    network: mainnet
    source:
      abi: Pair
    mapping:
      kind: ethereum/events
      apiVersion: 0.0.7
      entities:
        - Swap
      abis:
        - name: Pair
          file: ./abis/Pair.json
      eventHandlers:
        - event: Swap(indexed address,uint256,uint256)
          handler: handleSwap
      file: ./src/pair.go
`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(sampleManifest))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m.SpecVersion != "0.0.5" {
		t.Fatalf("SpecVersion = %q, want 0.0.5", m.SpecVersion)
	}
	if m.Schema.File != "./schema.graphql" {
		t.Fatalf("Schema.File = %q", m.Schema.File)
	}
	if len(m.DataSources) != 1 {
		t.Fatalf("len(DataSources) = %d, want 1", len(m.DataSources))
	}
	ds := m.DataSources[0]
	if ds.Source.StartBlock != 4000000 {
		t.Fatalf("StartBlock = %d, want 4000000", ds.Source.StartBlock)
	}
	if len(ds.Mapping.EventHandlers) != 1 || !ds.Mapping.EventHandlers[0].Receipt {
		t.Fatalf("EventHandlers = %+v", ds.Mapping.EventHandlers)
	}
	if len(m.Templates) != 1 || m.Templates[0].Name != "Pair" {
		t.Fatalf("Templates = %+v", m.Templates)
	}
}

func TestParseRejectsNoDataSources(t *testing.T) {
	_, err := Parse([]byte(`
specVersion: 0.0.5
schema:
  file: ./schema.graphql
dataSources: []
`))
	if !errors.Is(err, ErrNoDataSources) {
		t.Fatalf("err = %v, want ErrNoDataSources", err)
	}
}

func TestParseRejectsUnsupportedAPIVersion(t *testing.T) {
	_, err := Parse([]byte(`
specVersion: 0.0.5
schema:
  file: ./schema.graphql
dataSources:
  - kind: ethereum
    name: Token
    network: mainnet
    source:
      address: "0x0"
      abi: ERC20
    mapping:
      kind: ethereum/events
      apiVersion: 0.0.5
      entities: [Transfer]
      abis:
        - name: ERC20
          file: ./abis/ERC20.json
      file: ./src/mapping.go
`))
	if !errors.Is(err, ErrUnsupportedAPIVersion) {
		t.Fatalf("err = %v, want ErrUnsupportedAPIVersion", err)
	}
}

func TestParseSchemaVersion(t *testing.T) {
	m, err := Parse([]byte(`
specVersion: 0.0.5
schema:
  file: ./schema.graphql
dataSources:
  - kind: ethereum
    name: Token
    network: mainnet
    source:
      address: "0x0"
      abi: ERC20
    mapping:
      kind: ethereum/events
      apiVersion: 0.0.7
      entities: [Transfer]
      schemaVersion: 3
      abis:
        - name: ERC20
          file: ./abis/ERC20.json
      file: ./src/mapping.go
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m.DataSources[0].Mapping.SchemaVersion != 3 {
		t.Fatalf("Mapping.SchemaVersion = %d, want 3", m.DataSources[0].Mapping.SchemaVersion)
	}
}

func TestParseSchemaVersionDefaultsToZero(t *testing.T) {
	m, err := Parse([]byte(sampleManifest))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m.DataSources[0].Mapping.SchemaVersion != 0 {
		t.Fatalf("Mapping.SchemaVersion = %d, want 0", m.DataSources[0].Mapping.SchemaVersion)
	}
}

func TestHandlerExports(t *testing.T) {
	m, err := Parse([]byte(sampleManifest))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := m.HandlerExports()
	want := []string{"handleTransfer", "handleSwap"}
	if len(got) != len(want) {
		t.Fatalf("HandlerExports = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("HandlerExports[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
