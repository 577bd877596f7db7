// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package manifest parses a subgraph manifest (subgraph.yaml): the
// declaration of data sources, their contract ABIs, and the event/call/block
// handlers a compiled module must export.
package manifest

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrNoDataSources is returned when a manifest declares zero data sources;
// a subgraph with nothing to index is always a configuration mistake.
var ErrNoDataSources = errors.New("manifest: no data sources declared")

// ErrUnsupportedAPIVersion is returned when a mapping's apiVersion is not one
// this toolchain's generated ABI bridge understands.
var ErrUnsupportedAPIVersion = errors.New("manifest: unsupported mapping apiVersion")

// SupportedAPIVersion is the mapping.apiVersion this toolchain emits code
// for. Manifests declaring any other value are rejected rather than silently
// miscompiled.
const SupportedAPIVersion = "0.0.7"

// Manifest is the top-level subgraph.yaml document.
type Manifest struct {
	SpecVersion string                `yaml:"specVersion" mapstructure:"specVersion"`
	Description string                `yaml:"description,omitempty" mapstructure:"description"`
	Repository  string                `yaml:"repository,omitempty" mapstructure:"repository"`
	Schema      Schema                `yaml:"schema" mapstructure:"schema"`
	DataSources []DataSource          `yaml:"dataSources" mapstructure:"dataSources"`
	Templates   []DataSourceTemplate  `yaml:"templates,omitempty" mapstructure:"templates"`
}

// Schema names the GraphQL schema file backing entity types.
type Schema struct {
	File string `yaml:"file" mapstructure:"file"`
}

// DataSource is one indexed contract.
type DataSource struct {
	Kind    string  `yaml:"kind" mapstructure:"kind"`
	Name    string  `yaml:"name" mapstructure:"name"`
	Network string  `yaml:"network" mapstructure:"network"`
	Source  Source  `yaml:"source" mapstructure:"source"`
	Mapping Mapping `yaml:"mapping" mapstructure:"mapping"`
}

// Source identifies the on-chain contract a data source is bound to.
type Source struct {
	Address    string `yaml:"address" mapstructure:"address"`
	ABI        string `yaml:"abi" mapstructure:"abi"`
	StartBlock uint64 `yaml:"startBlock,omitempty" mapstructure:"startBlock"`
}

// TemplateSource is like Source but without an address: a template is
// instantiated at runtime with an address supplied by dataSource.create.
type TemplateSource struct {
	ABI string `yaml:"abi" mapstructure:"abi"`
}

// DataSourceTemplate declares a data source kind that handlers may
// instantiate dynamically via dataSource.create.
type DataSourceTemplate struct {
	Kind    string         `yaml:"kind" mapstructure:"kind"`
	Name    string         `yaml:"name" mapstructure:"name"`
	Network string         `yaml:"network" mapstructure:"network"`
	Source  TemplateSource `yaml:"source" mapstructure:"source"`
	Mapping Mapping        `yaml:"mapping" mapstructure:"mapping"`
}

// Mapping configures the generated module that handles a data source's
// events, calls and blocks.
type Mapping struct {
	Kind         string         `yaml:"kind" mapstructure:"kind"`
	APIVersion   string         `yaml:"apiVersion" mapstructure:"apiVersion"`
	Language     string         `yaml:"language,omitempty" mapstructure:"language"`
	Entities     []string       `yaml:"entities" mapstructure:"entities"`
	ABIs         []AbiRef       `yaml:"abis" mapstructure:"abis"`
	EventHandlers []EventHandler `yaml:"eventHandlers,omitempty" mapstructure:"eventHandlers"`
	CallHandlers  []CallHandler  `yaml:"callHandlers,omitempty" mapstructure:"callHandlers"`
	BlockHandlers []BlockHandler `yaml:"blockHandlers,omitempty" mapstructure:"blockHandlers"`
	File         string         `yaml:"file" mapstructure:"file"`
	// SchemaVersion is the event-param schema revision this mapping was
	// written against (generics.go's FieldPresence gate). Zero means "the
	// original schema", matching a field tagged with no since=/until=.
	SchemaVersion uint32 `yaml:"schemaVersion,omitempty" mapstructure:"schemaVersion"`
}

// AbiRef names an ABI JSON file available to a mapping.
type AbiRef struct {
	Name string `yaml:"name" mapstructure:"name"`
	File string `yaml:"file" mapstructure:"file"`
}

// EventHandler binds a contract event signature to a generated handler
// export. Receipt requests that the transaction receipt be attached to the
// decoded Event record (§6's optional receipt field).
type EventHandler struct {
	Event   string `yaml:"event" mapstructure:"event"`
	Handler string `yaml:"handler" mapstructure:"handler"`
	Receipt bool   `yaml:"receipt,omitempty" mapstructure:"receipt"`
}

// CallHandler binds a contract function signature to a generated handler
// export invoked on every call to that function.
type CallHandler struct {
	Function string `yaml:"function" mapstructure:"function"`
	Handler  string `yaml:"handler" mapstructure:"handler"`
}

// BlockHandler binds a handler export to every block, or to blocks matching
// Filter when one is present.
type BlockHandler struct {
	Handler string       `yaml:"handler" mapstructure:"handler"`
	Filter  *BlockFilter `yaml:"filter,omitempty" mapstructure:"filter"`
}

// BlockFilter narrows which blocks a block handler fires for.
type BlockFilter struct {
	Kind string `yaml:"kind" mapstructure:"kind"`
}

// Parse decodes a subgraph.yaml document.
//
// Parsing goes through an intermediate map[string]any and mapstructure
// rather than yaml.v3's native struct tags alone, mirroring the loosely
// typed decode graph-node itself tolerates (unknown keys in mapping blocks
// are common in the wild and must not fail the whole manifest).
func Parse(data []byte) (*Manifest, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("manifest: decode yaml: %w", err)
	}

	var m Manifest
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &m,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return nil, fmt.Errorf("manifest: build decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("manifest: decode fields: %w", err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Load reads and parses a manifest from disk.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	return Parse(data)
}

// Validate checks invariants Parse cannot express through struct shape
// alone: at least one data source, and every mapping's apiVersion pinned to
// the version this toolchain's generated ABI bridge targets.
func (m *Manifest) Validate() error {
	if len(m.DataSources) == 0 {
		return ErrNoDataSources
	}
	for _, ds := range m.DataSources {
		if ds.Mapping.APIVersion != SupportedAPIVersion {
			return fmt.Errorf("%w: data source %q declares %q, want %q",
				ErrUnsupportedAPIVersion, ds.Name, ds.Mapping.APIVersion, SupportedAPIVersion)
		}
	}
	for _, tmpl := range m.Templates {
		if tmpl.Mapping.APIVersion != SupportedAPIVersion {
			return fmt.Errorf("%w: template %q declares %q, want %q",
				ErrUnsupportedAPIVersion, tmpl.Name, tmpl.Mapping.APIVersion, SupportedAPIVersion)
		}
	}
	return nil
}

// HandlerExports returns the export names every handler binding in the
// manifest requires the compiled module to provide, across all data sources
// and templates. Order is deterministic: data sources then templates, each
// in event/call/block order, matching declaration order within a mapping.
func (m *Manifest) HandlerExports() []string {
	var names []string
	collect := func(mp Mapping) {
		for _, h := range mp.EventHandlers {
			names = append(names, h.Handler)
		}
		for _, h := range mp.CallHandlers {
			names = append(names, h.Handler)
		}
		for _, h := range mp.BlockHandlers {
			names = append(names, h.Handler)
		}
	}
	for _, ds := range m.DataSources {
		collect(ds.Mapping)
	}
	for _, tmpl := range m.Templates {
		collect(tmpl.Mapping)
	}
	return names
}
