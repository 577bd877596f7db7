// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package validate checks a compiled WASM module against the module
// contract (§4.5): the required export surface, an import surface confined
// to the "env" namespace, and handler export coverage against a manifest's
// declared handlers.
package validate

import (
	"context"
	"encoding/binary"
	"fmt"
	"sort"
	"strings"

	"github.com/prysmaticlabs/go-bitfield"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

// RequiredExports are the exports every compliant module must provide,
// independent of which handlers it registers.
var RequiredExports = []string{"memory", "__new", "__pin", "__unpin", "__collect", "abort"}

// Report is the outcome of validating one module.
type Report struct {
	// MissingExports lists required exports (§4.5) the module does not provide.
	MissingExports []string
	// ForeignImports lists imports whose module name is not "env" (WASI
	// imports are the usual offender: a module linked against a WASI libc
	// will not run under a host that only links "env").
	ForeignImports []string
	// HandlerExports lists every export that is neither a required export
	// nor a "__"-prefixed runtime symbol - candidate handler exports.
	HandlerExports []string
	// Coverage has one bit per entry of the wantHandlers slice passed to
	// Module, set when that handler name is actually exported.
	Coverage bitfield.Bitlist
	// HasStartFunction reports whether the module's binary declares a wasm
	// start section (§4.5 forbids one: the host, not the module, decides
	// when code runs).
	HasStartFunction bool
	// MemoryCount is the number of imported memories plus the number of
	// exported memories. A memory that is defined but not exported is not
	// counted, and an imported memory that is also exported counts twice.
	// §4.5 requires exactly one.
	MemoryCount int
}

// OK reports whether the module satisfies the required export surface,
// imports nothing outside "env", declares no start function, and has a
// MemoryCount of exactly one (§4.5). Export signatures are not checked.
func (r *Report) OK() bool {
	return len(r.MissingExports) == 0 && len(r.ForeignImports) == 0 &&
		!r.HasStartFunction && r.MemoryCount == 1
}

// MissingHandlers returns the subset of wantHandlers absent from Coverage.
func (r *Report) MissingHandlers(wantHandlers []string) []string {
	var missing []string
	for i, name := range wantHandlers {
		if uint64(i) >= r.Coverage.Len() || !r.Coverage.BitAt(uint64(i)) {
			missing = append(missing, name)
		}
	}
	return missing
}

// Module compiles wasmBytes, stubs every "env" import with a no-op
// placeholder so the module can be instantiated without a real host, then
// inspects the resulting api.Module's export and import tables. This is the
// only place in the toolchain that touches a real wasm runtime; everywhere
// else treats wasmBytes as an opaque build artifact.
func Module(ctx context.Context, wasmBytes []byte, wantHandlers []string) (*Report, error) {
	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	compiled, err := rt.CompileModule(ctx, wasmBytes)
	if err != nil {
		return nil, fmt.Errorf("validate: compile module: %w", err)
	}
	defer compiled.Close(ctx)

	hasStart, err := hasStartSection(wasmBytes)
	if err != nil {
		return nil, fmt.Errorf("validate: scan sections: %w", err)
	}

	report := &Report{
		HasStartFunction: hasStart,
		MemoryCount:      len(compiled.ImportedMemories()) + len(compiled.ExportedMemories()),
	}

	envBuilder := rt.NewHostModuleBuilder("env")
	for _, fn := range compiled.ImportedFunctions() {
		modName, name, _ := fn.Import()
		if modName != "env" {
			report.ForeignImports = append(report.ForeignImports, modName+"."+name)
			continue
		}
		envBuilder.NewFunctionBuilder().
			WithGoModuleFunction(stubFunction(fn.ResultTypes()), fn.ParamTypes(), fn.ResultTypes()).
			Export(name)
	}
	sort.Strings(report.ForeignImports)

	if _, err := envBuilder.Instantiate(ctx); err != nil {
		return nil, fmt.Errorf("validate: build stub host: %w", err)
	}

	mod, err := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName("subgraph"))
	if err != nil {
		return nil, fmt.Errorf("validate: instantiate module: %w", err)
	}
	defer mod.Close(ctx)

	exported := compiled.ExportedFunctions()
	required := make(map[string]bool, len(RequiredExports))
	for _, name := range RequiredExports {
		required[name] = true
		if name == "memory" {
			if mod.Memory() == nil {
				report.MissingExports = append(report.MissingExports, name)
			}
			continue
		}
		if _, ok := exported[name]; !ok {
			report.MissingExports = append(report.MissingExports, name)
		}
	}

	for name := range exported {
		if required[name] || strings.HasPrefix(name, "__") {
			continue
		}
		report.HandlerExports = append(report.HandlerExports, name)
	}
	sort.Strings(report.HandlerExports)

	coverage := bitfield.NewBitlist(uint64(len(wantHandlers)))
	for i, name := range wantHandlers {
		if _, ok := exported[name]; ok {
			coverage.SetBitAt(uint64(i), true)
		}
	}
	report.Coverage = coverage

	return report, nil
}

// wasmHeaderSize is the magic number plus version fields every wasm binary
// opens with, before its section stream begins.
const wasmHeaderSize = 8

// wasmStartSectionID is the core wasm binary format's section id for the
// start section (id 8 in the section-order table: type, import, function,
// table, memory, global, export, start, element, code, data).
const wasmStartSectionID = 8

// hasStartSection walks wasmBytes' section headers looking for a start
// section. wazero's public CompiledModule API exposes imports, exports and
// memories but not start-section presence, so this inspects the raw binary
// directly - the same level this package already reads wasmBytes at.
func hasStartSection(wasmBytes []byte) (bool, error) {
	if len(wasmBytes) < wasmHeaderSize {
		return false, fmt.Errorf("validate: module shorter than wasm header")
	}
	b := wasmBytes[wasmHeaderSize:]
	for len(b) > 0 {
		id := b[0]
		b = b[1:]
		size, n := binary.Uvarint(b)
		if n <= 0 {
			return false, fmt.Errorf("validate: malformed section size")
		}
		b = b[n:]
		if uint64(len(b)) < size {
			return false, fmt.Errorf("validate: section size exceeds module length")
		}
		if id == wasmStartSectionID {
			return true, nil
		}
		b = b[size:]
	}
	return false, nil
}

// stubFunction returns a host function body that ignores its arguments and
// pushes zero for every declared result, satisfying wazero's signature
// check without modelling any real host behaviour.
func stubFunction(results []api.ValueType) api.GoModuleFunction {
	n := len(results)
	return api.GoModuleFunc(func(_ context.Context, _ api.Module, stack []uint64) {
		for i := 0; i < n; i++ {
			stack[i] = 0
		}
	})
}
