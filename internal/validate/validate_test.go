// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package validate

import (
	"context"
	"testing"

	"github.com/prysmaticlabs/go-bitfield"
)

// minimalModule is a hand-assembled WASM binary exporting a zero-page
// memory and one nullary function "dummy". It deliberately satisfies none
// of RequiredExports except "memory", so Module's missing-export detection
// has something real to find.
//
// Layout: magic+version, a func()->() type, a function section referencing
// it, a zero-page-minimum memory section, an export section naming "memory"
// and "dummy", and a code section with an empty body (`end` only).
var minimalModule = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00, // magic, version
	0x01, 0x04, 0x01, 0x60, 0x00, 0x00, // type section: func() -> ()
	0x03, 0x02, 0x01, 0x00, // function section: 1 func, type 0
	0x05, 0x03, 0x01, 0x00, 0x00, // memory section: 1 memory, min 0
	0x07, 0x12, 0x02, // export section: 2 exports
	0x06, 'm', 'e', 'm', 'o', 'r', 'y', 0x02, 0x00, // "memory" -> mem 0
	0x05, 'd', 'u', 'm', 'm', 'y', 0x00, 0x00, // "dummy" -> func 0
	0x0a, 0x04, 0x01, 0x02, 0x00, 0x0b, // code section: 1 body, no locals, end
}

func TestModuleReportsMissingRequiredExports(t *testing.T) {
	report, err := Module(context.Background(), minimalModule, nil)
	if err != nil {
		t.Fatalf("Module: %v", err)
	}
	if report.OK() {
		t.Fatalf("report.OK() = true, want false (memory is the only required export present)")
	}
	want := map[string]bool{"__new": true, "__pin": true, "__unpin": true, "__collect": true, "abort": true}
	for _, name := range report.MissingExports {
		if !want[name] {
			t.Fatalf("unexpected missing export %q", name)
		}
		delete(want, name)
	}
	if len(want) != 0 {
		t.Fatalf("expected exports not reported missing: %v", want)
	}
	if len(report.ForeignImports) != 0 {
		t.Fatalf("ForeignImports = %v, want none", report.ForeignImports)
	}
	if len(report.HandlerExports) != 1 || report.HandlerExports[0] != "dummy" {
		t.Fatalf("HandlerExports = %v, want [dummy]", report.HandlerExports)
	}
	if report.HasStartFunction {
		t.Fatalf("HasStartFunction = true, want false (minimalModule has no start section)")
	}
	if report.MemoryCount != 1 {
		t.Fatalf("MemoryCount = %d, want 1", report.MemoryCount)
	}
}

// moduleWithStart is minimalModule with a start section (id 8, referencing
// function index 0) spliced in after the export section and before the code
// section, per the wasm binary format's fixed section ordering.
var moduleWithStart = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00, // magic, version
	0x01, 0x04, 0x01, 0x60, 0x00, 0x00, // type section: func() -> ()
	0x03, 0x02, 0x01, 0x00, // function section: 1 func, type 0
	0x05, 0x03, 0x01, 0x00, 0x00, // memory section: 1 memory, min 0
	0x07, 0x12, 0x02, // export section: 2 exports
	0x06, 'm', 'e', 'm', 'o', 'r', 'y', 0x02, 0x00, // "memory" -> mem 0
	0x05, 'd', 'u', 'm', 'm', 'y', 0x00, 0x00, // "dummy" -> func 0
	0x08, 0x01, 0x00, // start section: func 0
	0x0a, 0x04, 0x01, 0x02, 0x00, 0x0b, // code section: 1 body, no locals, end
}

func TestModuleDetectsStartSection(t *testing.T) {
	report, err := Module(context.Background(), moduleWithStart, nil)
	if err != nil {
		t.Fatalf("Module: %v", err)
	}
	if !report.HasStartFunction {
		t.Fatalf("HasStartFunction = false, want true (moduleWithStart declares a start section)")
	}
	if report.OK() {
		t.Fatalf("report.OK() = true, want false (a start function must fail validation)")
	}
}

func TestMissingHandlers(t *testing.T) {
	r := &Report{Coverage: bitfield.NewBitlist(3)}
	r.Coverage.SetBitAt(1, true)
	got := r.MissingHandlers([]string{"handleA", "handleB", "handleC"})
	want := []string{"handleA", "handleC"}
	if len(got) != len(want) {
		t.Fatalf("MissingHandlers = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("MissingHandlers[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
