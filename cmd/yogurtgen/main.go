// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command yogurtgen generates wire codec glue for entity and event types
// declared in a mapping package, the domain analogue of cmd/sszgen: instead
// of walking ssz struct tags, it walks //yogurt:entity and //yogurt:event
// doc comments and emits the corresponding Encodable/Decodable/ParamsDecoder
// implementations.
package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	dir := flag.String("dir", ".", "package directory to scan for annotated types")
	output := flag.String("output", "yogurt_generated.go", "generated file name, written inside -dir")
	schemaVersion := flag.Uint("schema-version", 0, "manifest-declared schema version to gate event field presence against")
	flag.Parse()

	if err := run(*dir, *output, uint32(*schemaVersion)); err != nil {
		fmt.Fprintln(os.Stderr, "yogurtgen:", err)
		os.Exit(1)
	}
}

func run(dir, output string, schemaVersion uint32) error {
	pkg, decls, err := loadAnnotated(dir)
	if err != nil {
		return err
	}
	if len(decls) == 0 {
		fmt.Fprintln(os.Stderr, "yogurtgen: no //yogurt:entity or //yogurt:event types found")
		return nil
	}

	code, err := generate(pkg, decls, schemaVersion)
	if err != nil {
		return err
	}

	outPath := dir + string(os.PathSeparator) + output
	if err := os.WriteFile(outPath, code, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	fmt.Fprintf(os.Stdout, "yogurtgen: wrote %s (%d type(s))\n", outPath, len(decls))
	return nil
}
