// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yogurt-sh/yogurt/internal/manifest"
	"github.com/yogurt-sh/yogurt/internal/validate"
)

func newValidateCmd() *cobra.Command {
	var manifestPath string
	cmd := &cobra.Command{
		Use:   "validate [wasm-file]",
		Short: "Validate a compiled module's export and import surface",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wasmPath := builtModulePath
			if len(args) > 0 {
				wasmPath = args[0]
			}
			return runValidate(cmd, wasmPath, manifestPath)
		},
	}
	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "subgraph.yaml", "manifest to read expected handler exports from")
	return cmd
}

func runValidate(cmd *cobra.Command, wasmPath, manifestPath string) error {
	wasmBytes, err := os.ReadFile(wasmPath)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	var wantHandlers []string
	if m, err := manifest.Load(manifestPath); err == nil {
		wantHandlers = m.HandlerExports()
	} else {
		log.Warnf("validate: could not load %s (%v), skipping handler coverage check", manifestPath, err)
	}

	report, err := validate.Module(cmd.Context(), wasmBytes, wantHandlers)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	for _, name := range validate.RequiredExports {
		missing := false
		for _, m := range report.MissingExports {
			if m == name {
				missing = true
				break
			}
		}
		if missing {
			fmt.Printf("  x %s (missing)\n", name)
		} else {
			fmt.Printf("  + %s\n", name)
		}
	}

	fmt.Println()
	fmt.Println("  Handler exports:")
	if len(report.HandlerExports) == 0 {
		fmt.Println("    (none found)")
	}
	for _, name := range report.HandlerExports {
		fmt.Printf("    + %s\n", name)
	}

	if missing := report.MissingHandlers(wantHandlers); len(missing) > 0 {
		fmt.Println()
		fmt.Printf("  Manifest declares handlers not exported by the module: %v\n", missing)
	}

	if len(report.ForeignImports) > 0 {
		fmt.Println()
		fmt.Printf("  Imports outside \"env\": %v\n", report.ForeignImports)
	}

	fmt.Println()
	fmt.Printf("  Memory count: %d\n", report.MemoryCount)
	if report.HasStartFunction {
		fmt.Println("  x declares a start function (forbidden)")
	}

	fmt.Println()
	if !report.OK() {
		return fmt.Errorf("validate: module does not satisfy the module contract")
	}
	log.Info("validate: passed")
	return nil
}
