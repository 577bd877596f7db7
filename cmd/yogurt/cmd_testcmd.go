// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
)

func newTestCmd() *cobra.Command {
	var wasm bool
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Run mapping handler tests",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTest(cmd, wasm)
		},
	}
	cmd.Flags().BoolVar(&wasm, "wasm", false, "compile and run tests under the tinygo wasm target instead of natively")
	return cmd
}

func runTest(cmd *cobra.Command, wasm bool) error {
	if wasm {
		log.Info("test: running under tinygo wasm target")
		tc := exec.CommandContext(cmd.Context(), "tinygo", "test", "-target", "wasm", "./...")
		tc.Stdout = os.Stdout
		tc.Stderr = os.Stderr
		if err := tc.Run(); err != nil {
			return fmt.Errorf("test: tinygo test: %w", err)
		}
		log.Info("test: passed")
		return nil
	}

	log.Info("test: running natively")
	gc := exec.CommandContext(cmd.Context(), "go", "test", "./...")
	gc.Stdout = os.Stdout
	gc.Stderr = os.Stderr
	if err := gc.Run(); err != nil {
		return fmt.Errorf("test: go test: %w", err)
	}
	log.Info("test: passed")
	return nil
}
