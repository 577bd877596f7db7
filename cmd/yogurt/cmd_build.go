// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yogurt-sh/yogurt/internal/buildcache"
)

const builtModulePath = "build/subgraph.wasm"
const buildCacheDir = "build/.cache"

func newBuildCmd() *cobra.Command {
	var release bool
	var noCache bool
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compile the subgraph mapping package to WASM",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, release, noCache)
		},
	}
	cmd.Flags().BoolVarP(&release, "release", "r", false, "build with optimisations (tinygo -opt=z)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "skip the build cache and always invoke tinygo")
	return cmd
}

func runBuild(cmd *cobra.Command, release, noCache bool) error {
	if err := os.MkdirAll("build", 0o755); err != nil {
		return fmt.Errorf("build: %w", err)
	}

	opt := "1"
	if release {
		opt = "z"
	}

	sources, err := filepath.Glob("src/*.go")
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}
	sources = append(sources, "subgraph.yaml")

	cache, err := buildcache.Open(buildCacheDir)
	if err != nil {
		return err
	}

	if !noCache {
		if key, err := buildcache.Key(opt, sources); err == nil {
			if cached, err := cache.Load(key); err == nil {
				if err := os.WriteFile(builtModulePath, cached, 0o644); err != nil {
					return fmt.Errorf("build: %w", err)
				}
				log.Infof("build: reused cached artifact for %s (opt=%s)", builtModulePath, opt)
				return nil
			}
		}
	}

	log.Infof("build: compiling (target=wasm-unknown, opt=%s)", opt)

	tc := exec.CommandContext(cmd.Context(), "tinygo", "build",
		"-target", "wasm-unknown",
		"-opt", opt,
		"-o", builtModulePath,
		"./src/mapping.go",
	)
	tc.Stdout = os.Stdout
	tc.Stderr = os.Stderr
	if err := tc.Run(); err != nil {
		return fmt.Errorf("build: tinygo build: %w", err)
	}

	wasmBytes, err := os.ReadFile(builtModulePath)
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}
	log.Infof("build: wrote %s (%.1f KB)", builtModulePath, float64(len(wasmBytes))/1024)

	if key, err := buildcache.Key(opt, sources); err == nil {
		if err := cache.Store(key, wasmBytes); err != nil {
			log.Warnf("build: could not populate build cache: %v", err)
		}
	}
	return nil
}
