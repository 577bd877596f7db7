// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yogurt-sh/yogurt/internal/manifest"
)

func newCodegenCmd() *cobra.Command {
	var manifestPath string
	cmd := &cobra.Command{
		Use:   "codegen",
		Short: "Generate wire codec glue from the subgraph manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCodegen(cmd.Context(), manifestPath)
		},
	}
	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "subgraph.yaml", "path to subgraph.yaml")
	return cmd
}

func runCodegen(ctx context.Context, manifestPath string) error {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}
	log.Infof("codegen: loaded %s, %d data source(s), %d template(s)",
		manifestPath, len(m.DataSources), len(m.Templates))

	dirs := mappingDirs(manifestPath, m)
	for dir, schemaVersion := range dirs {
		log.Infof("codegen: generating for %s (schema version %d)", dir, schemaVersion)
		if err := runYogurtgen(ctx, dir, schemaVersion); err != nil {
			return fmt.Errorf("codegen: %s: %w", dir, err)
		}
	}
	log.Info("codegen: done")
	return nil
}

// mappingDirs collects the distinct directories holding each data source's
// and template's mapping.file, relative to the manifest's own directory,
// mapped to that mapping's declared schema version. A dir appearing in more
// than one data source keeps the version from whichever declaration is
// visited first, since a single mapping package is generated once.
func mappingDirs(manifestPath string, m *manifest.Manifest) map[string]uint32 {
	base := filepath.Dir(manifestPath)
	dirs := map[string]uint32{}
	add := func(file string, schemaVersion uint32) {
		dir := filepath.Join(base, filepath.Dir(file))
		if _, ok := dirs[dir]; !ok {
			dirs[dir] = schemaVersion
		}
	}
	for _, ds := range m.DataSources {
		add(ds.Mapping.File, ds.Mapping.SchemaVersion)
	}
	for _, tmpl := range m.Templates {
		add(tmpl.Mapping.File, tmpl.Mapping.SchemaVersion)
	}
	return dirs
}

// runYogurtgen invokes the yogurtgen code generator as a subprocess against
// dir, the way the CLI shells out to `tinygo` and `go` for build and test - codegen's
// go/types package loading wants its own process, not a library call, since
// it needs to load dir as a fully resolvable Go package.
func runYogurtgen(ctx context.Context, dir string, schemaVersion uint32) error {
	cmd := exec.CommandContext(ctx, "go", "run", "github.com/yogurt-sh/yogurt/cmd/yogurtgen",
		"-dir", dir, "-schema-version", fmt.Sprint(schemaVersion))
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
