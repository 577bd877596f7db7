// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const initManifestTemplate = `specVersion: 0.0.5
description: %s
schema:
  file: ./schema.graphql
dataSources: []
`

const initSchemaTemplate = `# Define your entity types here.
`

const initMappingTemplate = `package mapping

// Handler functions registered here become the exported wasm entry points
// dataSources.mapping.eventHandlers/callHandlers/blockHandlers in
// subgraph.yaml name.
`

func newInitCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialise a new subgraph project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			if name == "" {
				abs, err := filepath.Abs(dir)
				if err != nil {
					return err
				}
				name = filepath.Base(abs)
			}
			return scaffold(dir, name)
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "project name (defaults to the directory name)")
	return cmd
}

func scaffold(dir, name string) error {
	if err := os.MkdirAll(filepath.Join(dir, "src"), 0o755); err != nil {
		return fmt.Errorf("init: %w", err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "abis"), 0o755); err != nil {
		return fmt.Errorf("init: %w", err)
	}

	files := map[string]string{
		"subgraph.yaml":     fmt.Sprintf(initManifestTemplate, name),
		"schema.graphql":    initSchemaTemplate,
		"src/mapping.go":    initMappingTemplate,
	}
	for rel, content := range files {
		path := filepath.Join(dir, rel)
		if _, err := os.Stat(path); err == nil {
			log.Warnf("init: %s already exists, skipping", path)
			continue
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("init: write %s: %w", path, err)
		}
	}
	log.Infof("init: scaffolded %s in %s", name, dir)
	return nil
}
