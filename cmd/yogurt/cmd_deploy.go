// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yogurt-sh/yogurt/internal/deploy"
)

func newDeployCmd() *cobra.Command {
	var nodeURL, ipfsURL, version string
	cmd := &cobra.Command{
		Use:   "deploy <name>",
		Short: "Upload and deploy the subgraph to a graph-node instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeploy(cmd, args[0], nodeURL, ipfsURL, version)
		},
	}
	cmd.Flags().StringVar(&nodeURL, "node", "", "graph-node admin URL (default http://localhost:8020)")
	cmd.Flags().StringVar(&ipfsURL, "ipfs", "", "IPFS API URL (default http://localhost:5001)")
	cmd.Flags().StringVarP(&version, "version", "v", "", "version label for this deployment")
	return cmd
}

func runDeploy(cmd *cobra.Command, name, nodeURL, ipfsURL, version string) error {
	if _, err := os.Stat(builtModulePath); err != nil {
		return fmt.Errorf("deploy: no build found at %s, run `yogurt build` first", builtModulePath)
	}
	manifestYAML, err := os.ReadFile("subgraph.yaml")
	if err != nil {
		return fmt.Errorf("deploy: %w", err)
	}

	ctx := cmd.Context()
	node, err := deploy.DialGraphNode(ctx, nodeURL)
	if err != nil {
		return err
	}
	defer node.Close()

	d := deploy.NewDeployer(deploy.NewIPFSClient(ipfsURL), node)

	log.Infof("deploy: uploading manifest for %s", name)
	cid, err := d.Deploy(ctx, name, manifestYAML, version)
	if err != nil {
		return err
	}
	log.Infof("deploy: %s deployed at %s", name, cid)
	return nil
}
