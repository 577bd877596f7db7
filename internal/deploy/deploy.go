// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package deploy

import (
	"context"
	"fmt"
)

// Deployer bundles the two clients a full deploy needs: upload the built
// manifest to IPFS, then point a graph-node instance at the resulting CID.
type Deployer struct {
	IPFS  *IPFSClient
	Node  *GraphNodeClient
}

// NewDeployer wires an IPFS client and graph-node client together.
func NewDeployer(ipfs *IPFSClient, node *GraphNodeClient) *Deployer {
	return &Deployer{IPFS: ipfs, Node: node}
}

// Deploy uploads manifestYAML to IPFS, creates name if it doesn't already
// exist, and deploys the uploaded CID as the named subgraph's next version.
// It does not rewrite the manifest's internal file references (schema, ABI,
// mapping WASM) to their own CIDs first - a full content-addressed subgraph
// bundle assembly is graph-node's own concern and out of scope here; this
// uploads the manifest as given, which is sufficient against a graph-node
// configured to resolve relative paths from the working directory.
func (d *Deployer) Deploy(ctx context.Context, name string, manifestYAML []byte, versionLabel string) (string, error) {
	id, err := d.IPFS.AddBytes(ctx, "subgraph.yaml", manifestYAML)
	if err != nil {
		return "", err
	}
	if err := d.Node.Create(ctx, name); err != nil {
		return "", err
	}
	if err := d.Node.Deploy(ctx, name, id.String(), versionLabel); err != nil {
		return "", fmt.Errorf("deploy: %w", err)
	}
	return id.String(), nil
}
