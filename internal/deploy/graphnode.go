// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package deploy

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/rpc"
)

// DefaultGraphNodeURL is graph-node's standard admin API address.
const DefaultGraphNodeURL = "http://localhost:8020"

// GraphNodeClient talks to graph-node's admin JSON-RPC API. Unlike a chain
// JSON-RPC endpoint, graph-node's admin methods take a single named-field
// params object rather than a positional argument list; CallContext still
// serves here because it only cares that args marshal to a JSON array, and
// a one-element array holding that object is exactly what graph-node
// expects to unwrap.
type GraphNodeClient struct {
	rpc *rpc.Client
}

// DialGraphNode connects to a graph-node admin endpoint. An empty url falls
// back to DefaultGraphNodeURL.
func DialGraphNode(ctx context.Context, url string) (*GraphNodeClient, error) {
	if url == "" {
		url = DefaultGraphNodeURL
	}
	c, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("deploy: dial graph-node: %w", err)
	}
	return &GraphNodeClient{rpc: c}, nil
}

// Close releases the underlying connection.
func (g *GraphNodeClient) Close() { g.rpc.Close() }

// Create registers a subgraph name without deploying any version. An error
// from graph-node whose text contains "already exists" is treated as
// success, since the CLI's deploy flow always calls Create before Deploy.
func (g *GraphNodeClient) Create(ctx context.Context, name string) error {
	var result any
	err := g.rpc.CallContext(ctx, &result, "subgraph_create", map[string]any{"name": name})
	if err != nil && !strings.Contains(err.Error(), "already exists") {
		return fmt.Errorf("deploy: subgraph_create: %w", err)
	}
	return nil
}

// Deploy points name at the manifest stored under ipfsHash. versionLabel may
// be empty.
func (g *GraphNodeClient) Deploy(ctx context.Context, name, ipfsHash, versionLabel string) error {
	params := map[string]any{"name": name, "ipfs_hash": ipfsHash}
	if versionLabel != "" {
		params["version_label"] = versionLabel
	}
	var result any
	if err := g.rpc.CallContext(ctx, &result, "subgraph_deploy", params); err != nil {
		return fmt.Errorf("deploy: subgraph_deploy: %w", err)
	}
	return nil
}

// Remove undeploys a subgraph by name.
func (g *GraphNodeClient) Remove(ctx context.Context, name string) error {
	var result any
	if err := g.rpc.CallContext(ctx, &result, "subgraph_remove", map[string]any{"name": name}); err != nil {
		return fmt.Errorf("deploy: subgraph_remove: %w", err)
	}
	return nil
}
