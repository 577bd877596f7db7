// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package deploy uploads a built subgraph to an IPFS node and registers it
// with a graph-node instance's admin JSON-RPC API.
package deploy

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ipfs/boxo/files"
	"github.com/ipfs/go-cid"
)

// DefaultIPFSURL is the standard local IPFS daemon API address.
const DefaultIPFSURL = "http://localhost:5001"

// IPFSClient uploads content to an IPFS node's HTTP API.
type IPFSClient struct {
	baseURL string
	http    *http.Client
}

// NewIPFSClient returns a client targeting baseURL. An empty baseURL falls
// back to DefaultIPFSURL.
func NewIPFSClient(baseURL string) *IPFSClient {
	if baseURL == "" {
		baseURL = DefaultIPFSURL
	}
	return &IPFSClient{baseURL: baseURL, http: http.DefaultClient}
}

type addResponse struct {
	Hash string `json:"Hash"`
}

// AddBytes uploads data under name via the IPFS add endpoint and returns the
// resulting content identifier.
func (c *IPFSClient) AddBytes(ctx context.Context, name string, data []byte) (cid.Cid, error) {
	node := files.NewBytesFile(data)
	dir := files.NewMapDirectory(map[string]files.Node{name: node})
	reader := files.NewMultiFileReader(dir, true)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v0/add", reader)
	if err != nil {
		return cid.Undef, fmt.Errorf("deploy: build ipfs request: %w", err)
	}
	req.Header.Set("Content-Type", "multipart/form-data; boundary="+reader.Boundary())

	resp, err := c.http.Do(req)
	if err != nil {
		return cid.Undef, fmt.Errorf("deploy: upload to ipfs: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return cid.Undef, fmt.Errorf("deploy: ipfs add returned status %d", resp.StatusCode)
	}

	var out addResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return cid.Undef, fmt.Errorf("deploy: decode ipfs response: %w", err)
	}

	id, err := cid.Decode(out.Hash)
	if err != nil {
		return cid.Undef, fmt.Errorf("deploy: parse cid %q: %w", out.Hash, err)
	}
	return id, nil
}

// AddString is a convenience wrapper around AddBytes for text content such
// as a subgraph manifest.
func (c *IPFSClient) AddString(ctx context.Context, name, content string) (cid.Cid, error) {
	return c.AddBytes(ctx, name, []byte(content))
}
