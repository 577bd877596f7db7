// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package deploy

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// knownCID is a real, previously-published CIDv0 used only as a fixture
// value; the test server below never actually pins anything under it.
const knownCID = "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"

func TestIPFSClientAddBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v0/add" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("ParseMultipartForm: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(addResponse{Hash: knownCID})
	}))
	defer srv.Close()

	client := NewIPFSClient(srv.URL)
	id, err := client.AddString(context.Background(), "subgraph.yaml", "specVersion: 0.0.5\n")
	if err != nil {
		t.Fatalf("AddString: %v", err)
	}
	if id.String() != knownCID {
		t.Fatalf("cid = %s, want %s", id.String(), knownCID)
	}
}

type jsonrpcRequest struct {
	Method string            `json:"method"`
	Params []map[string]any  `json:"params"`
	ID     json.RawMessage   `json:"id"`
}

func newGraphNodeStub(t *testing.T, onMethod func(method string, params map[string]any) (any, string)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req jsonrpcRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode rpc request: %v", err)
		}
		var params map[string]any
		if len(req.Params) > 0 {
			params = req.Params[0]
		}
		result, rpcErr := onMethod(req.Method, params)

		resp := map[string]any{"jsonrpc": "2.0", "id": json.RawMessage(req.ID)}
		if rpcErr != "" {
			resp["error"] = map[string]any{"code": -32000, "message": rpcErr}
		} else {
			resp["result"] = result
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestGraphNodeClientDeployFlow(t *testing.T) {
	var created, deployed bool

	srv := newGraphNodeStub(t, func(method string, params map[string]any) (any, string) {
		switch method {
		case "subgraph_create":
			created = true
			if params["name"] != "acme/token" {
				t.Fatalf("create name = %v", params["name"])
			}
			return "ok", ""
		case "subgraph_deploy":
			deployed = true
			if params["ipfs_hash"] != knownCID {
				t.Fatalf("deploy ipfs_hash = %v", params["ipfs_hash"])
			}
			return "ok", ""
		default:
			t.Fatalf("unexpected method %s", method)
			return nil, ""
		}
	})
	defer srv.Close()

	ctx := context.Background()
	client, err := DialGraphNode(ctx, srv.URL)
	if err != nil {
		t.Fatalf("DialGraphNode: %v", err)
	}
	defer client.Close()

	if err := client.Create(ctx, "acme/token"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := client.Deploy(ctx, "acme/token", knownCID, "v1"); err != nil {
		t.Fatalf("Deploy: %v", err)
	}
	if !created || !deployed {
		t.Fatalf("created=%v deployed=%v, want both true", created, deployed)
	}
}

func TestGraphNodeClientCreateToleratesAlreadyExists(t *testing.T) {
	srv := newGraphNodeStub(t, func(method string, _ map[string]any) (any, string) {
		if method != "subgraph_create" {
			t.Fatalf("unexpected method %s", method)
		}
		return nil, "subgraph already exists"
	})
	defer srv.Close()

	ctx := context.Background()
	client, err := DialGraphNode(ctx, srv.URL)
	if err != nil {
		t.Fatalf("DialGraphNode: %v", err)
	}
	defer client.Close()

	if err := client.Create(ctx, "acme/token"); err != nil {
		t.Fatalf("Create: %v, want nil (already-exists is tolerated)", err)
	}
}
