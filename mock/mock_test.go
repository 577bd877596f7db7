// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package mock

import (
	"testing"

	"github.com/yogurt-sh/yogurt"
)

func TestStoreRoundTrip(t *testing.T) {
	ctx := New()
	entity := yogurt.EncodeString(ctx.Heap, "Token")
	id := yogurt.EncodeString(ctx.Heap, "0xabc")
	data := yogurt.EncodeString(ctx.Heap, "payload").Raw()

	if got := ctx.StoreGet(entity, id); !got.IsNull() {
		t.Fatalf("StoreGet on empty store = %v, want null", got)
	}

	ctx.StoreSet(entity, id, yogurt.Ptr(data))
	got := ctx.StoreGet(entity, id)
	if got.IsNull() {
		t.Fatalf("StoreGet after StoreSet = null, want %v", data)
	}
	if yogurt.DecodeString(ctx.Heap, got) != "payload" {
		t.Fatalf("StoreGet decoded %q, want %q", yogurt.DecodeString(ctx.Heap, got), "payload")
	}

	ctx.StoreRemove(entity, id)
	if got := ctx.StoreGet(entity, id); !got.IsNull() {
		t.Fatalf("StoreGet after StoreRemove = %v, want null", got)
	}
}

func TestBigIntArithmetic(t *testing.T) {
	ctx := New()
	a := ctx.NewBigInt(7)
	b := ctx.NewBigInt(3)

	if got := ctx.BigIntToString(ctx.BigIntPlus(a, b)); yogurt.DecodeString(ctx.Heap, got) != "10" {
		t.Errorf("7+3 = %s, want 10", yogurt.DecodeString(ctx.Heap, got))
	}
	if got := ctx.BigIntToString(ctx.BigIntTimes(a, b)); yogurt.DecodeString(ctx.Heap, got) != "21" {
		t.Errorf("7*3 = %s, want 21", yogurt.DecodeString(ctx.Heap, got))
	}
	if got := ctx.BigIntToString(ctx.BigIntMod(a, b)); yogurt.DecodeString(ctx.Heap, got) != "1" {
		t.Errorf("7%%3 = %s, want 1", yogurt.DecodeString(ctx.Heap, got))
	}
}

func TestBigDecimalEquals(t *testing.T) {
	ctx := New()
	a := ctx.NewBigDecimal(1.5)
	b := ctx.NewBigDecimal(1.5)
	c := ctx.NewBigDecimal(2.5)

	if !ctx.BigDecimalEquals(a, b) {
		t.Error("1.5 == 1.5 should be true")
	}
	if ctx.BigDecimalEquals(a, c) {
		t.Error("1.5 == 2.5 should be false")
	}
}

func TestKeccak256(t *testing.T) {
	ctx := New()
	data := yogurt.EncodeBytes(ctx.Heap, []byte("hello"))
	digest := yogurt.DecodeBytes(ctx.Heap, ctx.Keccak256(data))
	if len(digest) != 32 {
		t.Fatalf("Keccak256 digest length = %d, want 32", len(digest))
	}
}

func TestIPFSCatSeeded(t *testing.T) {
	ctx := New()
	ctx.PutIPFS("Qm123", []byte("fixture content"))

	path := yogurt.EncodeString(ctx.Heap, "Qm123")
	got := ctx.IPFSCat(path)
	if got.IsNull() {
		t.Fatal("IPFSCat for seeded path returned null")
	}
	if string(yogurt.DecodeBytes(ctx.Heap, got)) != "fixture content" {
		t.Errorf("IPFSCat content = %q", yogurt.DecodeBytes(ctx.Heap, got))
	}

	missing := yogurt.EncodeString(ctx.Heap, "QmMissing")
	if got := ctx.IPFSCat(missing); !got.IsNull() {
		t.Error("IPFSCat for unseeded path should return null")
	}
}

func TestENSNameByHash(t *testing.T) {
	ctx := New()
	var hash [32]byte
	hash[0] = 0xAB
	ctx.PutENS(hash, "vitalik.eth")

	p := yogurt.EncodeBytes(ctx.Heap, hash[:])
	got := ctx.ENSNameByHash(p)
	if yogurt.DecodeString(ctx.Heap, got) != "vitalik.eth" {
		t.Errorf("ENSNameByHash = %q, want vitalik.eth", yogurt.DecodeString(ctx.Heap, got))
	}

	hash[0] = 0xFF
	unseen := yogurt.EncodeBytes(ctx.Heap, hash[:])
	if got := ctx.ENSNameByHash(unseen); !got.IsNull() {
		t.Error("ENSNameByHash for unseeded hash should return null")
	}
}

func TestLogRecordsEntries(t *testing.T) {
	ctx := New()
	msg := yogurt.EncodeString(ctx.Heap, "handler started")
	ctx.Log(int32(yogurt.LogInfo), msg)

	if len(ctx.Logs) != 1 {
		t.Fatalf("Logs has %d entries, want 1", len(ctx.Logs))
	}
	if ctx.Logs[0].Message != "handler started" || ctx.Logs[0].Severity != yogurt.LogInfo {
		t.Errorf("Logs[0] = %+v, want {LogInfo, handler started}", ctx.Logs[0])
	}
}

func TestDataSourceContext(t *testing.T) {
	ctx := New()
	if _, ok := yogurt.DataSourceContext(ctx.Heap); ok {
		t.Error("DataSourceContext before WithDataSourceContext should report absent")
	}

	want := yogurt.TypedMap{{Key: "owner", Value: yogurt.NewStringValue("alice")}}
	ctx.WithDataSourceContext(want)

	got, ok := yogurt.DataSourceContext(ctx.Heap)
	if !ok {
		t.Fatal("DataSourceContext after WithDataSourceContext should report present")
	}
	v, ok := got.Get("owner")
	if !ok || v.Str != "alice" {
		t.Errorf("DataSourceContext roundtrip got %+v, want owner=alice", got)
	}
}
