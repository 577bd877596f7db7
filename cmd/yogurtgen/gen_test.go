// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"go/token"
	"go/types"
	"testing"
)

func yogurtNamed(name string) *types.Named {
	pkg := types.NewPackage(yogurtPkgPath, "yogurt")
	tn := types.NewTypeName(token.NoPos, pkg, name, nil)
	return types.NewNamed(tn, types.Typ[types.Uint32], nil)
}

func TestPlanEntityField(t *testing.T) {
	cases := []struct {
		name string
		typ  types.Type
		tag  fieldTag
		want entityFieldPlan
	}{
		{"Owner", types.Typ[types.String], fieldTag{key: "owner"}, entityFieldPlan{GoName: "Owner", Key: "owner", Ctor: "yogurt.NewStringValue", Accessor: "Str"}},
		{"Active", types.Typ[types.Bool], fieldTag{key: "active"}, entityFieldPlan{GoName: "Active", Key: "active", Ctor: "yogurt.NewBoolValue", Accessor: "Bool"}},
		{"Balance", yogurtNamed("Ptr"), fieldTag{key: "balance"}, entityFieldPlan{GoName: "Balance", Key: "balance", Ctor: "yogurt.NewBigIntValue", Accessor: "BigInt"}},
		{"Price", yogurtNamed("Ptr"), fieldTag{key: "price", variant: "bigdecimal"}, entityFieldPlan{GoName: "Price", Key: "price", Ctor: "yogurt.NewBigDecimalValue", Accessor: "BigDecimal"}},
	}
	for _, c := range cases {
		f := types.NewVar(token.NoPos, nil, c.name, c.typ)
		got, err := planEntityField(f, c.tag)
		if err != nil {
			t.Fatalf("planEntityField(%s): %v", c.name, err)
		}
		if got != c.want {
			t.Errorf("planEntityField(%s) = %+v, want %+v", c.name, got, c.want)
		}
	}
}

func TestPlanEntityFieldRejectsUnsupportedType(t *testing.T) {
	f := types.NewVar(token.NoPos, nil, "Weird", types.Typ[types.Complex128])
	if _, err := planEntityField(f, fieldTag{key: "weird"}); err == nil {
		t.Fatal("planEntityField: want error for unsupported type, got nil")
	}
}

func TestPlanEventField(t *testing.T) {
	cases := []struct {
		name string
		typ  types.Type
		tag  fieldTag
		want eventFieldPlan
	}{
		{"From", yogurtNamed("Address"), fieldTag{key: "from"}, eventFieldPlan{GoName: "From", Key: "from", Accessor: "Address"}},
		{"Value", yogurtNamed("Ptr"), fieldTag{key: "value"}, eventFieldPlan{GoName: "Value", Key: "value", Accessor: "Uint"}},
		{"Delta", yogurtNamed("Ptr"), fieldTag{key: "delta", variant: "int"}, eventFieldPlan{GoName: "Delta", Key: "delta", Accessor: "Int"}},
		{"Fee", yogurtNamed("Ptr"), fieldTag{key: "fee", since: 2, until: 5}, eventFieldPlan{GoName: "Fee", Key: "fee", Accessor: "Uint", Since: 2, Until: 5}},
	}
	for _, c := range cases {
		f := types.NewVar(token.NoPos, nil, c.name, c.typ)
		got, err := planEventField(f, c.tag)
		if err != nil {
			t.Fatalf("planEventField(%s): %v", c.name, err)
		}
		if got != c.want {
			t.Errorf("planEventField(%s) = %+v, want %+v", c.name, got, c.want)
		}
	}
}
