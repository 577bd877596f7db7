// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"
)

const (
	entityMarker = "yogurt:entity"
	eventMarker  = "yogurt:event"
)

// annotatedType is one //yogurt:entity or //yogurt:event struct found in the
// scanned package.
type annotatedType struct {
	kind   string // "entity" or "event"
	name   string
	named  *types.Named
	strct  *types.Struct
}

// loadAnnotated loads the Go package rooted at dir and returns every struct
// type whose doc comment carries a yogurt:entity or yogurt:event marker, in
// declaration order.
func loadAnnotated(dir string) (*types.Package, []*annotatedType, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
			packages.NeedTypes | packages.NeedTypesInfo,
		Dir: dir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, nil, fmt.Errorf("load package at %s: %w", dir, err)
	}
	if len(pkgs) == 0 {
		return nil, nil, fmt.Errorf("no package found at %s", dir)
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, nil, fmt.Errorf("load package at %s: %v", dir, pkg.Errors[0])
	}

	var decls []*annotatedType
	for _, file := range pkg.Syntax {
		for _, d := range file.Decls {
			gd, ok := d.(*ast.GenDecl)
			if !ok {
				continue
			}
			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				marker, ok := markerOf(gd, ts)
				if !ok {
					continue
				}
				obj := pkg.TypesInfo.Defs[ts.Name]
				if obj == nil {
					continue
				}
				tn, ok := obj.(*types.TypeName)
				if !ok {
					continue
				}
				named, ok := tn.Type().(*types.Named)
				if !ok {
					continue
				}
				strct, ok := named.Underlying().(*types.Struct)
				if !ok {
					return nil, nil, fmt.Errorf("%s: %s is annotated but is not a struct", marker, ts.Name.Name)
				}
				decls = append(decls, &annotatedType{
					kind:  marker,
					name:  ts.Name.Name,
					named: named,
					strct: strct,
				})
			}
		}
	}
	return pkg.Types, decls, nil
}

// markerOf returns the annotation kind ("entity"/"event") carried by a type
// declaration's doc comment, checking both the enclosing GenDecl (the usual
// place for an ungrouped `type X struct{...}`) and the TypeSpec itself (for
// grouped `type (...)` blocks where each spec can carry its own doc).
func markerOf(gd *ast.GenDecl, ts *ast.TypeSpec) (string, bool) {
	for _, doc := range []*ast.CommentGroup{ts.Doc, gd.Doc} {
		if doc == nil {
			continue
		}
		text := doc.Text()
		if strings.Contains(text, entityMarker) {
			return "entity", true
		}
		if strings.Contains(text, eventMarker) {
			return "event", true
		}
	}
	return "", false
}
