// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bytes"
	"fmt"
	"go/types"
	"sort"
	"text/template"
)

const yogurtPkgPath = "github.com/yogurt-sh/yogurt"

// genContext tracks which import paths the generated file needs, the same
// role the teacher's genContext plays for sszgen's output: callers register
// a path once per code snippet that needs it, and header() renders a single
// dedup'd import block regardless of how many snippets asked for it.
type genContext struct {
	pkg     *types.Package
	imports map[string]string
}

func newGenContext(pkg *types.Package) *genContext {
	return &genContext{pkg: pkg, imports: make(map[string]string)}
}

func (ctx *genContext) addImport(path string) {
	if path == ctx.pkg.Path() {
		return
	}
	ctx.imports[path] = ""
}

func (ctx *genContext) header() []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by yogurtgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", ctx.pkg.Name())

	if len(ctx.imports) == 0 {
		return b.Bytes()
	}
	var paths []string
	for path := range ctx.imports {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	fmt.Fprintf(&b, "import (\n")
	for _, path := range paths {
		fmt.Fprintf(&b, "\t%q\n", path)
	}
	fmt.Fprintf(&b, ")\n")
	return b.Bytes()
}

// entityDecodeTmpl and eventFromWireTmpl render one field's slice of a
// Decode/FromWire method body. text/template is used so that the quoted keys
// the templates print reach the generated Go source unescaped.
var (
	entityDecodeTmpl = template.Must(template.New("entityDecode").Parse(
		`	if sv, ok := m.Get({{.Key|printf "%q"}}); ok {
		v.{{.GoName}} = sv.{{.Accessor}}
	}
`))
	eventFromWireTmpl = template.Must(template.New("eventFromWire").Parse(
		`		case {{.Key|printf "%q"}}:
			if (yogurt.FieldPresence{Since: {{.Since}}, Until: {{.Until}}}).Active(c.SchemaVersion()) {
				v.{{.GoName}} = pr.Value.{{.Accessor}}
			}
`))
)

type entityFieldPlan struct {
	GoName   string
	Key      string
	Ctor     string // yogurt.NewXxxValue constructor name
	Accessor string // StoreValue field to read back on decode
}

type eventFieldPlan struct {
	GoName   string
	Key      string
	Accessor string // EthereumValue field to read
	Since    uint32 // schema version this field first appears in
	Until    uint32 // schema version this field is retired in, 0 if never
}

func planEntityField(f *types.Var, tag fieldTag) (entityFieldPlan, error) {
	plan := entityFieldPlan{GoName: f.Name(), Key: tag.key}
	switch t := f.Type().String(); {
	case t == "string":
		plan.Ctor, plan.Accessor = "yogurt.NewStringValue", "Str"
	case t == "[]byte":
		plan.Ctor, plan.Accessor = "yogurt.NewBytesValue", "Bytes"
	case t == "bool":
		plan.Ctor, plan.Accessor = "yogurt.NewBoolValue", "Bool"
	case t == "int32":
		plan.Ctor, plan.Accessor = "yogurt.NewIntValue", "Int"
	case t == "int8":
		plan.Ctor, plan.Accessor = "yogurt.NewInt8Value", "Int8"
	case t == "int64":
		plan.Ctor, plan.Accessor = "yogurt.NewTimestampValue", "Timestamp"
	case t == yogurtPkgPath+".Ptr" && tag.variant == "bigdecimal":
		plan.Ctor, plan.Accessor = "yogurt.NewBigDecimalValue", "BigDecimal"
	case t == yogurtPkgPath+".Ptr":
		plan.Ctor, plan.Accessor = "yogurt.NewBigIntValue", "BigInt"
	default:
		return plan, fmt.Errorf("field %s: unsupported entity field type %s", f.Name(), t)
	}
	return plan, nil
}

func planEventField(f *types.Var, tag fieldTag) (eventFieldPlan, error) {
	plan := eventFieldPlan{GoName: f.Name(), Key: tag.key, Since: tag.since, Until: tag.until}
	switch t := f.Type().String(); {
	case t == "string":
		plan.Accessor = "Str"
	case t == "[]byte" && tag.variant == "fixed":
		plan.Accessor = "FixedBytes"
	case t == "[]byte":
		plan.Accessor = "Bytes"
	case t == "bool":
		plan.Accessor = "Bool"
	case t == yogurtPkgPath+".Address":
		plan.Accessor = "Address"
	case t == yogurtPkgPath+".Ptr" && tag.variant == "int":
		plan.Accessor = "Int"
	case t == yogurtPkgPath+".Ptr":
		plan.Accessor = "Uint"
	default:
		return plan, fmt.Errorf("field %s: unsupported event param field type %s", f.Name(), t)
	}
	return plan, nil
}

func generate(pkg *types.Package, decls []*annotatedType, schemaVersion uint32) ([]byte, error) {
	ctx := newGenContext(pkg)
	ctx.addImport(yogurtPkgPath)

	var body bytes.Buffer
	for _, d := range decls {
		var err error
		switch d.kind {
		case "entity":
			err = generateEntity(&body, d)
		case "event":
			err = generateEvent(&body, d)
		default:
			err = fmt.Errorf("unknown annotation kind %q for %s", d.kind, d.name)
		}
		if err != nil {
			return nil, err
		}
	}
	fmt.Fprintf(&body, "func init() {\n\tyogurt.CurrentSchemaVersion = %d\n}\n\n", schemaVersion)

	out := append(ctx.header(), body.Bytes()...)
	return out, nil
}

func generateEntity(w *bytes.Buffer, d *annotatedType) error {
	strct := d.strct
	var plans []entityFieldPlan
	for i := 0; i < strct.NumFields(); i++ {
		f := strct.Field(i)
		tag := parseFieldTag(strct.Tag(i), f.Name())
		plan, err := planEntityField(f, tag)
		if err != nil {
			return err
		}
		plans = append(plans, plan)
	}

	fmt.Fprintf(w, "func (v *%s) EncodeWire(c *yogurt.Codec) yogurt.Ptr {\n", d.name)
	fmt.Fprintf(w, "\tm := yogurt.TypedMap{\n")
	for _, p := range plans {
		fmt.Fprintf(w, "\t\t{Key: %q, Value: %s(v.%s)},\n", p.Key, p.Ctor, p.GoName)
	}
	fmt.Fprintf(w, "\t}\n")
	fmt.Fprintf(w, "\tvar wire yogurt.Ptr\n")
	fmt.Fprintf(w, "\tyogurt.DefineTypedMap(c, &wire, &m)\n")
	fmt.Fprintf(w, "\treturn wire\n")
	fmt.Fprintf(w, "}\n\n")

	fmt.Fprintf(w, "func (v *%s) DecodeWire(c *yogurt.Codec, p yogurt.Ptr) {\n", d.name)
	fmt.Fprintf(w, "\tvar m yogurt.TypedMap\n")
	fmt.Fprintf(w, "\tyogurt.DefineTypedMap(c, &p, &m)\n")
	for _, p := range plans {
		if err := entityDecodeTmpl.Execute(w, p); err != nil {
			return err
		}
	}
	fmt.Fprintf(w, "}\n\n")
	return nil
}

func generateEvent(w *bytes.Buffer, d *annotatedType) error {
	strct := d.strct
	var plans []eventFieldPlan
	for i := 0; i < strct.NumFields(); i++ {
		f := strct.Field(i)
		tag := parseFieldTag(strct.Tag(i), f.Name())
		plan, err := planEventField(f, tag)
		if err != nil {
			return err
		}
		plans = append(plans, plan)
	}

	fmt.Fprintf(w, "func (v *%s) FromWire(c *yogurt.Codec, p yogurt.Ptr) error {\n", d.name)
	fmt.Fprintf(w, "\tparams := yogurt.DecodeEventParams(c, p)\n")
	fmt.Fprintf(w, "\tfor _, pr := range params {\n")
	fmt.Fprintf(w, "\t\tswitch pr.Name {\n")
	for _, p := range plans {
		if err := eventFromWireTmpl.Execute(w, p); err != nil {
			return err
		}
	}
	fmt.Fprintf(w, "\t\t}\n")
	fmt.Fprintf(w, "\t}\n")
	fmt.Fprintf(w, "\treturn nil\n")
	fmt.Fprintf(w, "}\n\n")
	return nil
}
