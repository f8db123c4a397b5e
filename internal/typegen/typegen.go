// Package typegen derives TypeScript type declarations from Go struct
// definitions, so the front end's view of the wire shape stays in sync
// with the server's. It runs at build time only; nothing validates the
// shapes at runtime.
package typegen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"strings"
)

// Generate parses the Go source file at inputPath and returns TypeScript
// declarations for every exported struct type it declares, in source
// order.
func Generate(inputPath string) (string, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, inputPath, nil, parser.SkipObjectResolution)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", inputPath, err)
	}

	var b strings.Builder
	b.WriteString("// Code generated by typegen. DO NOT EDIT.\n")

	found := false
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok || !ts.Name.IsExported() {
				continue
			}
			st, ok := ts.Type.(*ast.StructType)
			if !ok {
				continue
			}
			found = true
			b.WriteString("\n")
			writeInterface(&b, ts.Name.Name, st)
		}
	}

	if !found {
		return "", fmt.Errorf("no exported struct types in %s", inputPath)
	}

	return b.String(), nil
}

func writeInterface(b *strings.Builder, name string, st *ast.StructType) {
	fmt.Fprintf(b, "export interface %s {\n", name)

	for _, field := range st.Fields.List {
		for _, ident := range field.Names {
			if !ident.IsExported() {
				continue
			}
			jsonName := fieldJSONName(ident.Name, field.Tag)
			if jsonName == "" {
				continue
			}
			fmt.Fprintf(b, "  %s: %s;\n", jsonName, tsType(field.Type))
		}
	}

	b.WriteString("}\n")
}

// fieldJSONName resolves the wire name of a struct field from its json
// tag, falling back to the Go field name. An empty return means the
// field is excluded from serialisation.
func fieldJSONName(goName string, tag *ast.BasicLit) string {
	if tag == nil {
		return goName
	}
	raw := strings.Trim(tag.Value, "`")
	jsonTag := reflect.StructTag(raw).Get("json")
	if jsonTag == "" {
		return goName
	}
	name := strings.Split(jsonTag, ",")[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return goName
	}
	return name
}

// tsType maps a Go type expression to its TypeScript counterpart.
// Pointers become nullable unions, mirroring encoding/json's treatment
// of nil pointers as null.
func tsType(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		switch t.Name {
		case "string":
			return "string"
		case "bool":
			return "boolean"
		case "int", "int8", "int16", "int32", "int64",
			"uint", "uint8", "uint16", "uint32", "uint64",
			"float32", "float64", "byte", "rune":
			return "number"
		default:
			// Another declared type; assume it is mirrored alongside.
			return t.Name
		}
	case *ast.StarExpr:
		return tsType(t.X) + " | null"
	case *ast.ArrayType:
		elem := tsType(t.Elt)
		if strings.ContainsRune(elem, ' ') {
			return "(" + elem + ")[]"
		}
		return elem + "[]"
	case *ast.MapType:
		return fmt.Sprintf("Record<%s, %s>", tsType(t.Key), tsType(t.Value))
	case *ast.SelectorExpr:
		// Qualified types (time.Time etc.) serialise as strings often
		// enough that string is the least-wrong default.
		return "string"
	default:
		return "unknown"
	}
}
