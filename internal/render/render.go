// Package render turns finished struct definitions into formatted Go
// source. It is a pure sink: the generator appends definitions in
// emission order and render preserves type names, field order, field
// names, base types, and optionality exactly as received.
package render

import (
	"fmt"
	"go/format"
	"sort"
	"strings"
)

// GoType is the mapped target type for a single column: a Go type
// expression plus the import path it requires (empty for predeclared
// types).
type GoType struct {
	Name   string // e.g. "int64", "time.Time", "uuid.UUID"
	Import string // e.g. "time", "github.com/google/uuid"
}

// Field is one column of a generated struct. Column keeps the exact
// database column name (rendered as the db tag); GoName is the exported
// identifier used in source.
type Field struct {
	Column   string
	GoName   string
	Type     GoType
	Optional bool // nullable column: rendered as a pointer type
}

// TypeExpr returns the Go type expression for the field, with the
// pointer wrapper applied when the field is optional.
func (f Field) TypeExpr() string {
	if f.Optional {
		return "*" + f.Type.Name
	}
	return f.Type.Name
}

// Struct is a named record type with an ordered field list.
type Struct struct {
	Name   string
	Fields []Field
}

// File collects generated structs in emission order and renders them as
// a single Go source file.
type File struct {
	pkg     string
	structs []Struct
}

// NewFile creates an empty output file for the given package name.
func NewFile(pkg string) *File {
	return &File{pkg: pkg}
}

// Append adds a struct definition to the file. Order of Append calls is
// the order structs appear in the output.
func (f *File) Append(s Struct) {
	f.structs = append(f.structs, s)
}

// Structs returns the appended definitions in emission order.
func (f *File) Structs() []Struct {
	return f.structs
}

// Len returns the number of appended definitions.
func (f *File) Len() int {
	return len(f.structs)
}

// Source renders the file and formats it with gofmt rules.
func (f *File) Source() ([]byte, error) {
	var b strings.Builder

	b.WriteString("// Code generated by pgstruct. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", f.pkg)
	writeImports(&b, f.imports())

	for i, s := range f.structs {
		if i > 0 {
			b.WriteString("\n")
		}
		writeStruct(&b, s)
	}

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

// imports returns the sorted, de-duplicated import paths needed by the
// appended structs.
func (f *File) imports() []string {
	seen := map[string]bool{}
	for _, s := range f.structs {
		for _, fld := range s.Fields {
			if fld.Type.Import != "" {
				seen[fld.Type.Import] = true
			}
		}
	}

	paths := make([]string, 0, len(seen))
	for p := range seen {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func writeImports(b *strings.Builder, paths []string) {
	if len(paths) == 0 {
		return
	}
	if len(paths) == 1 {
		fmt.Fprintf(b, "import %q\n\n", paths[0])
		return
	}

	// gofmt convention: standard library imports first, then a blank
	// line, then third-party imports.
	var std, external []string
	for _, p := range paths {
		if isStdlib(p) {
			std = append(std, p)
		} else {
			external = append(external, p)
		}
	}

	b.WriteString("import (\n")
	for _, p := range std {
		fmt.Fprintf(b, "\t%q\n", p)
	}
	if len(std) > 0 && len(external) > 0 {
		b.WriteString("\n")
	}
	for _, p := range external {
		fmt.Fprintf(b, "\t%q\n", p)
	}
	b.WriteString(")\n\n")
}

func writeStruct(b *strings.Builder, s Struct) {
	fmt.Fprintf(b, "type %s struct {\n", s.Name)
	for _, fld := range s.Fields {
		fmt.Fprintf(b, "\t%s %s `db:%q`\n", fld.GoName, fld.TypeExpr(), fld.Column)
	}
	b.WriteString("}\n")
}

// isStdlib reports whether an import path belongs to the standard
// library: its first path element carries no dot (no domain).
func isStdlib(path string) bool {
	first, _, _ := strings.Cut(path, "/")
	return !strings.Contains(first, ".")
}
