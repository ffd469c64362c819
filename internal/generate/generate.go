// Package generate is the schema-to-struct mapping core: it groups
// column metadata per table, filters out bookkeeping tables, maps
// postgres types to Go types, and emits one struct definition per table
// into a render.File sink.
//
// The whole run is all-or-nothing: the first unknown type or malformed
// group aborts generation before anything reaches the sink's output.
package generate

import (
	"github.com/pgstruct/pgstruct/internal/logger"
	"github.com/pgstruct/pgstruct/internal/render"
	"github.com/pgstruct/pgstruct/internal/schema"
)

// Options control what the generator emits.
type Options struct {
	// ExcludeTables are skipped in addition to the migrations table.
	ExcludeTables []string

	// EmitInputStructs also emits a <Name>Input struct per table with
	// the "id" column dropped, for use as an insert payload. Off by
	// default.
	EmitInputStructs bool
}

// Generator turns column metadata into struct definitions.
type Generator struct {
	filter *TableFilter
	opts   Options
	log    *logger.Logger
}

// New creates a Generator. log may be nil to disable progress logging.
func New(opts Options, log *logger.Logger) *Generator {
	return &Generator{
		filter: NewTableFilter(opts.ExcludeTables...),
		opts:   opts,
		log:    log,
	}
}

// Run consumes the full sorted column stream and appends one struct per
// emitted table to file, in the order tables first appear in cols.
// On error nothing useful is in file and the caller must discard it —
// there is no partial output mode.
func (g *Generator) Run(cols []schema.Column, file *render.File) error {
	groups, err := GroupColumns(cols)
	if err != nil {
		return err
	}

	for _, group := range groups {
		if !g.filter.Emit(group.Table) {
			g.debugf("skipping table %s", group.Table)
			continue
		}
		g.debugf("generating struct for table %s", group.Table)

		s, err := buildStruct(StructName(group.Table), group.Columns)
		if err != nil {
			return err
		}
		file.Append(s)

		if g.opts.EmitInputStructs {
			in, err := buildInputStruct(group)
			if err != nil {
				return err
			}
			file.Append(in)
		}
	}

	return nil
}

// buildStruct maps one table group to a struct definition: one field per
// column in ordinal order, nullable columns wrapped as pointers.
func buildStruct(name string, cols []schema.Column) (render.Struct, error) {
	s := render.Struct{Name: name, Fields: make([]render.Field, 0, len(cols))}
	for _, col := range cols {
		t, err := MapType(col.UDTName)
		if err != nil {
			return render.Struct{}, err
		}
		s.Fields = append(s.Fields, render.Field{
			Column:   col.ColumnName,
			GoName:   FieldName(col.ColumnName),
			Type:     t,
			Optional: col.IsNullable,
		})
	}
	return s, nil
}

// buildInputStruct is the insert-payload variant: same fields minus the
// "id" column, which the database assigns.
func buildInputStruct(group TableGroup) (render.Struct, error) {
	cols := make([]schema.Column, 0, len(group.Columns))
	for _, col := range group.Columns {
		if col.ColumnName == "id" {
			continue
		}
		cols = append(cols, col)
	}
	return buildStruct(InputStructName(group.Table), cols)
}

func (g *Generator) debugf(format string, args ...any) {
	if g.log != nil {
		g.log.Debugf(format, args...)
	}
}
