package generate

import (
	"github.com/pgstruct/pgstruct/internal/errs"
	"github.com/pgstruct/pgstruct/internal/render"
)

// typeMappings is the closed vocabulary of postgres native types the
// generator understands. Keys are udt_name values as reported by
// information_schema.columns. Anything outside this table aborts the
// run — defaulting silently would emit structs that scan incorrectly.
var typeMappings = map[string]render.GoType{
	"int8":        {Name: "int64"},
	"int4":        {Name: "int32"},
	"int2":        {Name: "int16"},
	"text":        {Name: "string"},
	"varchar":     {Name: "string"},
	"jsonb":       {Name: "json.RawMessage", Import: "encoding/json"},
	"timestamptz": {Name: "time.Time", Import: "time"},
	"date":        {Name: "pgtype.Date", Import: "github.com/jackc/pgx/v5/pgtype"},
	"float4":      {Name: "float32"},
	"float8":      {Name: "float64"},
	"uuid":        {Name: "uuid.UUID", Import: "github.com/google/uuid"},
	"boolean":     {Name: "bool"},
	"bytea":       {Name: "[]byte"},
}

// MapType converts a postgres native type name into its Go target type.
// Unknown names return an ErrKindUnknownType error carrying the
// offending name.
func MapType(udtName string) (render.GoType, error) {
	t, ok := typeMappings[udtName]
	if !ok {
		return render.GoType{}, errs.Newf(errs.ErrKindUnknownType, "unknown postgres type %q", udtName)
	}
	return t, nil
}
