package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgstruct/pgstruct/internal/errs"
	"github.com/pgstruct/pgstruct/internal/render"
)

func TestMapType(t *testing.T) {
	tests := []struct {
		udtName string
		want    render.GoType
	}{
		{"int8", render.GoType{Name: "int64"}},
		{"int4", render.GoType{Name: "int32"}},
		{"int2", render.GoType{Name: "int16"}},
		{"text", render.GoType{Name: "string"}},
		{"varchar", render.GoType{Name: "string"}},
		{"jsonb", render.GoType{Name: "json.RawMessage", Import: "encoding/json"}},
		{"timestamptz", render.GoType{Name: "time.Time", Import: "time"}},
		{"date", render.GoType{Name: "pgtype.Date", Import: "github.com/jackc/pgx/v5/pgtype"}},
		{"float4", render.GoType{Name: "float32"}},
		{"float8", render.GoType{Name: "float64"}},
		{"uuid", render.GoType{Name: "uuid.UUID", Import: "github.com/google/uuid"}},
		{"boolean", render.GoType{Name: "bool"}},
		{"bytea", render.GoType{Name: "[]byte"}},
	}

	for _, tt := range tests {
		t.Run(tt.udtName, func(t *testing.T) {
			got, err := MapType(tt.udtName)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapType_Unknown(t *testing.T) {
	for _, udtName := range []string{"money", "int", "integer", "TEXT", "timestamp", ""} {
		t.Run(udtName, func(t *testing.T) {
			_, err := MapType(udtName)
			require.Error(t, err)
			assert.True(t, errs.IsUnknownType(err))
			// The failing native type name must be reported.
			assert.Contains(t, err.Error(), udtName)
		})
	}
}
