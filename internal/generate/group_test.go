package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgstruct/pgstruct/internal/errs"
	"github.com/pgstruct/pgstruct/internal/schema"
)

func col(table, name, udt string, nullable bool, pos int) schema.Column {
	return schema.Column{
		TableName:       table,
		ColumnName:      name,
		UDTName:         udt,
		IsNullable:      nullable,
		OrdinalPosition: pos,
	}
}

func TestGroupColumns(t *testing.T) {
	cols := []schema.Column{
		col("a", "id", "int8", false, 1),
		col("a", "name", "text", false, 2),
		col("b", "id", "int8", false, 1),
	}

	groups, err := GroupColumns(cols)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "a", groups[0].Table)
	require.Len(t, groups[0].Columns, 2)
	assert.Equal(t, "id", groups[0].Columns[0].ColumnName)
	assert.Equal(t, "name", groups[0].Columns[1].ColumnName)

	assert.Equal(t, "b", groups[1].Table)
	require.Len(t, groups[1].Columns, 1)
}

func TestGroupColumns_FirstSeenOrder(t *testing.T) {
	// Input order wins, not alphabetical order.
	cols := []schema.Column{
		col("zebra", "id", "int8", false, 1),
		col("apple", "id", "int8", false, 1),
	}

	groups, err := GroupColumns(cols)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "zebra", groups[0].Table)
	assert.Equal(t, "apple", groups[1].Table)
}

func TestGroupColumns_Empty(t *testing.T) {
	groups, err := GroupColumns(nil)
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestGroupColumns_UnsortedInputFatal(t *testing.T) {
	// Table "a" reappears after "b" closed its group. A single-pass
	// group-adjacent would silently fragment "a" — it must fail instead.
	cols := []schema.Column{
		col("a", "id", "int8", false, 1),
		col("b", "id", "int8", false, 1),
		col("a", "name", "text", false, 2),
	}

	_, err := GroupColumns(cols)
	require.Error(t, err)
	assert.True(t, errs.IsMalformedSchema(err))
	assert.Contains(t, err.Error(), `"a"`)
}

func TestGroupColumns_OrdinalViolations(t *testing.T) {
	tests := []struct {
		name string
		cols []schema.Column
	}{
		{
			name: "duplicate ordinal",
			cols: []schema.Column{
				col("a", "id", "int8", false, 1),
				col("a", "name", "text", false, 1),
			},
		},
		{
			name: "regressing ordinal",
			cols: []schema.Column{
				col("a", "id", "int8", false, 2),
				col("a", "name", "text", false, 1),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GroupColumns(tt.cols)
			require.Error(t, err)
			assert.True(t, errs.IsMalformedSchema(err))
		})
	}
}

func TestGroupColumns_OrdinalGapAllowed(t *testing.T) {
	// Dropped columns leave attnum gaps; positions only need to be
	// unique and increasing.
	cols := []schema.Column{
		col("a", "id", "int8", false, 1),
		col("a", "name", "text", false, 3),
	}

	groups, err := GroupColumns(cols)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Columns, 2)
}
