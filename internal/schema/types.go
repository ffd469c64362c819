package schema

// Column is one row of column metadata as returned by the source:
// a single column of a single table.
//
// Within a table, ordinal positions are unique and define field
// emission order.
type Column struct {
	TableName       string
	ColumnName      string
	UDTName         string // postgres native type name: int4, text, timestamptz, …
	IsNullable      bool
	OrdinalPosition int // 1-based position within the table
}
