package schema

import "context"

// Source provides column metadata for a database schema.
// Implementations must return columns sorted by table name, then
// ordinal position — the generator's grouping relies on it.
type Source interface {
	// Columns returns the full column metadata for every table in the
	// named schema (e.g. "public"), sorted by table name then ordinal
	// position.
	Columns(ctx context.Context, schema string) ([]Column, error)

	// ListTables returns all user-defined table names in the named schema.
	ListTables(ctx context.Context, schema string) ([]string, error)

	// TableExists checks whether a specific table exists.
	TableExists(ctx context.Context, schema, table string) (bool, error)
}
