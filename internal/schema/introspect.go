// Package schema reads column metadata from a live PostgreSQL database
// via information_schema. It is the only layer that knows SQL; the
// generator consumes the returned Column slice read-only.
package schema

import (
	"context"
	"fmt"

	"github.com/pgstruct/pgstruct/internal/database"
)

// PgSource implements Source for PostgreSQL using information_schema
type PgSource struct {
	db database.DB
}

// NewPgSource creates a new Postgres column-metadata source
func NewPgSource(db database.DB) *PgSource {
	return &PgSource{db: db}
}

// Columns returns every column of every base table in the given schema,
// sorted by table name then ordinal position. The ORDER BY is load-bearing:
// the generator groups adjacent rows by table name.
func (p *PgSource) Columns(ctx context.Context, schema string) ([]Column, error) {
	const q = `
		SELECT
			table_name,
			column_name,
			udt_name,
			is_nullable = 'YES' AS is_nullable,
			ordinal_position
		FROM information_schema.columns
		WHERE table_schema = $1
		ORDER BY table_name, ordinal_position`

	rows, err := p.db.Query(ctx, q, schema)
	if err != nil {
		return nil, fmt.Errorf("fetch columns: %w", err)
	}
	defer rows.Close()

	var cols []Column
	for rows.Next() {
		var col Column
		if err := rows.Scan(
			&col.TableName,
			&col.ColumnName,
			&col.UDTName,
			&col.IsNullable,
			&col.OrdinalPosition,
		); err != nil {
			return nil, fmt.Errorf("scan column: %w", err)
		}
		cols = append(cols, col)
	}
	return cols, rows.Err()
}

// ListTables returns all user-defined table names in the given schema
func (p *PgSource) ListTables(ctx context.Context, schema string) ([]string, error) {
	const q = `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = $1
		  AND table_type = 'BASE TABLE'
		ORDER BY table_name`

	rows, err := p.db.Query(ctx, q, schema)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

// TableExists checks whether a specific table exists
func (p *PgSource) TableExists(ctx context.Context, schema, table string) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = $1 AND table_name = $2
		)`

	var exists bool
	if err := p.db.QueryRow(ctx, q, schema, table).Scan(&exists); err != nil {
		return false, fmt.Errorf("table exists check: %w", err)
	}
	return exists, nil
}
