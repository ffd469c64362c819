package generate

// migrationsTable is sqlx's migration bookkeeping table. It lives in the
// application schema but is not application data, so it is never emitted.
const migrationsTable = "_sqlx_migrations"

// TableFilter decides which tables get a generated struct.
// The migrations table is always excluded; callers may add further
// exact-match exclusions.
type TableFilter struct {
	exclude map[string]struct{}
}

// NewTableFilter builds a filter that skips the migrations table plus
// any extra table names given.
func NewTableFilter(extra ...string) *TableFilter {
	exclude := make(map[string]struct{}, len(extra)+1)
	exclude[migrationsTable] = struct{}{}
	for _, name := range extra {
		exclude[name] = struct{}{}
	}
	return &TableFilter{exclude: exclude}
}

// Emit reports whether a struct should be generated for the table.
func (f *TableFilter) Emit(table string) bool {
	_, skip := f.exclude[table]
	return !skip
}
