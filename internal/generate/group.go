package generate

import (
	"github.com/pgstruct/pgstruct/internal/errs"
	"github.com/pgstruct/pgstruct/internal/schema"
)

// TableGroup is the ordered column metadata of a single table.
type TableGroup struct {
	Table   string
	Columns []schema.Column
}

// GroupColumns turns the flat, pre-sorted column stream into per-table
// groups, preserving first-seen table order.
//
// This is a single pass that groups adjacent rows with the same table
// name, so it is only correct on input sorted by table name — exactly
// what the metadata query guarantees. The precondition is enforced
// rather than assumed: a table name that reappears after its group has
// closed, or an ordinal position that fails to increase within a group,
// is a fatal ErrKindMalformedSchema error. Silently accepting either
// would fragment groups or reorder fields.
func GroupColumns(cols []schema.Column) ([]TableGroup, error) {
	var groups []TableGroup
	closed := make(map[string]struct{})

	for _, col := range cols {
		n := len(groups)
		if n == 0 || groups[n-1].Table != col.TableName {
			if _, seen := closed[col.TableName]; seen {
				return nil, errs.Newf(errs.ErrKindMalformedSchema,
					"column metadata not sorted: table %q reappears after other tables", col.TableName)
			}
			if n > 0 {
				closed[groups[n-1].Table] = struct{}{}
			}
			groups = append(groups, TableGroup{Table: col.TableName})
			n++
		}

		g := &groups[n-1]
		if len(g.Columns) > 0 {
			prev := g.Columns[len(g.Columns)-1].OrdinalPosition
			if col.OrdinalPosition <= prev {
				return nil, errs.Newf(errs.ErrKindMalformedSchema,
					"table %q: ordinal position %d after %d (positions must be unique and increasing)",
					col.TableName, col.OrdinalPosition, prev)
			}
		}
		g.Columns = append(g.Columns, col)
	}

	return groups, nil
}
