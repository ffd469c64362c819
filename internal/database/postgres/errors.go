package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pgstruct/pgstruct/internal/errs"
)

// PostgreSQL SQLSTATE error codes (read-relevant only)
// Full list: https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgErrConnectionFailure    = "08006"
	pgErrInvalidAuth          = "28P01"
	pgErrInsufficientPrivRead = "42501"
	pgErrSyntaxError          = "42601"
	pgErrUndefinedTable       = "42P01"
	pgErrUndefinedColumn      = "42703"
)

// mapError converts a pgx error into a pgstruct errs.Error
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return errs.Wrap(errs.ErrKindTimeout, "query cancelled or timed out", err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrConnectionFailure, pgErrInvalidAuth:
			return errs.Wrap(errs.ErrKindConnectionFailed, "database connection failed", err)
		case pgErrSyntaxError, pgErrUndefinedTable, pgErrUndefinedColumn, pgErrInsufficientPrivRead:
			return errs.Wrap(errs.ErrKindQueryFailed, fmt.Sprintf("query error: %s", pgErr.Message), err)
		}
	}

	return errs.Wrap(errs.ErrKindUnknown, err.Error(), err)
}
