// Package postgres implements database.DB for PostgreSQL using pgxpool.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pgstruct/pgstruct/internal/database"
	"github.com/pgstruct/pgstruct/internal/errs"
)

// Driver is a PostgreSQL implementation of database.DB backed by pgxpool.
// It is safe for concurrent use by multiple goroutines.
type Driver struct {
	pool *pgxpool.Pool
}

// New connects to PostgreSQL using the provided Config and returns a Driver.
// It calls Ping to validate the connection before returning.
func New(ctx context.Context, cfg *database.Config) (*Driver, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, errs.Wrap(errs.ErrKindConnectionFailed, "invalid DSN", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, errs.Wrap(errs.ErrKindConnectionFailed, "failed to create connection pool", err)
	}

	d := &Driver{pool: pool}

	if err := d.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return d, nil
}

// --- database.DB implementation ---

// Ping verifies the database is reachable by acquiring and releasing a connection.
func (d *Driver) Ping(ctx context.Context) error {
	if err := d.pool.Ping(ctx); err != nil {
		return errs.Wrap(errs.ErrKindConnectionFailed, "database unreachable", err)
	}
	return nil
}

// Close shuts down the connection pool.
func (d *Driver) Close() {
	d.pool.Close()
}

// Query executes a query returning multiple rows.
func (d *Driver) Query(ctx context.Context, sql string, args ...any) (database.Rows, error) {
	rows, err := d.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err)
	}
	return &pgRows{rows: rows}, nil
}

// QueryRow executes a query returning a single row.
func (d *Driver) QueryRow(ctx context.Context, sql string, args ...any) database.Row {
	return &pgRow{row: d.pool.QueryRow(ctx, sql, args...)}
}

// --- pgRows wraps pgx.Rows ---

type pgRows struct{ rows pgx.Rows }

func (r *pgRows) Next() bool             { return r.rows.Next() }
func (r *pgRows) Scan(dest ...any) error { return mapError(r.rows.Scan(dest...)) }
func (r *pgRows) Close()                 { r.rows.Close() }
func (r *pgRows) Err() error             { return mapError(r.rows.Err()) }

// --- pgRow wraps pgx.Row ---

type pgRow struct{ row pgx.Row }

func (r *pgRow) Scan(dest ...any) error { return mapError(r.row.Scan(dest...)) }
