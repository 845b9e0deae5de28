// Package dbx holds the narrow pgx interfaces the repositories depend on, so
// that *pgxpool.Pool and pgxmock pools are interchangeable.
package dbx

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is implemented by *pgxpool.Pool.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Pinger is the part of *pgxpool.Pool used by health probes.
type Pinger interface {
	Ping(ctx context.Context) error
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Probe answers database liveness questions for the health endpoints.
type Probe struct {
	db Pinger
}

func NewProbe(db Pinger) *Probe {
	return &Probe{db: db}
}

func (p *Probe) Ping(ctx context.Context) error {
	return p.db.Ping(ctx)
}

// Now returns the database server clock.
func (p *Probe) Now(ctx context.Context) (time.Time, error) {
	var now time.Time
	if err := p.db.QueryRow(ctx, `SELECT NOW()`).Scan(&now); err != nil {
		return time.Time{}, err
	}
	return now, nil
}
