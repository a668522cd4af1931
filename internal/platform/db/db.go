// Package db owns the Postgres connection pool, the embedded schema
// migrations and the small helpers stores use to classify driver
// errors and bound individual queries.
package db

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"paydesk/internal/platform/config"
)

// queryTimeout bounds every individual store call. The tool is
// low-volume; anything slower than this indicates a stuck store.
const queryTimeout = 5 * time.Second

func Connect(ctx context.Context, cfg config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConns = 10
	poolCfg.MinConns = 2
	return pgxpool.NewWithConfig(ctx, poolCfg)
}

// WithQueryTimeout derives the per-call context used around each store
// query.
func WithQueryTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, queryTimeout)
}

// ErrDuplicateKey is what stores report on a unique-constraint
// violation so services can retry identifier generation or surface a
// conflict without importing driver types.
var ErrDuplicateKey = errors.New("duplicate key")

func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
