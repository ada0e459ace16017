// Package postgres implements the resource repositories on PostgreSQL via
// pgxpool, with squirrel building the queries. Filter keys reaching this
// package have already passed the per-operation allowlists; values are bound
// as parameters and coerced by Postgres.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Titan327/4CITE-backend/internal/infrastructure/config"
)

// NewPool connects to the database, retrying once per second until the
// configured timeout elapses. Containerised deployments routinely start the
// API before the database is ready to accept connections.
func NewPool(ctx context.Context, cfg config.PostgresConfig) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName)

	deadline := time.After(cfg.ConnectTimeout)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			pool, err := pgxpool.New(ctx, dsn)
			if err != nil {
				continue
			}
			if err = pool.Ping(ctx); err != nil {
				pool.Close()
				continue
			}
			return pool, nil

		case <-deadline:
			return nil, fmt.Errorf("unable to connect to database within %s", cfg.ConnectTimeout)
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}
