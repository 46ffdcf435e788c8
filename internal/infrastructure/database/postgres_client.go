package database

import (
	"context"
	"fmt"
	"time"

	"balanca_xpto/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	connectAttempts = 5
	connectBackoff  = 2 * time.Second
)

// ConnectPostgres builds the pgx connection pool for the service.
//
// The pool is the single shared storage resource: it is created once at
// startup, injected into the repositories, and closed on shutdown. Connection
// attempts are retried a few times so the service survives the database
// coming up slightly later (compose environments).
func ConnectPostgres(ctx context.Context, cfg config.Postgres) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName, cfg.SSLMode,
	)

	var pool *pgxpool.Pool
	var err error
	for i := 0; i < connectAttempts; i++ {
		pool, err = pgxpool.New(ctx, dsn)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				return pool, nil
			}
			pool.Close()
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(connectBackoff):
		}
	}
	return nil, fmt.Errorf("connect postgres after %d attempts: %w", connectAttempts, err)
}
