package repository

import (
	"context"
	"errors"
	"fmt"

	"balanca_xpto/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// SQLSTATE 23503: foreign_key_violation.
const pgForeignKeyViolation = "23503"

func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return fmt.Errorf("%w: %s", interfaces.ErrReferenceViolation, pgErr.ConstraintName)
	}
	return err
}

// queryExecutor is the subset of pgx satisfied by both the pool and an open
// transaction. Repositories resolve it per call so writes join a transaction
// injected by TxManager.
type queryExecutor interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func executorFrom(ctx context.Context, pool *pgxpool.Pool) queryExecutor {
	if tx := GetTx(ctx); tx != nil {
		return tx
	}
	return pool
}

// Money columns are selected as text and parsed, and bound as fixed-point
// strings, so numeric(10,2) round-trips without float drift.

func parseMoney(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func parseMoneyPtr(s *string) *decimal.Decimal {
	if s == nil {
		return nil
	}
	d := parseMoney(*s)
	return &d
}

func moneyArg(d decimal.Decimal) string {
	return d.StringFixed(2)
}
