package repository

import (
	"context"
	"errors"
	"fmt"

	"balanca_xpto/internal/domain/entities"
	"balanca_xpto/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PricePostgresRepository persists the per-product price timeline.
//
// The natural-key upsert is a single INSERT ... ON CONFLICT statement, so the
// check-then-act race of "does this (product, effective_date) exist" is
// resolved inside the database regardless of any surrounding transaction.
type PricePostgresRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IPriceRepository = (*PricePostgresRepository)(nil)

func NewPricePostgresRepository(pool *pgxpool.Pool) *PricePostgresRepository {
	return &PricePostgresRepository{pool: pool}
}

const priceViewColumns = `
	pp.price_id, pp.product_id, pp.effective_date, pp.to_date, pp.unit_price::text,
	p.product_name, p.product_code
`

func (r *PricePostgresRepository) ListAll(ctx context.Context) ([]entities.PriceIntervalView, error) {
	sql := `
		SELECT ` + priceViewColumns + `
		FROM product_prices pp
		JOIN products p ON p.product_id = pp.product_id
		ORDER BY pp.effective_date DESC, pp.price_id DESC
	`

	rows, err := executorFrom(ctx, r.pool).Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("list prices: %w", err)
	}
	defer rows.Close()

	return scanPriceViews(rows)
}

// LockProductTimeline takes a transaction-scoped advisory lock keyed by the
// product id. At read-committed isolation two writers could otherwise both
// pass the overlap check and commit overlapping intervals; the lock makes the
// second writer wait and re-read the first one's committed rows. Released
// automatically at commit/rollback.
func (r *PricePostgresRepository) LockProductTimeline(ctx context.Context, productID int64) error {
	const sql = `SELECT pg_advisory_xact_lock($1)`

	if _, err := executorFrom(ctx, r.pool).Exec(ctx, sql, productID); err != nil {
		return fmt.Errorf("lock product timeline: %w", err)
	}
	return nil
}

func (r *PricePostgresRepository) ListByProductID(ctx context.Context, productID int64) ([]entities.PriceIntervalView, error) {
	sql := `
		SELECT ` + priceViewColumns + `
		FROM product_prices pp
		JOIN products p ON p.product_id = pp.product_id
		WHERE pp.product_id = $1
		ORDER BY pp.effective_date DESC, pp.price_id DESC
	`

	rows, err := executorFrom(ctx, r.pool).Query(ctx, sql, productID)
	if err != nil {
		return nil, fmt.Errorf("list prices by product: %w", err)
	}
	defer rows.Close()

	return scanPriceViews(rows)
}

func (r *PricePostgresRepository) GetByID(ctx context.Context, priceID int64) (entities.PriceInterval, error) {
	const sql = `
		SELECT price_id, product_id, effective_date, to_date, unit_price::text
		FROM product_prices
		WHERE price_id = $1
	`

	var p entities.PriceInterval
	var unitPrice string
	err := executorFrom(ctx, r.pool).QueryRow(ctx, sql, priceID).Scan(
		&p.PriceID, &p.ProductID, &p.EffectiveDate, &p.ToDate, &unitPrice,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.PriceInterval{}, nil
		}
		return entities.PriceInterval{}, fmt.Errorf("get price by id: %w", err)
	}
	p.UnitPrice = parseMoney(unitPrice)
	return p, nil
}

func (r *PricePostgresRepository) Upsert(ctx context.Context, p entities.PriceInterval) (entities.PriceInterval, error) {
	const sql = `
		INSERT INTO product_prices (product_id, effective_date, to_date, unit_price)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (product_id, effective_date)
		DO UPDATE SET unit_price = EXCLUDED.unit_price, to_date = EXCLUDED.to_date
		RETURNING price_id, product_id, effective_date, to_date, unit_price::text
	`

	var out entities.PriceInterval
	var unitPrice string
	err := executorFrom(ctx, r.pool).QueryRow(ctx, sql,
		p.ProductID, p.EffectiveDate, p.ToDate, moneyArg(p.UnitPrice),
	).Scan(&out.PriceID, &out.ProductID, &out.EffectiveDate, &out.ToDate, &unitPrice)
	if err != nil {
		return entities.PriceInterval{}, fmt.Errorf("upsert price: %w", mapConstraintError(err))
	}
	out.UnitPrice = parseMoney(unitPrice)
	return out, nil
}

func (r *PricePostgresRepository) UpdateByID(ctx context.Context, p entities.PriceInterval) (entities.PriceInterval, error) {
	const sql = `
		UPDATE product_prices
		SET product_id = $2, effective_date = $3, to_date = $4, unit_price = $5
		WHERE price_id = $1
		RETURNING price_id, product_id, effective_date, to_date, unit_price::text
	`

	var out entities.PriceInterval
	var unitPrice string
	err := executorFrom(ctx, r.pool).QueryRow(ctx, sql,
		p.PriceID, p.ProductID, p.EffectiveDate, p.ToDate, moneyArg(p.UnitPrice),
	).Scan(&out.PriceID, &out.ProductID, &out.EffectiveDate, &out.ToDate, &unitPrice)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.PriceInterval{}, nil
		}
		return entities.PriceInterval{}, fmt.Errorf("update price: %w", mapConstraintError(err))
	}
	out.UnitPrice = parseMoney(unitPrice)
	return out, nil
}

func (r *PricePostgresRepository) DeleteByID(ctx context.Context, priceID int64) (bool, error) {
	const sql = `DELETE FROM product_prices WHERE price_id = $1`

	ct, err := executorFrom(ctx, r.pool).Exec(ctx, sql, priceID)
	if err != nil {
		return false, fmt.Errorf("delete price: %w", err)
	}
	return ct.RowsAffected() > 0, nil
}

func scanPriceViews(rows pgx.Rows) ([]entities.PriceIntervalView, error) {
	var out []entities.PriceIntervalView
	for rows.Next() {
		var v entities.PriceIntervalView
		var unitPrice string
		if err := rows.Scan(
			&v.PriceID, &v.ProductID, &v.EffectiveDate, &v.ToDate, &unitPrice,
			&v.ProductName, &v.ProductCode,
		); err != nil {
			return nil, fmt.Errorf("scan price view: %w", err)
		}
		v.UnitPrice = parseMoney(unitPrice)
		out = append(out, v)
	}
	return out, rows.Err()
}
