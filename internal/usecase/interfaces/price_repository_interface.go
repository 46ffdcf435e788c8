package interfaces

import (
	"context"

	"balanca_xpto/internal/domain/entities"
)

// IPriceRepository abstracts Postgres persistence for the price timeline.
//
// Conventions:
//   - "not found" is a zero-ID entity with a nil error, never an error value
//   - Upsert is atomic on the (product_id, effective_date) natural key
//   - ListByProductID returns intervals ordered by effective_date desc then
//     price_id desc, which is the precedence order the resolution algorithm
//     relies on

type IPriceRepository interface {
	ListAll(ctx context.Context) ([]entities.PriceIntervalView, error)
	ListByProductID(ctx context.Context, productID int64) ([]entities.PriceIntervalView, error)
	// LockProductTimeline serializes concurrent writers on one product's
	// timeline for the rest of the current transaction.
	LockProductTimeline(ctx context.Context, productID int64) error
	GetByID(ctx context.Context, priceID int64) (entities.PriceInterval, error)
	Upsert(ctx context.Context, p entities.PriceInterval) (entities.PriceInterval, error)
	UpdateByID(ctx context.Context, p entities.PriceInterval) (entities.PriceInterval, error)
	DeleteByID(ctx context.Context, priceID int64) (bool, error)
}
