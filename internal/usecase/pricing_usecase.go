package usecase

import (
	"context"
	"errors"
	"time"

	"balanca_xpto/internal/domain/entities"
	"balanca_xpto/internal/pkg/clock"
	"balanca_xpto/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrPriceNotFound       = errors.New("price interval not found")
	ErrNoActivePrice       = errors.New("no active price for product on date")
	ErrInvalidProductID    = errors.New("invalid product id")
	ErrInvalidPriceID      = errors.New("invalid price id")
	ErrInvalidUnitPrice    = errors.New("invalid unit price")
	ErrInvalidDateRange    = errors.New("invalid date range")
	ErrOverlappingInterval = errors.New("overlapping price interval")
)

// IPricingUseCase owns the price timeline of each product.
//
// Operations:
//   - UpsertPrice writes by natural key (ProductID, EffectiveDate): a
//     colliding key replaces the existing interval in place.
//   - UpdatePrice patches an interval by id. ToDate is always overwritten
//     with the supplied value, including nil; every other field keeps its
//     prior value when omitted.
//   - ResolveActivePrice answers "which price was in force for product P on
//     date D". No qualifying interval is a normal outcome (ErrNoActivePrice),
//     not a storage failure.

type IPricingUseCase interface {
	ListPrices(ctx context.Context) ([]entities.PriceIntervalView, error)
	UpsertPrice(ctx context.Context, params UpsertPriceParams) (entities.PriceInterval, error)
	UpdatePrice(ctx context.Context, priceID int64, params UpdatePriceParams) (entities.PriceInterval, error)
	DeletePrice(ctx context.Context, priceID int64) error
	ResolveActivePrice(ctx context.Context, productID int64, asOf *time.Time) (entities.PriceIntervalView, error)
}

type UpsertPriceParams struct {
	ProductID     int64
	EffectiveDate time.Time
	ToDate        *time.Time
	UnitPrice     decimal.Decimal
}

// UpdatePriceParams carries a partial update. Nil pointer fields keep the
// stored value, except ToDate which is applied as-is: there is no "leave
// unchanged" sentinel for it, nil clears the upper bound.
type UpdatePriceParams struct {
	ProductID     *int64
	EffectiveDate *time.Time
	ToDate        *time.Time
	UnitPrice     *decimal.Decimal
}

type PricingUseCase struct {
	repo   interfaces.IPriceRepository
	tx     interfaces.ITransactor
	clock  clock.Clock
	logger *zap.Logger
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(repo interfaces.IPriceRepository, tx interfaces.ITransactor, clk clock.Clock, logger *zap.Logger) *PricingUseCase {
	return &PricingUseCase{repo: repo, tx: tx, clock: clk, logger: logger}
}

func (u *PricingUseCase) ListPrices(ctx context.Context) ([]entities.PriceIntervalView, error) {
	return u.repo.ListAll(ctx)
}

func (u *PricingUseCase) UpsertPrice(ctx context.Context, params UpsertPriceParams) (entities.PriceInterval, error) {
	if params.ProductID <= 0 {
		return entities.PriceInterval{}, ErrInvalidProductID
	}
	if !isValidMoney(params.UnitPrice) {
		return entities.PriceInterval{}, ErrInvalidUnitPrice
	}
	candidate := entities.PriceInterval{
		ProductID:     params.ProductID,
		EffectiveDate: params.EffectiveDate,
		ToDate:        params.ToDate,
		UnitPrice:     params.UnitPrice,
	}
	if err := validateBounds(candidate); err != nil {
		return entities.PriceInterval{}, err
	}

	var out entities.PriceInterval
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := u.checkOverlap(ctx, candidate, 0); err != nil {
			return err
		}
		var err error
		out, err = u.repo.Upsert(ctx, candidate)
		return err
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrReferenceViolation) {
			return entities.PriceInterval{}, ErrInvalidProductID
		}
		return entities.PriceInterval{}, err
	}

	u.logger.Info("price interval upserted",
		zap.Int64("price_id", out.PriceID),
		zap.Int64("product_id", out.ProductID),
		zap.String("unit_price", out.UnitPrice.StringFixed(2)),
	)
	return out, nil
}

func (u *PricingUseCase) UpdatePrice(ctx context.Context, priceID int64, params UpdatePriceParams) (entities.PriceInterval, error) {
	if priceID <= 0 {
		return entities.PriceInterval{}, ErrInvalidPriceID
	}

	var out entities.PriceInterval
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := u.repo.GetByID(ctx, priceID)
		if err != nil {
			return err
		}
		if current.PriceID == 0 {
			return ErrPriceNotFound
		}

		merged := current
		if params.ProductID != nil {
			merged.ProductID = *params.ProductID
		}
		if params.EffectiveDate != nil {
			merged.EffectiveDate = *params.EffectiveDate
		}
		if params.UnitPrice != nil {
			merged.UnitPrice = *params.UnitPrice
		}
		merged.ToDate = params.ToDate

		if merged.ProductID <= 0 {
			return ErrInvalidProductID
		}
		if !isValidMoney(merged.UnitPrice) {
			return ErrInvalidUnitPrice
		}
		if err := validateBounds(merged); err != nil {
			return err
		}
		if err := u.checkOverlap(ctx, merged, merged.PriceID); err != nil {
			return err
		}

		out, err = u.repo.UpdateByID(ctx, merged)
		if err != nil {
			return err
		}
		if out.PriceID == 0 {
			return ErrPriceNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrReferenceViolation) {
			return entities.PriceInterval{}, ErrInvalidProductID
		}
		return entities.PriceInterval{}, err
	}
	return out, nil
}

func (u *PricingUseCase) DeletePrice(ctx context.Context, priceID int64) error {
	if priceID <= 0 {
		return ErrInvalidPriceID
	}
	deleted, err := u.repo.DeleteByID(ctx, priceID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPriceNotFound
	}
	u.logger.Info("price interval deleted", zap.Int64("price_id", priceID))
	return nil
}

func (u *PricingUseCase) ResolveActivePrice(ctx context.Context, productID int64, asOf *time.Time) (entities.PriceIntervalView, error) {
	if productID <= 0 {
		return entities.PriceIntervalView{}, ErrInvalidProductID
	}
	target := u.clock.Now()
	if asOf != nil {
		target = *asOf
	}

	intervals, err := u.repo.ListByProductID(ctx, productID)
	if err != nil {
		return entities.PriceIntervalView{}, err
	}

	// Intervals arrive ordered by effective_date desc, price_id desc, so the
	// first qualifying one is the most-recent-wins answer; the price_id order
	// breaks ties deterministically if overlapping rows slipped into storage.
	for _, iv := range intervals {
		if iv.ContainsDate(target) {
			return iv, nil
		}
	}
	return entities.PriceIntervalView{}, ErrNoActivePrice
}

// checkOverlap rejects a write that would make candidate share days with
// another interval of the same product. The interval identified by skipID
// (or by the candidate's natural key, for upserts) is the row being replaced
// and does not count.
func (u *PricingUseCase) checkOverlap(ctx context.Context, candidate entities.PriceInterval, skipID int64) error {
	// Runs inside WithinTransaction. The advisory lock serializes writers on
	// the same product so two concurrent writes cannot both pass the check.
	if err := u.repo.LockProductTimeline(ctx, candidate.ProductID); err != nil {
		return err
	}
	existing, err := u.repo.ListByProductID(ctx, candidate.ProductID)
	if err != nil {
		return err
	}
	for _, iv := range existing {
		if skipID != 0 && iv.PriceID == skipID {
			continue
		}
		if skipID == 0 && sameDay(iv.EffectiveDate, candidate.EffectiveDate) {
			continue
		}
		if iv.PriceInterval.Overlaps(candidate) {
			return ErrOverlappingInterval
		}
	}
	return nil
}

func validateBounds(p entities.PriceInterval) error {
	if p.EffectiveDate.IsZero() {
		return ErrInvalidDateRange
	}
	if p.ToDate != nil && p.ToDate.Before(p.EffectiveDate) {
		return ErrInvalidDateRange
	}
	return nil
}

// isValidMoney accepts positive values with at most 2 fractional digits.
func isValidMoney(d decimal.Decimal) bool {
	return d.IsPositive() && d.Equal(d.Round(2))
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
