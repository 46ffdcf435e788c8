package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"balanca_xpto/internal/domain/entities"
	"balanca_xpto/internal/pkg/clock"
	"balanca_xpto/internal/usecase/interfaces"
	mock_interfaces "balanca_xpto/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// passthroughTx makes the transactor run the callback against the same ctx,
// which is what the real TxManager does minus the pgx transaction.
func passthroughTx(tx *mock_interfaces.MockITransactor) {
	tx.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
}

func newPricingUseCase(t *testing.T) (*PricingUseCase, *mock_interfaces.MockIPriceRepository, *mock_interfaces.MockITransactor, *clock.MockClock) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIPriceRepository(ctrl)
	tx := mock_interfaces.NewMockITransactor(ctrl)
	clk := clock.NewMockClock(day(2024, time.May, 15))
	return NewPricingUseCase(repo, tx, clk, zap.NewNop()), repo, tx, clk
}

func TestPricingUseCase_UpsertPrice(t *testing.T) {
	t.Run("invalid product id", func(t *testing.T) {
		uc, _, _, _ := newPricingUseCase(t)
		_, err := uc.UpsertPrice(context.Background(), UpsertPriceParams{ProductID: 0, EffectiveDate: day(2024, time.January, 1), UnitPrice: money("50.00")})
		if !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})

	t.Run("invalid unit price", func(t *testing.T) {
		uc, _, _, _ := newPricingUseCase(t)
		for _, bad := range []string{"0", "-5.00", "50.005"} {
			_, err := uc.UpsertPrice(context.Background(), UpsertPriceParams{ProductID: 1, EffectiveDate: day(2024, time.January, 1), UnitPrice: money(bad)})
			if !errors.Is(err, ErrInvalidUnitPrice) {
				t.Fatalf("price %s: expected ErrInvalidUnitPrice, got %v", bad, err)
			}
		}
	})

	t.Run("zero effective date", func(t *testing.T) {
		uc, _, _, _ := newPricingUseCase(t)
		_, err := uc.UpsertPrice(context.Background(), UpsertPriceParams{ProductID: 1, UnitPrice: money("50.00")})
		if !errors.Is(err, ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("to date before effective date", func(t *testing.T) {
		uc, _, _, _ := newPricingUseCase(t)
		_, err := uc.UpsertPrice(context.Background(), UpsertPriceParams{
			ProductID:     1,
			EffectiveDate: day(2024, time.July, 1),
			ToDate:        dayPtr(2024, time.June, 30),
			UnitPrice:     money("50.00"),
		})
		if !errors.Is(err, ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("overlapping interval rejected", func(t *testing.T) {
		uc, repo, tx, _ := newPricingUseCase(t)
		passthroughTx(tx)
		existing := []entities.PriceIntervalView{
			{PriceInterval: entities.PriceInterval{PriceID: 7, ProductID: 1, EffectiveDate: day(2024, time.January, 1), ToDate: dayPtr(2024, time.June, 30), UnitPrice: money("50.00")}},
		}
		repo.EXPECT().LockProductTimeline(gomock.Any(), int64(1)).Return(nil)
		repo.EXPECT().ListByProductID(gomock.Any(), int64(1)).Return(existing, nil)

		_, err := uc.UpsertPrice(context.Background(), UpsertPriceParams{
			ProductID:     1,
			EffectiveDate: day(2024, time.March, 1),
			ToDate:        dayPtr(2024, time.December, 31),
			UnitPrice:     money("52.00"),
		})
		if !errors.Is(err, ErrOverlappingInterval) {
			t.Fatalf("expected ErrOverlappingInterval, got %v", err)
		}
	})

	t.Run("same effective date replaces in place", func(t *testing.T) {
		uc, repo, tx, _ := newPricingUseCase(t)
		passthroughTx(tx)
		existing := []entities.PriceIntervalView{
			{PriceInterval: entities.PriceInterval{PriceID: 7, ProductID: 1, EffectiveDate: day(2024, time.January, 1), ToDate: dayPtr(2024, time.June, 30), UnitPrice: money("50.00")}},
		}
		repo.EXPECT().LockProductTimeline(gomock.Any(), int64(1)).Return(nil)
		repo.EXPECT().ListByProductID(gomock.Any(), int64(1)).Return(existing, nil)
		repo.EXPECT().Upsert(gomock.Any(), gomock.AssignableToTypeOf(entities.PriceInterval{})).DoAndReturn(
			func(_ context.Context, p entities.PriceInterval) (entities.PriceInterval, error) {
				if !p.UnitPrice.Equal(money("51.00")) {
					t.Fatalf("unexpected upsert payload: %+v", p)
				}
				p.PriceID = 7
				return p, nil
			},
		)

		res, err := uc.UpsertPrice(context.Background(), UpsertPriceParams{
			ProductID:     1,
			EffectiveDate: day(2024, time.January, 1),
			ToDate:        dayPtr(2024, time.June, 30),
			UnitPrice:     money("51.00"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PriceID != 7 {
			t.Fatalf("expected existing row id 7, got %d", res.PriceID)
		}
	})

	t.Run("locks the product timeline before the overlap read", func(t *testing.T) {
		uc, repo, tx, _ := newPricingUseCase(t)
		passthroughTx(tx)

		lock := repo.EXPECT().LockProductTimeline(gomock.Any(), int64(1)).Return(nil)
		repo.EXPECT().ListByProductID(gomock.Any(), int64(1)).Return(nil, nil).After(lock)
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.PriceInterval) (entities.PriceInterval, error) {
				p.PriceID = 1
				return p, nil
			},
		)

		_, err := uc.UpsertPrice(context.Background(), UpsertPriceParams{ProductID: 1, EffectiveDate: day(2024, time.January, 1), UnitPrice: money("50.00")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("lock failure aborts the write", func(t *testing.T) {
		uc, repo, tx, _ := newPricingUseCase(t)
		passthroughTx(tx)

		repo.EXPECT().LockProductTimeline(gomock.Any(), int64(1)).Return(errors.New("lock timeout"))

		_, err := uc.UpsertPrice(context.Background(), UpsertPriceParams{ProductID: 1, EffectiveDate: day(2024, time.January, 1), UnitPrice: money("50.00")})
		if err == nil || err.Error() != "lock timeout" {
			t.Fatalf("expected lock error, got %v", err)
		}
	})

	t.Run("unknown product maps fk violation", func(t *testing.T) {
		uc, repo, tx, _ := newPricingUseCase(t)
		passthroughTx(tx)
		repo.EXPECT().LockProductTimeline(gomock.Any(), int64(99)).Return(nil)
		repo.EXPECT().ListByProductID(gomock.Any(), int64(99)).Return(nil, nil)
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(entities.PriceInterval{}, fmt.Errorf("insert price: %w", interfaces.ErrReferenceViolation))

		_, err := uc.UpsertPrice(context.Background(), UpsertPriceParams{ProductID: 99, EffectiveDate: day(2024, time.January, 1), UnitPrice: money("50.00")})
		if !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})

	t.Run("success open ended", func(t *testing.T) {
		uc, repo, tx, _ := newPricingUseCase(t)
		passthroughTx(tx)
		repo.EXPECT().LockProductTimeline(gomock.Any(), int64(1)).Return(nil)
		repo.EXPECT().ListByProductID(gomock.Any(), int64(1)).Return(nil, nil)
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.PriceInterval) (entities.PriceInterval, error) {
				if p.ToDate != nil {
					t.Fatalf("expected open-ended interval, got %v", p.ToDate)
				}
				p.PriceID = 1
				return p, nil
			},
		)

		res, err := uc.UpsertPrice(context.Background(), UpsertPriceParams{ProductID: 1, EffectiveDate: day(2024, time.July, 1), UnitPrice: money("55.00")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PriceID != 1 || !res.UnitPrice.Equal(money("55.00")) {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestPricingUseCase_UpdatePrice(t *testing.T) {
	stored := entities.PriceInterval{
		PriceID:       5,
		ProductID:     1,
		EffectiveDate: day(2024, time.January, 1),
		ToDate:        dayPtr(2024, time.June, 30),
		UnitPrice:     money("50.00"),
	}

	t.Run("invalid id", func(t *testing.T) {
		uc, _, _, _ := newPricingUseCase(t)
		_, err := uc.UpdatePrice(context.Background(), 0, UpdatePriceParams{})
		if !errors.Is(err, ErrInvalidPriceID) {
			t.Fatalf("expected ErrInvalidPriceID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, repo, tx, _ := newPricingUseCase(t)
		passthroughTx(tx)
		repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(entities.PriceInterval{}, nil)

		_, err := uc.UpdatePrice(context.Background(), 5, UpdatePriceParams{})
		if !errors.Is(err, ErrPriceNotFound) {
			t.Fatalf("expected ErrPriceNotFound, got %v", err)
		}
	})

	t.Run("partial update keeps stored fields and clears to date", func(t *testing.T) {
		uc, repo, tx, _ := newPricingUseCase(t)
		passthroughTx(tx)
		price := money("53.00")

		repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(stored, nil)
		repo.EXPECT().LockProductTimeline(gomock.Any(), int64(1)).Return(nil)
		repo.EXPECT().ListByProductID(gomock.Any(), int64(1)).Return([]entities.PriceIntervalView{{PriceInterval: stored}}, nil)
		repo.EXPECT().UpdateByID(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.PriceInterval) (entities.PriceInterval, error) {
				if p.ProductID != 1 || !p.EffectiveDate.Equal(stored.EffectiveDate) {
					t.Fatalf("stored fields not kept: %+v", p)
				}
				if p.ToDate != nil {
					t.Fatalf("expected cleared to_date, got %v", p.ToDate)
				}
				if !p.UnitPrice.Equal(price) {
					t.Fatalf("unit price not applied: %+v", p)
				}
				return p, nil
			},
		)

		res, err := uc.UpdatePrice(context.Background(), 5, UpdatePriceParams{UnitPrice: &price})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ToDate != nil {
			t.Fatalf("expected open-ended result, got %v", res.ToDate)
		}
	})

	t.Run("own row does not count as overlap", func(t *testing.T) {
		uc, repo, tx, _ := newPricingUseCase(t)
		passthroughTx(tx)

		repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(stored, nil)
		repo.EXPECT().LockProductTimeline(gomock.Any(), int64(1)).Return(nil)
		repo.EXPECT().ListByProductID(gomock.Any(), int64(1)).Return([]entities.PriceIntervalView{{PriceInterval: stored}}, nil)
		repo.EXPECT().UpdateByID(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.PriceInterval) (entities.PriceInterval, error) {
				return p, nil
			},
		)

		_, err := uc.UpdatePrice(context.Background(), 5, UpdatePriceParams{ToDate: dayPtr(2024, time.May, 31)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("overlap with sibling rejected", func(t *testing.T) {
		uc, repo, tx, _ := newPricingUseCase(t)
		passthroughTx(tx)
		sibling := entities.PriceInterval{PriceID: 6, ProductID: 1, EffectiveDate: day(2024, time.July, 1), UnitPrice: money("55.00")}

		repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(stored, nil)
		repo.EXPECT().LockProductTimeline(gomock.Any(), int64(1)).Return(nil)
		repo.EXPECT().ListByProductID(gomock.Any(), int64(1)).Return([]entities.PriceIntervalView{
			{PriceInterval: sibling},
			{PriceInterval: stored},
		}, nil)

		_, err := uc.UpdatePrice(context.Background(), 5, UpdatePriceParams{ToDate: dayPtr(2024, time.August, 15)})
		if !errors.Is(err, ErrOverlappingInterval) {
			t.Fatalf("expected ErrOverlappingInterval, got %v", err)
		}
	})

	t.Run("rollback on repo error", func(t *testing.T) {
		uc, repo, tx, _ := newPricingUseCase(t)
		passthroughTx(tx)

		repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(entities.PriceInterval{}, errors.New("db"))

		_, err := uc.UpdatePrice(context.Background(), 5, UpdatePriceParams{})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestPricingUseCase_DeletePrice(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _, _, _ := newPricingUseCase(t)
		err := uc.DeletePrice(context.Background(), -1)
		if !errors.Is(err, ErrInvalidPriceID) {
			t.Fatalf("expected ErrInvalidPriceID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, repo, _, _ := newPricingUseCase(t)
		repo.EXPECT().DeleteByID(gomock.Any(), int64(5)).Return(false, nil)

		err := uc.DeletePrice(context.Background(), 5)
		if !errors.Is(err, ErrPriceNotFound) {
			t.Fatalf("expected ErrPriceNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		uc, repo, _, _ := newPricingUseCase(t)
		repo.EXPECT().DeleteByID(gomock.Any(), int64(5)).Return(false, errors.New("db"))

		err := uc.DeletePrice(context.Background(), 5)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, repo, _, _ := newPricingUseCase(t)
		repo.EXPECT().DeleteByID(gomock.Any(), int64(5)).Return(true, nil)

		if err := uc.DeletePrice(context.Background(), 5); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPricingUseCase_ResolveActivePrice(t *testing.T) {
	// Timeline ordered as the repository returns it: newest first.
	timeline := []entities.PriceIntervalView{
		{
			PriceInterval: entities.PriceInterval{PriceID: 2, ProductID: 1, EffectiveDate: day(2024, time.July, 1), UnitPrice: money("55.00")},
			ProductName:   "Cement",
			ProductCode:   "CEM",
		},
		{
			PriceInterval: entities.PriceInterval{PriceID: 1, ProductID: 1, EffectiveDate: day(2024, time.January, 1), ToDate: dayPtr(2024, time.June, 30), UnitPrice: money("50.00")},
			ProductName:   "Cement",
			ProductCode:   "CEM",
		},
	}

	t.Run("invalid product id", func(t *testing.T) {
		uc, _, _, _ := newPricingUseCase(t)
		_, err := uc.ResolveActivePrice(context.Background(), 0, nil)
		if !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})

	t.Run("date inside closed interval", func(t *testing.T) {
		uc, repo, _, _ := newPricingUseCase(t)
		repo.EXPECT().ListByProductID(gomock.Any(), int64(1)).Return(timeline, nil)

		res, err := uc.ResolveActivePrice(context.Background(), 1, dayPtr(2024, time.May, 15))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PriceID != 1 || !res.UnitPrice.Equal(money("50.00")) {
			t.Fatalf("unexpected interval: %+v", res)
		}
	})

	t.Run("date inside open ended interval", func(t *testing.T) {
		uc, repo, _, _ := newPricingUseCase(t)
		repo.EXPECT().ListByProductID(gomock.Any(), int64(1)).Return(timeline, nil)

		res, err := uc.ResolveActivePrice(context.Background(), 1, dayPtr(2024, time.September, 1))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PriceID != 2 || !res.UnitPrice.Equal(money("55.00")) {
			t.Fatalf("unexpected interval: %+v", res)
		}
	})

	t.Run("boundary dates are inclusive", func(t *testing.T) {
		uc, repo, _, _ := newPricingUseCase(t)
		repo.EXPECT().ListByProductID(gomock.Any(), int64(1)).Return(timeline, nil).Times(2)

		res, err := uc.ResolveActivePrice(context.Background(), 1, dayPtr(2024, time.June, 30))
		if err != nil || res.PriceID != 1 {
			t.Fatalf("expected closed interval on its last day, got %+v err %v", res, err)
		}
		res, err = uc.ResolveActivePrice(context.Background(), 1, dayPtr(2024, time.July, 1))
		if err != nil || res.PriceID != 2 {
			t.Fatalf("expected open interval on its first day, got %+v err %v", res, err)
		}
	})

	t.Run("date before timeline", func(t *testing.T) {
		uc, repo, _, _ := newPricingUseCase(t)
		repo.EXPECT().ListByProductID(gomock.Any(), int64(1)).Return(timeline, nil)

		_, err := uc.ResolveActivePrice(context.Background(), 1, dayPtr(2023, time.December, 1))
		if !errors.Is(err, ErrNoActivePrice) {
			t.Fatalf("expected ErrNoActivePrice, got %v", err)
		}
	})

	t.Run("nil date uses clock", func(t *testing.T) {
		uc, repo, _, clk := newPricingUseCase(t)
		clk.Set(day(2024, time.August, 10))
		repo.EXPECT().ListByProductID(gomock.Any(), int64(1)).Return(timeline, nil)

		res, err := uc.ResolveActivePrice(context.Background(), 1, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PriceID != 2 {
			t.Fatalf("expected current open interval, got %+v", res)
		}
	})

	t.Run("most recent wins on overlapping rows", func(t *testing.T) {
		uc, repo, _, _ := newPricingUseCase(t)
		overlapping := []entities.PriceIntervalView{
			{PriceInterval: entities.PriceInterval{PriceID: 4, ProductID: 1, EffectiveDate: day(2024, time.March, 1), UnitPrice: money("60.00")}},
			{PriceInterval: entities.PriceInterval{PriceID: 3, ProductID: 1, EffectiveDate: day(2024, time.January, 1), UnitPrice: money("50.00")}},
		}
		repo.EXPECT().ListByProductID(gomock.Any(), int64(1)).Return(overlapping, nil)

		res, err := uc.ResolveActivePrice(context.Background(), 1, dayPtr(2024, time.April, 1))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PriceID != 4 {
			t.Fatalf("expected newest interval to win, got %+v", res)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		uc, repo, _, _ := newPricingUseCase(t)
		repo.EXPECT().ListByProductID(gomock.Any(), int64(1)).Return(nil, errors.New("db"))

		_, err := uc.ResolveActivePrice(context.Background(), 1, nil)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
