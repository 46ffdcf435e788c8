package request

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Price dates travel as calendar dates, no time component.
const dateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// PriceUpsertRequest writes a price interval by natural key
// (product_id, effective_date).
type PriceUpsertRequest struct {
	ProductID     int64           `json:"product_id" binding:"required"`
	EffectiveDate string          `json:"effective_date" binding:"required"`
	ToDate        *string         `json:"to_date"`
	UnitPrice     decimal.Decimal `json:"unit_price" binding:"required"`
}

func (r PriceUpsertRequest) ResolveEffectiveDate() (time.Time, error) {
	return parseDate(r.EffectiveDate)
}

func (r PriceUpsertRequest) ResolveToDate() (*time.Time, error) {
	return parseDatePtr(r.ToDate)
}

// PriceUpdateRequest patches an interval by id. Omitted fields keep their
// stored value, except to_date: it is applied exactly as sent, so omitting
// it clears the upper bound and leaves the interval open-ended.
type PriceUpdateRequest struct {
	ProductID     *int64           `json:"product_id"`
	EffectiveDate *string          `json:"effective_date"`
	ToDate        *string          `json:"to_date"`
	UnitPrice     *decimal.Decimal `json:"unit_price"`
}

func (r PriceUpdateRequest) ResolveEffectiveDate() (*time.Time, error) {
	return parseDatePtr(r.EffectiveDate)
}

func (r PriceUpdateRequest) ResolveToDate() (*time.Time, error) {
	return parseDatePtr(r.ToDate)
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := parseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
