package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceInterval is one entry in a product's price timeline.
//
// Natural key: (ProductID, EffectiveDate). Writing a colliding key replaces
// UnitPrice/ToDate in place rather than creating a second interval.
//
// Bounds are calendar dates, both inclusive. A nil ToDate means the interval
// is open-ended (the current price).
type PriceInterval struct {
	PriceID       int64           `json:"price_id"`
	ProductID     int64           `json:"product_id"`
	EffectiveDate time.Time       `json:"effective_date"`
	ToDate        *time.Time      `json:"to_date"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
}

// PriceIntervalView is a PriceInterval enriched with the owning product's
// display fields, as returned by list and resolve reads.
type PriceIntervalView struct {
	PriceInterval
	ProductName string `json:"product_name"`
	ProductCode string `json:"product_code"`
}

// ContainsDate reports whether d falls inside the interval. Only the calendar
// date of d is considered.
func (p PriceInterval) ContainsDate(d time.Time) bool {
	day := truncateToDate(d)
	if day.Before(truncateToDate(p.EffectiveDate)) {
		return false
	}
	if p.ToDate == nil {
		return true
	}
	return !day.After(truncateToDate(*p.ToDate))
}

// Overlaps reports whether two intervals share at least one day.
func (p PriceInterval) Overlaps(other PriceInterval) bool {
	aStart := truncateToDate(p.EffectiveDate)
	bStart := truncateToDate(other.EffectiveDate)

	if p.ToDate != nil && truncateToDate(*p.ToDate).Before(bStart) {
		return false
	}
	if other.ToDate != nil && truncateToDate(*other.ToDate).Before(aStart) {
		return false
	}
	return true
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
