package response

import (
	"time"

	"balanca_xpto/internal/domain/entities"
)

const dateLayout = "2006-01-02"

// PriceIntervalResponse is the wire shape of a price interval. Money is a
// fixed-point string with 2 fractional digits; bounds are calendar dates.
type PriceIntervalResponse struct {
	PriceID       int64   `json:"price_id"`
	ProductID     int64   `json:"product_id"`
	EffectiveDate string  `json:"effective_date"`
	ToDate        *string `json:"to_date"`
	UnitPrice     string  `json:"unit_price"`
	ProductName   string  `json:"product_name,omitempty"`
	ProductCode   string  `json:"product_code,omitempty"`
}

func FromPriceInterval(p entities.PriceInterval) PriceIntervalResponse {
	return PriceIntervalResponse{
		PriceID:       p.PriceID,
		ProductID:     p.ProductID,
		EffectiveDate: p.EffectiveDate.Format(dateLayout),
		ToDate:        formatDatePtr(p.ToDate),
		UnitPrice:     p.UnitPrice.StringFixed(2),
	}
}

func FromPriceIntervalView(v entities.PriceIntervalView) PriceIntervalResponse {
	out := FromPriceInterval(v.PriceInterval)
	out.ProductName = v.ProductName
	out.ProductCode = v.ProductCode
	return out
}

func FromPriceIntervalViews(views []entities.PriceIntervalView) []PriceIntervalResponse {
	out := make([]PriceIntervalResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromPriceIntervalView(v))
	}
	return out
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
