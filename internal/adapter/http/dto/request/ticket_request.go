package request

import "github.com/shopspring/decimal"

// TicketCreateRequest opens a weigh ticket. unit_price is optional: when
// omitted the service resolves the product's active price as of weigh-in.
// ticket_no is optional and generated when blank.
type TicketCreateRequest struct {
	TicketNo    string           `json:"ticket_no"`
	VehicleID   int64            `json:"vehicle_id" binding:"required"`
	VendorID    int64            `json:"vendor_id" binding:"required"`
	ProductID   int64            `json:"product_id" binding:"required"`
	PaymentType string           `json:"payment_type"`
	WeightIn    decimal.Decimal  `json:"weight_in" binding:"required"`
	WeightOut   decimal.Decimal  `json:"weight_out"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	CreatedBy   string           `json:"created_by"`
	Remarks     string           `json:"remarks"`
}
