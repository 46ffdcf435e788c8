package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// TicketStatus represents the lifecycle of a weigh ticket.
//
// Domain notes:
//   - A ticket is born pending when the vehicle is weighed in.
//   - Approval is the single, terminal transition; it stamps TimeOut and
//     fixes the transaction value. Re-approving is allowed and re-stamps.

type TicketStatus string

const (
	TicketStatusPending  TicketStatus = "pending"
	TicketStatusApproved TicketStatus = "approved"
)

// Ticket is one vehicle visit over the weighbridge.
//
// Monetary representation:
//   - UnitPrice is the price per weight unit in force for the ticket, either
//     supplied by the operator or resolved from the product's price timeline
//     as of TimeIn.
//   - TotalValue is computed at approval time and nil before that.
type Ticket struct {
	TicketID    int64            `json:"ticket_id"`
	TicketNo    string           `json:"ticket_no"`
	VehicleID   int64            `json:"vehicle_id"`
	VendorID    int64            `json:"vendor_id"`
	ProductID   int64            `json:"product_id"`
	Status      TicketStatus     `json:"process_status"`
	PaymentType string           `json:"payment_type"`
	WeightIn    decimal.Decimal  `json:"weight_in"`
	WeightOut   decimal.Decimal  `json:"weight_out"`
	UnitPrice   decimal.Decimal  `json:"unit_price"`
	TotalValue  *decimal.Decimal `json:"total_value"`
	TimeIn      time.Time        `json:"time_in"`
	TimeOut     *time.Time       `json:"time_out"`
	CreatedBy   string           `json:"created_by"`
	Remarks     string           `json:"remarks"`
}

// TicketView is a Ticket enriched with joined registry display fields.
type TicketView struct {
	Ticket
	ProductName  string `json:"product_name"`
	VendorName   string `json:"vendor_name"`
	LicensePlate string `json:"license_plate"`
}

// NetWeight is the weight delta of the visit.
func (t Ticket) NetWeight() decimal.Decimal {
	return t.WeightIn.Sub(t.WeightOut)
}

// ComputeTotal values the transaction at the ticket's unit price, rounded to
// 2 fractional digits.
func (t Ticket) ComputeTotal() decimal.Decimal {
	return t.NetWeight().Mul(t.UnitPrice).Round(2)
}
