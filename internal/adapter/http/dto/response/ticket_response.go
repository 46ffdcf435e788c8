package response

import (
	"time"

	"balanca_xpto/internal/domain/entities"
)

// TicketResponse is the wire shape of a weigh ticket. total_value and
// time_out stay null until approval.
type TicketResponse struct {
	TicketID     int64      `json:"ticket_id"`
	TicketNo     string     `json:"ticket_no"`
	VehicleID    int64      `json:"vehicle_id"`
	VendorID     int64      `json:"vendor_id"`
	ProductID    int64      `json:"product_id"`
	Status       string     `json:"process_status"`
	PaymentType  string     `json:"payment_type"`
	WeightIn     string     `json:"weight_in"`
	WeightOut    string     `json:"weight_out"`
	UnitPrice    string     `json:"unit_price"`
	TotalValue   *string    `json:"total_value"`
	TimeIn       time.Time  `json:"time_in"`
	TimeOut      *time.Time `json:"time_out"`
	CreatedBy    string     `json:"created_by"`
	Remarks      string     `json:"remarks"`
	ProductName  string     `json:"product_name,omitempty"`
	VendorName   string     `json:"vendor_name,omitempty"`
	LicensePlate string     `json:"license_plate,omitempty"`
}

func FromTicket(t entities.Ticket) TicketResponse {
	var total *string
	if t.TotalValue != nil {
		s := t.TotalValue.StringFixed(2)
		total = &s
	}
	return TicketResponse{
		TicketID:    t.TicketID,
		TicketNo:    t.TicketNo,
		VehicleID:   t.VehicleID,
		VendorID:    t.VendorID,
		ProductID:   t.ProductID,
		Status:      string(t.Status),
		PaymentType: t.PaymentType,
		WeightIn:    t.WeightIn.StringFixed(2),
		WeightOut:   t.WeightOut.StringFixed(2),
		UnitPrice:   t.UnitPrice.StringFixed(2),
		TotalValue:  total,
		TimeIn:      t.TimeIn,
		TimeOut:     t.TimeOut,
		CreatedBy:   t.CreatedBy,
		Remarks:     t.Remarks,
	}
}

func FromTicketView(v entities.TicketView) TicketResponse {
	out := FromTicket(v.Ticket)
	out.ProductName = v.ProductName
	out.VendorName = v.VendorName
	out.LicensePlate = v.LicensePlate
	return out
}

func FromTicketViews(views []entities.TicketView) []TicketResponse {
	out := make([]TicketResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromTicketView(v))
	}
	return out
}
