package entities

// Registry master data joined by price intervals and weigh tickets.
//
// These rows are read-only from the service's point of view; administrative
// writes happen out of band. Foreign keys in product_prices and weigh_tickets
// keep referenced rows alive.

type Product struct {
	ProductID   int64  `json:"product_id"`
	ProductCode string `json:"product_code"`
	ProductName string `json:"product_name"`
}

type Vendor struct {
	VendorID   int64  `json:"vendor_id"`
	VendorName string `json:"vendor_name"`
}

type Vehicle struct {
	VehicleID    int64  `json:"vehicle_id"`
	LicensePlate string `json:"license_plate"`
}
