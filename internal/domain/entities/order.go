package entities

import "time"

// The store records a fixed initial status on submission; payment capture
// happens upstream of this service.
const OrderStatusPaid = "paid"

// Order is the snapshot handed to the external store when checkout
// completes. The service keeps no order state afterwards beyond the
// session's placed flag.
type Order struct {
	OrderID         string
	CustomerEmail   string
	Items           []OrderItem
	TotalAmount     int64
	Status          string
	ShippingAddress ShippingDetails
	CreatedAt       time.Time
}

// OrderItem snapshots one cart line, including the configuration of a
// composite product if present.
type OrderItem struct {
	ProductID string
	Name      string
	Price     int64
	Quantity  int
	Config    *JewelleryConfig
}
