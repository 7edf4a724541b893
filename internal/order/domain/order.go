package domain

import "time"

// Status is a strict enum. Any status may overwrite any other by admin
// action; there is deliberately no transition machine.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Item snapshots a product at order time. Later catalog edits never change
// historical orders.
type Item struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// Payment retains the last four digits of the card and its expiry. Nothing
// else from the card survives checkout.
type Payment struct {
	CardLast4  string `json:"cardNumber"`
	CardExpiry string `json:"cardExpiry"`
}

type Order struct {
	ID              string    `json:"id"`
	CustomerName    string    `json:"customerName"`
	CustomerEmail   string    `json:"customerEmail"`
	Items           []Item    `json:"items"`
	Total           float64   `json:"total"`
	Status          Status    `json:"status"`
	ShippingAddress Address   `json:"shippingAddress"`
	Payment         Payment   `json:"paymentInfo"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
