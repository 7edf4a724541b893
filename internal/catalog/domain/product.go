package domain

import "time"

// Product is a catalog entry. Price is a display-currency amount; rounding
// happens only when formatting, never in stored values.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	Category    string    `json:"category,omitempty"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// InStock reports whether the product can be added to a cart at all.
func (p Product) InStock() bool {
	return p.Stock > 0
}
