package domain

// Line is one product's presence in the cart. Lines are unique per product;
// a quantity below 1 means the line should not exist.
type Line struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}
