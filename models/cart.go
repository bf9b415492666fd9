package models

// CartItem is one line in the cart. Items are unique by ID; a quantity
// of zero or less is never stored, removal substitutes for it.
type CartItem struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	ScientificName string  `json:"scientific_name"`
	Price          float64 `json:"price"`
	ImageURL       string  `json:"image_url"`
	Family         string  `json:"family"`
	Quantity       int     `json:"quantity"`
}

// CartState is the full persisted cart. TotalAmount and TotalItems are
// derived from CartItems after every transition and rounded to two
// decimal places; they are stored anyway so a rehydrated cart renders
// without recomputation.
type CartState struct {
	CartItems   []CartItem `json:"cartItems"`
	TotalAmount float64    `json:"totalAmount"`
	TotalItems  int        `json:"totalItems"`
}
