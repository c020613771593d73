package cartdto

// AddItemRequest adds a catalog product to the cart. A zero or omitted
// quantity adds one unit.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required,max=64"`
	Quantity  int    `json:"quantity" validate:"min=0,max=99"`
}

// UpdateQuantityRequest sets the quantity of an existing line. Values below
// one are clamped to one.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required,max=99"`
}

// ReplaceCartRequest swaps the whole cart, for example when a guest cart is
// carried over after sign-in. Prices always come from the catalog.
type ReplaceCartRequest struct {
	Items []ReplaceCartItem `json:"items" validate:"max=100,dive"`
}

type ReplaceCartItem struct {
	ProductID string `json:"product_id" validate:"required,max=64"`
	Quantity  int    `json:"quantity" validate:"min=1,max=99"`
}
