package cartdto

import "github.com/shopspring/decimal"

// Cart is the public view of a shopper's cart.
type Cart struct {
	Owner     string          `json:"owner"`
	Items     []CartItem      `json:"items"`
	ItemCount int             `json:"item_count"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Shipping  decimal.Decimal `json:"shipping"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
}

type CartItem struct {
	ProductID      string           `json:"product_id"`
	Name           string           `json:"name"`
	Brand          string           `json:"brand"`
	Image          string           `json:"image,omitempty"`
	Price          decimal.Decimal  `json:"price"`
	DiscountPrice  *decimal.Decimal `json:"discount_price,omitempty"`
	EffectivePrice decimal.Decimal  `json:"effective_price"`
	Quantity       int              `json:"quantity"`
	LineTotal      decimal.Decimal  `json:"line_total"`
}
