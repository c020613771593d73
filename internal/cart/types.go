package cart

import (
	"strings"

	pkgerrors "github.com/luxtime/luxtime-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

// Product is the catalog snapshot a line item captures when it is first added.
// Later catalog price changes do not reach an existing line item.
type Product struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Brand         string           `json:"brand"`
	Price         decimal.Decimal  `json:"price"`
	DiscountPrice *decimal.Decimal `json:"discount_price,omitempty"`
	Images        []string         `json:"images,omitempty"`
}

// EffectivePrice is the discount price when one is set, otherwise the base price.
// A zero discount is treated as absent.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.DiscountPrice != nil && !p.DiscountPrice.IsZero() {
		return *p.DiscountPrice
	}
	return p.Price
}

// Validate rejects snapshots that would produce negative or inconsistent totals.
func (p Product) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	details := map[string]any{"product_id": p.ID}
	if p.Price.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "product price cannot be negative").WithDetails(details)
	}
	if p.DiscountPrice != nil {
		if p.DiscountPrice.IsNegative() {
			return pkgerrors.New(pkgerrors.CodeValidation, "discount price cannot be negative").WithDetails(details)
		}
		if p.DiscountPrice.GreaterThan(p.Price) {
			return pkgerrors.New(pkgerrors.CodeValidation, "discount price cannot exceed price").WithDetails(details)
		}
	}
	return nil
}

func (p Product) clone() Product {
	out := p
	if p.DiscountPrice != nil {
		discount := *p.DiscountPrice
		out.DiscountPrice = &discount
	}
	if p.Images != nil {
		out.Images = append([]string(nil), p.Images...)
	}
	return out
}

// MaxLineQuantity caps the units of a single product in one cart.
const MaxLineQuantity = 99

// LineItem pairs a product snapshot with a quantity in [1, MaxLineQuantity].
type LineItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal is the effective unit price times quantity.
func (i LineItem) LineTotal() decimal.Decimal {
	return i.Product.EffectivePrice().Mul(decimal.NewFromInt(int64(i.Quantity)))
}

func (i LineItem) validate() error {
	if err := i.Product.Validate(); err != nil {
		return err
	}
	if i.Quantity < 1 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1").
			WithDetails(map[string]any{"product_id": i.Product.ID, "quantity": i.Quantity})
	}
	if i.Quantity > MaxLineQuantity {
		return quantityCapError(i.Product.ID, i.Quantity)
	}
	return nil
}

func quantityCapError(productID string, quantity int) error {
	return pkgerrors.Newf(pkgerrors.CodeValidation, "quantity cannot exceed %d per product", MaxLineQuantity).
		WithDetails(map[string]any{"product_id": productID, "quantity": quantity, "max": MaxLineQuantity})
}

// mergeQuantity adds two positive quantities, refusing totals above the cap
// before the addition can overflow.
func mergeQuantity(productID string, have, add int) (int, error) {
	if add > MaxLineQuantity-have {
		return 0, quantityCapError(productID, add)
	}
	return have + add, nil
}

// Totals are the derived monetary fields of a cart.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// Equal compares totals by value.
func (t Totals) Equal(other Totals) bool {
	return t.Subtotal.Equal(other.Subtotal) &&
		t.Shipping.Equal(other.Shipping) &&
		t.Tax.Equal(other.Tax) &&
		t.Total.Equal(other.Total)
}

func zeroTotals() Totals {
	return Totals{
		Subtotal: decimal.Zero,
		Shipping: decimal.Zero,
		Tax:      decimal.Zero,
		Total:    decimal.Zero,
	}
}

// State is an immutable cart snapshot: ordered line items plus derived totals.
// Values handed out by the engine are deep copies.
type State struct {
	Items []LineItem `json:"items"`
	Totals
}

// Empty returns the cart with no items and zero totals.
func Empty() State {
	return State{Items: []LineItem{}, Totals: zeroTotals()}
}

// Find returns the line item for productID, if present.
func (s State) Find(productID string) (LineItem, bool) {
	if idx := s.indexOf(productID); idx >= 0 {
		return s.Items[idx], true
	}
	return LineItem{}, false
}

// ItemCount is the sum of quantities across line items.
func (s State) ItemCount() int {
	count := 0
	for _, item := range s.Items {
		count += item.Quantity
	}
	return count
}

// IsEmpty reports whether the cart holds no line items.
func (s State) IsEmpty() bool {
	return len(s.Items) == 0
}

// Clone deep-copies the state so callers cannot alias engine-owned data.
func (s State) Clone() State {
	out := State{Items: make([]LineItem, len(s.Items)), Totals: s.Totals}
	for i, item := range s.Items {
		out.Items[i] = LineItem{Product: item.Product.clone(), Quantity: item.Quantity}
	}
	return out
}

// Equal compares two states by value, including item order.
func (s State) Equal(other State) bool {
	if len(s.Items) != len(other.Items) || !s.Totals.Equal(other.Totals) {
		return false
	}
	for i := range s.Items {
		a, b := s.Items[i], other.Items[i]
		if a.Quantity != b.Quantity || a.Product.ID != b.Product.ID {
			return false
		}
		if !a.Product.EffectivePrice().Equal(b.Product.EffectivePrice()) || !a.Product.Price.Equal(b.Product.Price) {
			return false
		}
	}
	return true
}

func (s State) indexOf(productID string) int {
	for i, item := range s.Items {
		if item.Product.ID == productID {
			return i
		}
	}
	return -1
}
