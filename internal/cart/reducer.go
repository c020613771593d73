package cart

import (
	"strings"

	pkgerrors "github.com/luxtime/luxtime-backend/pkg/errors"
)

// Command names reported to notifiers and metrics.
const (
	CommandAddItem        = "add_item"
	CommandRemoveItem     = "remove_item"
	CommandUpdateQuantity = "update_quantity"
	CommandClear          = "clear"
	CommandLoad           = "load"
)

// Command is a single cart mutation. Implementations never modify the items
// they are given.
type Command interface {
	Name() string
	nextItems(items []LineItem) ([]LineItem, error)
}

// AddItem merges Quantity into the existing line for Product.ID, or appends a
// new line. A zero quantity means one. The snapshot captured by the first add
// is kept on merge.
type AddItem struct {
	Product  Product
	Quantity int
}

func (AddItem) Name() string { return CommandAddItem }

func (c AddItem) nextItems(items []LineItem) ([]LineItem, error) {
	qty := c.Quantity
	if qty == 0 {
		qty = 1
	}
	if qty < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive").
			WithDetails(map[string]any{"product_id": c.Product.ID, "quantity": c.Quantity})
	}
	if err := c.Product.Validate(); err != nil {
		return nil, err
	}

	next := copyItems(items, 1)
	for i := range next {
		if next[i].Product.ID == c.Product.ID {
			merged, err := mergeQuantity(c.Product.ID, next[i].Quantity, qty)
			if err != nil {
				return nil, err
			}
			next[i].Quantity = merged
			return next, nil
		}
	}
	if qty > MaxLineQuantity {
		return nil, quantityCapError(c.Product.ID, qty)
	}
	return append(next, LineItem{Product: c.Product.clone(), Quantity: qty}), nil
}

// RemoveItem drops the line for ProductID. Removing an absent product is a no-op.
type RemoveItem struct {
	ProductID string
}

func (RemoveItem) Name() string { return CommandRemoveItem }

func (c RemoveItem) nextItems(items []LineItem) ([]LineItem, error) {
	if err := requireProductID(c.ProductID); err != nil {
		return nil, err
	}
	next := make([]LineItem, 0, len(items))
	for _, item := range items {
		if item.Product.ID != c.ProductID {
			next = append(next, item)
		}
	}
	return next, nil
}

// UpdateQuantity sets the quantity of an existing line, clamped to at least one.
// It never removes a line and ignores unknown products. Quantities above
// MaxLineQuantity are rejected.
type UpdateQuantity struct {
	ProductID string
	Quantity  int
}

func (UpdateQuantity) Name() string { return CommandUpdateQuantity }

func (c UpdateQuantity) nextItems(items []LineItem) ([]LineItem, error) {
	if err := requireProductID(c.ProductID); err != nil {
		return nil, err
	}
	qty := c.Quantity
	if qty < 1 {
		qty = 1
	}
	if qty > MaxLineQuantity {
		return nil, quantityCapError(c.ProductID, qty)
	}
	next := copyItems(items, 0)
	for i := range next {
		if next[i].Product.ID == c.ProductID {
			next[i].Quantity = qty
		}
	}
	return next, nil
}

// ClearCart empties the cart.
type ClearCart struct{}

func (ClearCart) Name() string { return CommandClear }

func (ClearCart) nextItems([]LineItem) ([]LineItem, error) {
	return []LineItem{}, nil
}

// LoadCart replaces the cart wholesale. Items are validated, lines sharing a
// product id are merged and totals are always recomputed; stored totals are
// never trusted.
type LoadCart struct {
	State State
}

func (LoadCart) Name() string { return CommandLoad }

func (c LoadCart) nextItems([]LineItem) ([]LineItem, error) {
	next := make([]LineItem, 0, len(c.State.Items))
	index := make(map[string]int, len(c.State.Items))
	for _, item := range c.State.Items {
		if err := item.validate(); err != nil {
			return nil, err
		}
		if at, ok := index[item.Product.ID]; ok {
			merged, err := mergeQuantity(item.Product.ID, next[at].Quantity, item.Quantity)
			if err != nil {
				return nil, err
			}
			next[at].Quantity = merged
			continue
		}
		index[item.Product.ID] = len(next)
		next = append(next, LineItem{Product: item.Product.clone(), Quantity: item.Quantity})
	}
	return next, nil
}

// Reducer applies commands to cart states and recomputes totals.
type Reducer struct {
	pricing Pricing
}

func NewReducer(pricing Pricing) Reducer {
	return Reducer{pricing: pricing}
}

// Pricing returns the policy the reducer computes totals with.
func (r Reducer) Pricing() Pricing {
	return r.pricing
}

// Apply returns the state produced by cmd. On error the input state is returned
// unchanged alongside a validation error.
func (r Reducer) Apply(state State, cmd Command) (State, error) {
	if cmd == nil {
		return state, pkgerrors.New(pkgerrors.CodeValidation, "cart command is required")
	}
	items, err := cmd.nextItems(state.Items)
	if err != nil {
		return state, err
	}
	totals, err := r.pricing.Calculate(items)
	if err != nil {
		return state, err
	}
	return State{Items: items, Totals: totals}, nil
}

func requireProductID(id string) error {
	if strings.TrimSpace(id) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	return nil
}

func copyItems(items []LineItem, extra int) []LineItem {
	next := make([]LineItem, len(items), len(items)+extra)
	copy(next, items)
	return next
}
