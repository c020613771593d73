package cart

import (
	"context"

	cartdto "github.com/luxtime/luxtime-backend/api/controllers/cart/dto"
	cartsvc "github.com/luxtime/luxtime-backend/internal/cart"
)

// toLoadState resolves every requested line against the catalog so a replaced
// cart never carries client supplied prices. Totals are left for the engine.
func toLoadState(ctx context.Context, products ProductSource, payload cartdto.ReplaceCartRequest) (cartsvc.State, error) {
	items := make([]cartsvc.LineItem, 0, len(payload.Items))
	for _, item := range payload.Items {
		product, err := products.CartProduct(ctx, item.ProductID)
		if err != nil {
			return cartsvc.State{}, err
		}
		items = append(items, cartsvc.LineItem{Product: product, Quantity: item.Quantity})
	}
	return cartsvc.State{Items: items}, nil
}
