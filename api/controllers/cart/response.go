package cart

import (
	cartdto "github.com/luxtime/luxtime-backend/api/controllers/cart/dto"
	cartsvc "github.com/luxtime/luxtime-backend/internal/cart"
)

func newCart(owner string, state cartsvc.State) cartdto.Cart {
	items := make([]cartdto.CartItem, 0, len(state.Items))
	for _, item := range state.Items {
		var image string
		if len(item.Product.Images) > 0 {
			image = item.Product.Images[0]
		}
		items = append(items, cartdto.CartItem{
			ProductID:      item.Product.ID,
			Name:           item.Product.Name,
			Brand:          item.Product.Brand,
			Image:          image,
			Price:          item.Product.Price,
			DiscountPrice:  item.Product.DiscountPrice,
			EffectivePrice: item.Product.EffectivePrice(),
			Quantity:       item.Quantity,
			LineTotal:      item.LineTotal(),
		})
	}

	return cartdto.Cart{
		Owner:     owner,
		Items:     items,
		ItemCount: state.ItemCount(),
		Subtotal:  state.Subtotal,
		Shipping:  state.Shipping,
		Tax:       state.Tax,
		Total:     state.Total,
	}
}
