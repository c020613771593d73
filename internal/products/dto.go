package product

import (
	"github.com/luxtime/luxtime-backend/internal/cart"
	"github.com/luxtime/luxtime-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

// ProductDTO is the catalog payload returned to clients.
type ProductDTO struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Brand            string           `json:"brand"`
	Price            decimal.Decimal  `json:"price"`
	DiscountPrice    *decimal.Decimal `json:"discount_price,omitempty"`
	Description      string           `json:"description"`
	ShortDescription string           `json:"short_description"`
	Images           []string         `json:"images"`
	Styles           []string         `json:"styles"`
	Featured         bool             `json:"featured"`
	Bestseller       bool             `json:"bestseller"`
	NewArrival       bool             `json:"new_arrival"`
	Specifications   SpecificationDTO `json:"specifications"`
}

// SpecificationDTO carries the technical sheet of a watch.
type SpecificationDTO struct {
	Reference     string `json:"reference"`
	CaseMaterial  string `json:"case_material"`
	CaseDiameter  string `json:"case_diameter"`
	Movement      string `json:"movement"`
	DialColor     string `json:"dial_color"`
	StrapMaterial string `json:"strap_material"`
}

// EffectivePrice mirrors the cart rule: a non-zero discount replaces the price.
func (p ProductDTO) EffectivePrice() decimal.Decimal {
	return p.CartProduct().EffectivePrice()
}

// CartProduct is the snapshot a cart line captures for this product.
func (p ProductDTO) CartProduct() cart.Product {
	out := cart.Product{
		ID:     p.ID,
		Name:   p.Name,
		Brand:  p.Brand,
		Price:  p.Price,
		Images: append([]string(nil), p.Images...),
	}
	if p.DiscountPrice != nil {
		discount := *p.DiscountPrice
		out.DiscountPrice = &discount
	}
	return out
}

func dtoFromModel(m models.Product) ProductDTO {
	return ProductDTO{
		ID:               m.ID,
		Name:             m.Name,
		Brand:            m.Brand,
		Price:            m.Price,
		DiscountPrice:    m.DiscountPrice,
		Description:      m.Description,
		ShortDescription: m.ShortDescription,
		Images:           nonNil(m.Images),
		Styles:           nonNil(m.Styles),
		Featured:         m.Featured,
		Bestseller:       m.Bestseller,
		NewArrival:       m.NewArrival,
		Specifications: SpecificationDTO{
			Reference:     m.Reference,
			CaseMaterial:  m.CaseMaterial,
			CaseDiameter:  m.CaseDiameter,
			Movement:      m.Movement,
			DialColor:     m.DialColor,
			StrapMaterial: m.StrapMaterial,
		},
	}
}

func modelFromDTO(p ProductDTO, position int) models.Product {
	return models.Product{
		ID:               p.ID,
		Name:             p.Name,
		Brand:            p.Brand,
		Price:            p.Price,
		DiscountPrice:    p.DiscountPrice,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		Images:           p.Images,
		Styles:           p.Styles,
		Reference:        p.Specifications.Reference,
		CaseMaterial:     p.Specifications.CaseMaterial,
		CaseDiameter:     p.Specifications.CaseDiameter,
		Movement:         p.Specifications.Movement,
		DialColor:        p.Specifications.DialColor,
		StrapMaterial:    p.Specifications.StrapMaterial,
		Featured:         p.Featured,
		Bestseller:       p.Bestseller,
		NewArrival:       p.NewArrival,
		Position:         position,
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return append([]string(nil), values...)
}
