package cart

import (
	pkgerrors "github.com/luxtime/luxtime-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

// taxPlaces is the precision tax is rounded to (half away from zero).
const taxPlaces = 2

// Pricing holds the shipping and tax policy applied to every cart.
type Pricing struct {
	FreeShippingThreshold decimal.Decimal
	ShippingFee           decimal.Decimal
	TaxRate               decimal.Decimal
}

// DefaultPricing is free shipping above 50,000, a flat 250 fee below it and 7.5% tax.
func DefaultPricing() Pricing {
	return Pricing{
		FreeShippingThreshold: decimal.NewFromInt(50000),
		ShippingFee:           decimal.NewFromInt(250),
		TaxRate:               decimal.New(75, -3),
	}
}

// NewPricing validates and returns a pricing policy.
func NewPricing(freeShippingThreshold, shippingFee, taxRate decimal.Decimal) (Pricing, error) {
	p := Pricing{
		FreeShippingThreshold: freeShippingThreshold,
		ShippingFee:           shippingFee,
		TaxRate:               taxRate,
	}
	if err := p.Validate(); err != nil {
		return Pricing{}, err
	}
	return p, nil
}

func (p Pricing) Validate() error {
	if p.FreeShippingThreshold.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "free shipping threshold cannot be negative")
	}
	if p.ShippingFee.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "shipping fee cannot be negative")
	}
	if p.TaxRate.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "tax rate cannot be negative")
	}
	return nil
}

// Calculate derives subtotal, shipping, tax and total from items.
// An empty list yields all-zero totals. Shipping is waived only when the
// subtotal strictly exceeds the threshold, and tax never applies to shipping.
func (p Pricing) Calculate(items []LineItem) (Totals, error) {
	if len(items) == 0 {
		return zeroTotals(), nil
	}

	subtotal := decimal.Zero
	for _, item := range items {
		if err := item.validate(); err != nil {
			return Totals{}, err
		}
		subtotal = subtotal.Add(item.LineTotal())
	}

	shipping := p.ShippingFee
	if subtotal.GreaterThan(p.FreeShippingThreshold) {
		shipping = decimal.Zero
	}
	tax := subtotal.Mul(p.TaxRate).Round(taxPlaces)

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}, nil
}
