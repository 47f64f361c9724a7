package services

import (
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/customization"
	"storefront/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Quote is the full price of one configured product plus the validation
// result of its selection.
type Quote struct {
	Pricing    cart.Pricing
	Validation customization.Validation
	Unknown    []string
}

// Quoter combines PriceCalculator, TaxCalculator and the selection rules.
type Quoter struct {
	prices PriceCalculator
	taxes  TaxCalculator
}

func NewQuoter(prices PriceCalculator, taxes TaxCalculator) Quoter {
	return Quoter{prices: prices, taxes: taxes}
}

// Quote prices product for selection and quantity. The subtotal is rounded to
// cents before taxes are applied.
func (q Quoter) Quote(product *catalog.Product, selection customization.Selection, quantity decimal.Decimal) Quote {
	subtotal := kernel.RoundMoney(q.prices.Total(product, selection, quantity))
	charges := q.taxes.Charges(product.Taxes(), subtotal, quantity)
	added := q.taxes.Added(charges)

	return Quote{
		Pricing: cart.Pricing{
			UnitPrice: q.prices.UnitPrice(product, selection),
			Subtotal:  subtotal,
			Taxes:     charges,
			TaxAmount: added,
			Total:     subtotal.Add(added),
		},
		Validation: customization.Validate(product.Customizations(), selection),
		Unknown:    product.Customizations().Unknown(selection),
	}
}
