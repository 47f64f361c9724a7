package services

import (
	"storefront/internal/core/domain/model/customization"

	"github.com/shopspring/decimal"
)

// Priceable is what PriceCalculator needs to know about a product.
// *catalog.Product implements it.
type Priceable interface {
	BasePrice() decimal.Decimal
	Customizations() *customization.Tree
}

// PriceCalculator computes line totals for configured products.
//
// Option prices are looked up in the product's constraint tree, which indexes
// flat and hierarchical catalogs the same way. Ids missing from the tree add
// nothing.
//
// The quantity is expected to be valid for the product already; the
// calculator does not check bounds or steps.
//
// Example:
//
//	calc := NewPriceCalculator()
//	total := calc.Total(product, customization.NewSelection("large", "oat"), decimal.NewFromInt(3))
type PriceCalculator struct{}

func NewPriceCalculator() PriceCalculator {
	return PriceCalculator{}
}

// OptionsTotal sums the prices of the selected options.
func (PriceCalculator) OptionsTotal(product Priceable, selection customization.Selection) decimal.Decimal {
	tree := product.Customizations()
	sum := decimal.Zero
	if tree == nil {
		return sum
	}
	for _, id := range selection.IDs() {
		if opt, ok := tree.Option(id); ok {
			sum = sum.Add(opt.Price())
		}
	}
	return sum
}

// UnitPrice is the base price plus the selected options.
func (c PriceCalculator) UnitPrice(product Priceable, selection customization.Selection) decimal.Decimal {
	return product.BasePrice().Add(c.OptionsTotal(product, selection))
}

// Total returns (base price + Σ option prices) * quantity.
func (c PriceCalculator) Total(
	product Priceable,
	selection customization.Selection,
	quantity decimal.Decimal,
) decimal.Decimal {
	return c.UnitPrice(product, selection).Mul(quantity)
}
