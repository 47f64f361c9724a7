package services

import (
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// TaxCalculator applies product taxes to a line subtotal.
//
// Business rules:
//   - percentage taxes are a share of the subtotal
//   - fixed taxes are charged per unit of quantity
//   - inclusive taxes are already contained in the subtotal; their amount is
//     extracted for the breakdown and not added again
//   - every amount is rounded to cents
type TaxCalculator struct{}

func NewTaxCalculator() TaxCalculator {
	return TaxCalculator{}
}

// Charges returns one charge per tax, in the order the taxes are given.
func (TaxCalculator) Charges(taxes []catalog.Tax, subtotal, quantity decimal.Decimal) []catalog.TaxCharge {
	charges := make([]catalog.TaxCharge, 0, len(taxes))
	for _, t := range taxes {
		var amount decimal.Decimal
		switch t.Kind {
		case catalog.TaxFixed:
			amount = t.Value.Mul(quantity)
		case catalog.TaxPercentage:
			if t.Inclusive {
				amount = subtotal.Mul(t.Value).Div(hundred.Add(t.Value))
			} else {
				amount = subtotal.Mul(t.Value).Div(hundred)
			}
		}
		charges = append(charges, catalog.TaxCharge{Tax: t, Amount: kernel.RoundMoney(amount)})
	}
	return charges
}

// Added sums the charges that increase the price, i.e. the non-inclusive ones.
func (TaxCalculator) Added(charges []catalog.TaxCharge) decimal.Decimal {
	sum := decimal.Zero
	for _, c := range charges {
		if !c.Inclusive {
			sum = sum.Add(c.Amount)
		}
	}
	return sum
}

// Merge adds up charges with the same name, kind, rate and inclusiveness,
// keeping the order of first appearance. Used for the order tax breakdown.
func (TaxCalculator) Merge(groups ...[]catalog.TaxCharge) []catalog.TaxCharge {
	var merged []catalog.TaxCharge
	index := make(map[string]int)
	for _, charges := range groups {
		for _, c := range charges {
			key := c.Name + "|" + string(c.Kind) + "|" + c.Value.String()
			if c.Inclusive {
				key += "|inclusive"
			}
			if i, ok := index[key]; ok {
				merged[i].Amount = merged[i].Amount.Add(c.Amount)
				continue
			}
			index[key] = len(merged)
			merged = append(merged, c)
		}
	}
	return merged
}
