package customization

import (
	"github.com/shopspring/decimal"
)

// Option is a selectable leaf. Price is the surcharge added to the product base
// price per unit when the option is selected.
type Option struct {
	id           string
	name         string
	description  string
	price        decimal.Decimal
	displayOrder int
}

func (o Option) ID() string {
	return o.id
}

func (o Option) Name() string {
	return o.name
}

func (o Option) Description() string {
	return o.description
}

func (o Option) Price() decimal.Decimal {
	return o.price
}

func (o Option) DisplayOrder() int {
	return o.displayOrder
}
