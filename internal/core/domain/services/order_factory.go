package services

import (
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderFactory turns a cart into an order. The cart is read, never modified;
// clearing it is up to the caller.
type OrderFactory struct {
	taxes TaxCalculator
}

func NewOrderFactory(taxes TaxCalculator) OrderFactory {
	return OrderFactory{taxes: taxes}
}

// Create copies every cart line into the order, merges the per-line taxes and
// estimates the preparation time as the slowest line.
func (f OrderFactory) Create(
	id kernel.UUID,
	c *cart.Cart,
	customer *order.Customer,
	note string,
	now time.Time,
) (*order.Order, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, cart.ErrCartIsEmpty
	}

	lines := make([]order.Line, 0, len(c.Lines()))
	charges := make([][]catalog.TaxCharge, 0, len(c.Lines()))
	prep := 0
	for _, l := range c.Lines() {
		p := l.Pricing()
		lines = append(lines, order.Line{
			ProductID: l.ProductID(),
			Name:      l.ProductName(),
			BasePrice: l.BasePrice(),
			Quantity:  l.Quantity(),
			Options:   l.Options(),
			Note:      l.Note(),
			UnitPrice: p.UnitPrice,
			Subtotal:  p.Subtotal,
			TaxAmount: p.TaxAmount,
			Total:     p.Total,
		})
		charges = append(charges, p.Taxes)
		prep = max(prep, l.PrepTimeMinutes())
	}

	return order.NewOrder(id, lines, f.taxes.Merge(charges...), customer, note, prep, now)
}
