package cart

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/customization"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Pricing is the computed price of a line.
type Pricing struct {
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
	Taxes     []catalog.TaxCharge
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// Line is one configured product in the cart.
type Line struct {
	id              kernel.UUID
	productID       string
	productName     string
	basePrice       decimal.Decimal
	quantity        decimal.Decimal
	selection       customization.Selection
	options         []catalog.ChosenOption
	note            string
	prepTimeMinutes int
	pricing         Pricing
}

// NewLine snapshots the product data the line needs after the catalog changes.
func NewLine(
	id kernel.UUID,
	product *catalog.Product,
	quantity decimal.Decimal,
	selection customization.Selection,
	note string,
	pricing Pricing,
) (*Line, error) {
	if err := product.Validate(); err != nil {
		return nil, err
	}

	line := &Line{
		productID:       product.ID(),
		productName:     product.Name(),
		basePrice:       product.BasePrice(),
		selection:       selection,
		options:         product.Chosen(selection),
		note:            note,
		prepTimeMinutes: product.PrepTimeMinutes(),
		pricing:         pricing,
	}

	if err := errors.Join(
		line.setID(id),
		line.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return line, nil
}

// RestoreLine rebuilds a line from persistence without recomputing anything.
func RestoreLine(
	id kernel.UUID,
	productID, productName string,
	basePrice, quantity decimal.Decimal,
	selection customization.Selection,
	options []catalog.ChosenOption,
	note string,
	prepTimeMinutes int,
	pricing Pricing,
) (*Line, error) {
	line := &Line{
		productID:       productID,
		productName:     productName,
		basePrice:       basePrice,
		selection:       selection,
		options:         options,
		note:            note,
		prepTimeMinutes: prepTimeMinutes,
		pricing:         pricing,
	}
	if err := errors.Join(line.setID(id), line.setQuantity(quantity)); err != nil {
		return nil, err
	}
	return line, nil
}

func (l *Line) ID() kernel.UUID {
	return l.id
}

func (l *Line) ProductID() string {
	return l.productID
}

func (l *Line) ProductName() string {
	return l.productName
}

func (l *Line) BasePrice() decimal.Decimal {
	return l.basePrice
}

func (l *Line) Quantity() decimal.Decimal {
	return l.quantity
}

func (l *Line) Selection() customization.Selection {
	return l.selection
}

func (l *Line) Options() []catalog.ChosenOption {
	return append([]catalog.ChosenOption(nil), l.options...)
}

func (l *Line) Note() string {
	return l.note
}

func (l *Line) PrepTimeMinutes() int {
	return l.prepTimeMinutes
}

func (l *Line) Pricing() Pricing {
	return l.pricing
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setQuantity(q decimal.Decimal) error {
	if !q.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%s is not positive", q))
	}
	l.quantity = q
	return nil
}
