package catalog

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/core/domain/model/customization"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrProductIsNotConstructed is returned by Validate for zero-value products.
var (
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
	ErrProductIsUnavailable    = errors.New("product is not available")
)

// ProductParams carries the raw catalog fields of a product.
type ProductParams struct {
	ID              string
	Slug            string
	Name            string
	Description     string
	BasePrice       decimal.Decimal
	QuantityType    QuantityType
	Unit            string
	Quantity        QuantityRule
	Available       bool
	PrepTimeMinutes int
	Taxes           []Tax
	Customizations  *customization.Tree
}

// Product is a menu item as the storefront sells it.
type Product struct {
	id              string
	slug            string
	name            string
	description     string
	basePrice       decimal.Decimal
	quantityType    QuantityType
	unit            string
	quantity        QuantityRule
	available       bool
	prepTimeMinutes int
	taxes           []Tax
	customizations  *customization.Tree

	isConstructed bool
}

// NewProduct validates p. A nil customization tree means the product has no
// options; a zero quantity rule falls back to DefaultQuantityRule.
func NewProduct(p ProductParams) (*Product, error) {
	product := &Product{
		description:     p.Description,
		unit:            p.Unit,
		available:       p.Available,
		prepTimeMinutes: p.PrepTimeMinutes,
		customizations:  p.Customizations,
		quantity:        p.Quantity,
		isConstructed:   true,
	}
	if product.customizations == nil {
		product.customizations = customization.NewEmptyTree()
	}
	if product.quantity.step.IsZero() {
		product.quantity = DefaultQuantityRule()
	}

	if err := errors.Join(
		product.setID(p.ID),
		product.setSlug(p.Slug),
		product.setName(p.Name),
		product.setBasePrice(p.BasePrice),
		product.setQuantityType(p.QuantityType),
		product.setTaxes(p.Taxes),
	); err != nil {
		return nil, err
	}

	return product, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() string {
	return p.id
}

func (p *Product) Slug() string {
	return p.slug
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) BasePrice() decimal.Decimal {
	return p.basePrice
}

func (p *Product) QuantityType() QuantityType {
	return p.quantityType
}

func (p *Product) Unit() string {
	return p.unit
}

func (p *Product) Quantity() QuantityRule {
	return p.quantity
}

func (p *Product) Available() bool {
	return p.available
}

func (p *Product) PrepTimeMinutes() int {
	return p.prepTimeMinutes
}

func (p *Product) Customizations() *customization.Tree {
	return p.customizations
}

func (p *Product) Taxes() []Tax {
	return append([]Tax(nil), p.taxes...)
}

// Chosen resolves the selected ids into option snapshots. Unknown ids are
// skipped.
func (p *Product) Chosen(selection customization.Selection) []ChosenOption {
	chosen := make([]ChosenOption, 0, selection.Len())
	for _, id := range selection.IDs() {
		opt, ok := p.customizations.Option(id)
		if !ok {
			continue
		}
		group, _ := p.customizations.GroupOf(id)
		chosen = append(chosen, ChosenOption{ID: opt.ID(), Name: opt.Name(), Group: group.Name(), Price: opt.Price()})
	}
	return chosen
}

func (p *Product) setID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.NewValueIsRequiredError("product id")
	}
	p.id = id
	return nil
}

func (p *Product) setSlug(slug string) error {
	if slug == "" {
		slug = p.id
	}
	p.slug = slug
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setBasePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("basePrice", fmt.Errorf("%s is negative", price))
	}
	p.basePrice = price
	return nil
}

func (p *Product) setQuantityType(t QuantityType) error {
	if t == "" {
		t = QuantityUnit
	}
	if !t.IsValid() {
		return errs.NewValueIsInvalidErrorWithCause("quantityType", fmt.Errorf("unknown quantity type %q", t))
	}
	p.quantityType = t
	return nil
}

func (p *Product) setTaxes(taxes []Tax) error {
	var problems []error
	for _, t := range taxes {
		problems = append(problems, t.Validate())
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}
	p.taxes = append([]Tax(nil), taxes...)
	return nil
}
