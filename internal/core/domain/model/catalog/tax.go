package catalog

import (
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type TaxKind string

const (
	TaxPercentage TaxKind = "PERCENTAGE"
	TaxFixed      TaxKind = "FIXED"
)

// Tax is a rate attached to a product. Percentage values are whole percents
// (8.5 means 8.5%); fixed values are charged per unit of quantity. Inclusive
// taxes are already part of the price.
type Tax struct {
	Name      string
	Kind      TaxKind
	Value     decimal.Decimal
	Inclusive bool
}

func (t Tax) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return errs.NewValueIsRequiredError("tax name")
	}
	if t.Kind != TaxPercentage && t.Kind != TaxFixed {
		return errs.NewValueIsInvalidErrorWithCause("tax kind", fmt.Errorf("unknown tax kind %q", t.Kind))
	}
	if t.Value.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("tax value", fmt.Errorf("%s is negative", t.Value))
	}
	return nil
}

// TaxCharge is a tax applied to an amount.
type TaxCharge struct {
	Tax
	Amount decimal.Decimal
}

// ChosenOption is the snapshot of a selected option kept on cart and order
// lines, so later catalog edits do not rewrite history.
type ChosenOption struct {
	ID    string
	Name  string
	Group string
	Price decimal.Decimal
}
