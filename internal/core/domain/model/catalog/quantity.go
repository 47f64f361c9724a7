package catalog

import (
	"fmt"

	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// QuantityType is the unit family a product is sold in.
type QuantityType string

const (
	QuantityUnit    QuantityType = "UNIT"
	QuantityWeight  QuantityType = "WEIGHT"
	QuantityVolume  QuantityType = "VOLUME"
	QuantityServing QuantityType = "SERVING"
)

func (q QuantityType) IsValid() bool {
	switch q {
	case QuantityUnit, QuantityWeight, QuantityVolume, QuantityServing:
		return true
	default:
		return false
	}
}

// QuantityRule bounds the orderable quantity to [Min, Max] on a grid of Step
// starting at Min. A zero Max means no upper bound.
type QuantityRule struct {
	min  decimal.Decimal
	max  decimal.Decimal
	step decimal.Decimal
}

// DefaultQuantityRule allows whole units from 1 upwards.
func DefaultQuantityRule() QuantityRule {
	return QuantityRule{min: decimal.NewFromInt(1), step: decimal.NewFromInt(1)}
}

func NewQuantityRule(minQty, maxQty, step decimal.Decimal) (QuantityRule, error) {
	if !minQty.IsPositive() {
		return QuantityRule{}, errs.NewValueIsInvalidErrorWithCause("minQuantity", fmt.Errorf("%s is not positive", minQty))
	}
	if !step.IsPositive() {
		return QuantityRule{}, errs.NewValueIsInvalidErrorWithCause("stepQuantity", fmt.Errorf("%s is not positive", step))
	}
	if !maxQty.IsZero() && maxQty.LessThan(minQty) {
		return QuantityRule{}, errs.NewValueIsInvalidErrorWithCause("maxQuantity",
			fmt.Errorf("%s is less than min %s", maxQty, minQty))
	}
	return QuantityRule{min: minQty, max: maxQty, step: step}, nil
}

func (r QuantityRule) Min() decimal.Decimal {
	return r.min
}

// Max returns zero when the rule has no upper bound.
func (r QuantityRule) Max() decimal.Decimal {
	return r.max
}

func (r QuantityRule) Step() decimal.Decimal {
	return r.step
}

func (r QuantityRule) bounded() bool {
	return !r.max.IsZero()
}

// Validate rejects quantities outside the bounds or off the step grid.
func (r QuantityRule) Validate(q decimal.Decimal) error {
	if q.LessThan(r.min) || (r.bounded() && q.GreaterThan(r.max)) {
		maxLabel := "unbounded"
		if r.bounded() {
			maxLabel = r.max.String()
		}
		return errs.NewValueIsOutOfRangeError("quantity", q.String(), r.min.String(), maxLabel)
	}
	if !q.Sub(r.min).Mod(r.step).IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%s is not a multiple of %s above %s", q, r.step, r.min))
	}
	return nil
}

// Clamp moves q into the bounds and down onto the step grid.
func (r QuantityRule) Clamp(q decimal.Decimal) decimal.Decimal {
	if q.LessThan(r.min) {
		return r.min
	}
	if r.bounded() && q.GreaterThan(r.max) {
		q = r.max
	}
	steps := q.Sub(r.min).Div(r.step).Floor()
	return r.min.Add(steps.Mul(r.step))
}

// Increment returns the next quantity on the grid, capped at Max.
func (r QuantityRule) Increment(q decimal.Decimal) decimal.Decimal {
	return r.Clamp(r.Clamp(q).Add(r.step))
}

// Decrement returns the previous quantity on the grid, floored at Min.
func (r QuantityRule) Decrement(q decimal.Decimal) decimal.Decimal {
	return r.Clamp(r.Clamp(q).Sub(r.step))
}
