package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	ErrOrderHasNoLines = errors.New("order must contain at least one line")
)

// Customer is the optional contact data left at checkout.
type Customer struct {
	Name  string
	Phone string
	Email string
}

// Line is the immutable copy of a cart line taken at checkout.
type Line struct {
	ProductID string
	Name      string
	BasePrice decimal.Decimal
	Quantity  decimal.Decimal
	Options   []catalog.ChosenOption
	Note      string
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// StatusChange is one entry of the audit trail.
type StatusChange struct {
	From  Status
	To    Status
	Actor string
	Notes string
	At    time.Time
}

// Order is the aggregate root of a placed order.
//
// Order follows these invariants:
//   - It has a valid identifier, a human-readable number and at least one line
//   - Lines, taxes and totals never change after creation
//   - Status only moves along the lifecycle and every move is recorded in History
//   - Version grows by one with each status change
type Order struct {
	id              kernel.UUID
	number          string
	status          Status
	lines           []Line
	taxes           []catalog.TaxCharge
	subtotal        decimal.Decimal
	taxAmount       decimal.Decimal
	total           decimal.Decimal
	customer        *Customer
	note            string
	prepTimeMinutes int
	history         []StatusChange
	version         int
	createdAt       time.Time
	updatedAt       time.Time

	isConstructed bool
}

// NewOrderNumber formats the number shown to customers and staff,
// e.g. "ORD-20260314-550E84".
func NewOrderNumber(id kernel.UUID, at time.Time) string {
	return fmt.Sprintf("ORD-%s-%s", at.UTC().Format("20060102"), id.ShortCode())
}

// NewOrder creates an order in Received status.
//
// Totals are derived from the lines and the tax breakdown: the subtotal is the
// sum of line subtotals, the tax amount is the sum of non-inclusive taxes and
// the total is their sum. Inclusive taxes are listed but not added.
//
// Parameters:
//   - id: order identifier
//   - lines: at least one line
//   - taxes: merged tax breakdown of all lines
//   - customer: optional contact data
//   - prepTimeMinutes: estimated preparation time
//   - now: creation time
func NewOrder(
	id kernel.UUID,
	lines []Line,
	taxes []catalog.TaxCharge,
	customer *Customer,
	note string,
	prepTimeMinutes int,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:          Received,
		taxes:           slices.Clone(taxes),
		customer:        customer,
		note:            strings.TrimSpace(note),
		prepTimeMinutes: prepTimeMinutes,
		version:         1,
		createdAt:       now,
		updatedAt:       now,
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	o.number = NewOrderNumber(id, now)
	o.subtotal = decimal.Zero
	for _, l := range o.lines {
		o.subtotal = o.subtotal.Add(l.Subtotal)
	}
	o.taxAmount = decimal.Zero
	for _, t := range o.taxes {
		if !t.Inclusive {
			o.taxAmount = o.taxAmount.Add(t.Amount)
		}
	}
	o.total = o.subtotal.Add(o.taxAmount)

	return o, nil
}

// Snapshot is the full state of an order. Persistence adapters and the
// staff client exchange orders in this form.
type Snapshot struct {
	ID              kernel.UUID
	Number          string
	Status          Status
	Lines           []Line
	Taxes           []catalog.TaxCharge
	Subtotal        decimal.Decimal
	TaxAmount       decimal.Decimal
	Total           decimal.Decimal
	Customer        *Customer
	Note            string
	PrepTimeMinutes int
	History         []StatusChange
	Version         int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Clone returns a deep copy.
func (s Snapshot) Clone() Snapshot {
	c := s
	c.Lines = make([]Line, len(s.Lines))
	for i, l := range s.Lines {
		l.Options = slices.Clone(l.Options)
		c.Lines[i] = l
	}
	c.Taxes = slices.Clone(s.Taxes)
	c.History = slices.Clone(s.History)
	if s.Customer != nil {
		customer := *s.Customer
		c.Customer = &customer
	}
	return c
}

// RestoreOrder rebuilds an order from a snapshot, e.g. a database row.
func RestoreOrder(s Snapshot) (*Order, error) {
	if err := s.Status.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(s.Number) == "" {
		return nil, errs.NewValueIsRequiredError("order number")
	}

	c := s.Clone()
	o := &Order{
		number:          c.Number,
		status:          c.Status,
		taxes:           c.Taxes,
		subtotal:        c.Subtotal,
		taxAmount:       c.TaxAmount,
		total:           c.Total,
		customer:        c.Customer,
		note:            c.Note,
		prepTimeMinutes: c.PrepTimeMinutes,
		history:         c.History,
		version:         c.Version,
		createdAt:       c.CreatedAt,
		updatedAt:       c.UpdatedAt,
		isConstructed:   true,
	}
	if err := errors.Join(o.setID(c.ID), o.setLines(c.Lines)); err != nil {
		return nil, err
	}
	return o, nil
}

// Snapshot returns a deep copy of the order state.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:              o.id,
		Number:          o.number,
		Status:          o.status,
		Lines:           o.lines,
		Taxes:           o.taxes,
		Subtotal:        o.subtotal,
		TaxAmount:       o.taxAmount,
		Total:           o.total,
		Customer:        o.customer,
		Note:            o.note,
		PrepTimeMinutes: o.prepTimeMinutes,
		History:         o.history,
		Version:         o.version,
		CreatedAt:       o.createdAt,
		UpdatedAt:       o.updatedAt,
	}.Clone()
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Number() string {
	return o.number
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Lines() []Line {
	return o.Snapshot().Lines
}

func (o *Order) Total() decimal.Decimal {
	return o.total
}

func (o *Order) Version() int {
	return o.version
}

func (o *Order) History() []StatusChange {
	return slices.Clone(o.history)
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus moves the order to next and records who did it.
//
// Returns *errs.IllegalTransitionError when the lifecycle does not allow the
// move; the order is left untouched in that case.
//
// Example:
//
//	if err := o.ChangeStatus(order.Preparing, "alice", "", time.Now()); err != nil {
//	    return err
//	}
func (o *Order) ChangeStatus(next Status, actor, notes string, at time.Time) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.history = append(o.history, StatusChange{
		From:  o.status,
		To:    newStatus,
		Actor: actor,
		Notes: strings.TrimSpace(notes),
		At:    at,
	})
	o.status = newStatus
	o.updatedAt = at
	o.version++
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrOrderHasNoLines
	}
	for i, l := range lines {
		if !l.Quantity.IsPositive() {
			return errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("lines[%d].quantity", i), fmt.Errorf("%s is not positive", l.Quantity))
		}
	}
	o.lines = make([]Line, len(lines))
	for i, l := range lines {
		l.Options = slices.Clone(l.Options)
		o.lines[i] = l
	}
	return nil
}
