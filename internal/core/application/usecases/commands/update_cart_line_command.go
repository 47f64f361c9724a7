package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/customization"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateCartLineCommandIsNotConstructed = errors.New(
	"UpdateCartLineCommand must be created via NewUpdateCartLineCommand constructor",
)

// UpdateCartLineCommand replaces quantity, selection and note of a cart line.
// The product stays the same.
type UpdateCartLineCommand struct { //nolint:recvcheck //using for validation
	sessionID string
	lineID    kernel.UUID
	quantity  decimal.Decimal
	selection customization.Selection
	note      string

	guard guard.ConstructorGuard
}

func NewUpdateCartLineCommand(
	sessionID string,
	lineID kernel.UUID,
	quantity decimal.Decimal,
	selection customization.Selection,
	note string,
) (UpdateCartLineCommand, error) {
	cmd := UpdateCartLineCommand{
		selection: selection,
		note:      note,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setLineID(lineID),
		cmd.setQuantity(quantity),
	); err != nil {
		return UpdateCartLineCommand{}, err
	}

	return cmd, nil
}

func (c UpdateCartLineCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartLineCommandIsNotConstructed)
}

func (c UpdateCartLineCommand) SessionID() string {
	return c.sessionID
}

func (c UpdateCartLineCommand) LineID() kernel.UUID {
	return c.lineID
}

func (c UpdateCartLineCommand) Quantity() decimal.Decimal {
	return c.quantity
}

func (c UpdateCartLineCommand) Selection() customization.Selection {
	return c.selection
}

func (c UpdateCartLineCommand) Note() string {
	return c.note
}

func (c *UpdateCartLineCommand) setSessionID(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return ErrSessionIsRequired
	}
	c.sessionID = sessionID
	return nil
}

func (c *UpdateCartLineCommand) setLineID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.lineID = id
	return nil
}

func (c *UpdateCartLineCommand) setQuantity(q decimal.Decimal) error {
	if !q.IsPositive() {
		return ErrQuantityIsNotPositive
	}
	c.quantity = q
	return nil
}
