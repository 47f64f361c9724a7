package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/customization"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrAddCartLineCommandIsNotConstructed = errors.New(
		"AddCartLineCommand must be created via NewAddCartLineCommand constructor",
	)
	ErrSessionIsRequired     = errs.NewValueIsRequiredError("session id")
	ErrProductIsRequired     = errs.NewValueIsRequiredError("product id")
	ErrQuantityIsNotPositive = errs.NewValueIsInvalidErrorWithCause("quantity", errors.New("must be greater than 0"))
)

// AddCartLineCommand puts a configured product into the session's cart.
//
// Example:
//
//	cmd, err := NewAddCartLineCommand(kernel.NewUUID(), "sess-1", "latte",
//	    decimal.NewFromInt(2), customization.NewSelection("large", "oat"), "extra hot")
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type AddCartLineCommand struct { //nolint:recvcheck //using for validation
	lineID    kernel.UUID
	sessionID string
	productID string
	quantity  decimal.Decimal
	selection customization.Selection
	note      string

	guard guard.ConstructorGuard
}

func NewAddCartLineCommand(
	lineID kernel.UUID,
	sessionID, productID string,
	quantity decimal.Decimal,
	selection customization.Selection,
	note string,
) (AddCartLineCommand, error) {
	cmd := AddCartLineCommand{
		selection: selection,
		note:      note,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLineID(lineID),
		cmd.setSessionID(sessionID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddCartLineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartLineCommand) Validate() error {
	return c.guard.Validate(ErrAddCartLineCommandIsNotConstructed)
}

func (c AddCartLineCommand) LineID() kernel.UUID {
	return c.lineID
}

func (c AddCartLineCommand) SessionID() string {
	return c.sessionID
}

func (c AddCartLineCommand) ProductID() string {
	return c.productID
}

func (c AddCartLineCommand) Quantity() decimal.Decimal {
	return c.quantity
}

func (c AddCartLineCommand) Selection() customization.Selection {
	return c.selection
}

func (c AddCartLineCommand) Note() string {
	return c.note
}

func (c *AddCartLineCommand) setLineID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.lineID = id
	return nil
}

func (c *AddCartLineCommand) setSessionID(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return ErrSessionIsRequired
	}
	c.sessionID = sessionID
	return nil
}

func (c *AddCartLineCommand) setProductID(productID string) error {
	if strings.TrimSpace(productID) == "" {
		return ErrProductIsRequired
	}
	c.productID = productID
	return nil
}

func (c *AddCartLineCommand) setQuantity(q decimal.Decimal) error {
	if !q.IsPositive() {
		return ErrQuantityIsNotPositive
	}
	c.quantity = q
	return nil
}
