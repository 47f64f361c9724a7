package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
	ErrActorIsRequired = errs.NewValueIsRequiredError("actor")
)

// ChangeOrderStatusCommand moves an order along its lifecycle on behalf of a
// staff member.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status
	actor   string
	notes   string

	guard guard.ConstructorGuard
}

func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	target order.Status,
	actor, notes string,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		notes: strings.TrimSpace(notes),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
		cmd.setActor(actor),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}

func (c ChangeOrderStatusCommand) Actor() string {
	return c.actor
}

func (c ChangeOrderStatusCommand) Notes() string {
	return c.notes
}

func (c *ChangeOrderStatusCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *ChangeOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}

func (c *ChangeOrderStatusCommand) setActor(actor string) error {
	if strings.TrimSpace(actor) == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
