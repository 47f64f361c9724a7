package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand turns the session's cart into an order.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewPlaceOrderCommand(orderID, "sess-1", &order.Customer{Name: "Ada"}, "")
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	sessionID string
	customer  *order.Customer
	note      string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a checkout command. The customer is optional;
// a customer with only blank fields is dropped.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	sessionID string,
	customer *order.Customer,
	note string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		customer: normalizeCustomer(customer),
		note:     note,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSessionID(sessionID),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c PlaceOrderCommand) SessionID() string {
	return c.sessionID
}

func (c PlaceOrderCommand) Customer() *order.Customer {
	return c.customer
}

func (c PlaceOrderCommand) Note() string {
	return c.note
}

func (c *PlaceOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *PlaceOrderCommand) setSessionID(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return ErrSessionIsRequired
	}
	c.sessionID = sessionID
	return nil
}

func normalizeCustomer(c *order.Customer) *order.Customer {
	if c == nil {
		return nil
	}
	n := order.Customer{
		Name:  strings.TrimSpace(c.Name),
		Phone: strings.TrimSpace(c.Phone),
		Email: strings.TrimSpace(c.Email),
	}
	if n == (order.Customer{}) {
		return nil
	}
	return &n
}
