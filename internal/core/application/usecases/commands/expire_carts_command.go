package commands

import (
	"errors"

	"storefront/internal/pkg/guard"
)

// ExpireCartsCommand removes carts whose time to live has passed.
// It is parameterless and meant to be run by a scheduler.
type ExpireCartsCommand struct {
	guard guard.ConstructorGuard
}

var ErrExpireCartsCommandIsNotConstructed = errors.New(
	"ExpireCartsCommand must be created via NewExpireCartsCommand constructor",
)

func NewExpireCartsCommand() ExpireCartsCommand {
	return ExpireCartsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ExpireCartsCommand) Validate() error {
	return c.guard.Validate(ErrExpireCartsCommandIsNotConstructed)
}
