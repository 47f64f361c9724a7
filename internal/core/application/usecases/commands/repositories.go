// Package commands holds the write side of the storefront: cart edits,
// checkout, order status changes and cart expiry. Each handler validates its
// command, opens a unit of work, loads the aggregate, applies the change and
// commits.
package commands

import (
	"context"
	"time"

	"storefront/internal/core/ports"
)

type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// OrderUoW scopes a transaction to the orders table. Status changes use it.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CartUoW scopes a transaction to carts and their lines.
	CartUoW interface {
		TxManager
		CartRepoFactory
	}

	CartUoWFactory interface {
		Create() CartUoW
	}

	// UoW spans carts and orders. Checkout writes the order and clears the
	// cart inside one transaction:
	//
	//	uow := factory.Create()
	//	if err := uow.Begin(ctx); err != nil {
	//	    return err
	//	}
	//	defer uow.Rollback(ctx)
	//
	//	c, err := uow.CartRepository().GetBySession(ctx, sessionID)
	//	...
	//	return uow.Commit(ctx)
	UoW interface {
		TxManager
		CartRepoFactory
		OrderRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)

// Clock returns the current time. Handlers take one so tests control expiry
// and audit timestamps.
type Clock func() time.Time
