package ports

import (
	"context"
)

// UnitOfWorkFactory hands out one UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a transaction over carts and orders. Repositories obtained
// from it after Begin share the transaction. Handlers defer Rollback and
// ignore its error once Commit has succeeded.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	CartRepository() CartRepository
}
