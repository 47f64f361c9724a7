package commands

import (
	"context"
)

type ExpireCartsCommandHandler struct {
	uowFactory CartUoWFactory
	clock      Clock
}

func NewExpireCartsCommandHandler(uowFactory CartUoWFactory, clock Clock) ExpireCartsCommandHandler {
	return ExpireCartsCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns the number of removed carts.
func (h *ExpireCartsCommandHandler) Handle(ctx context.Context, cmd ExpireCartsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.CartRepository().DeleteExpired(ctx, h.clock())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
