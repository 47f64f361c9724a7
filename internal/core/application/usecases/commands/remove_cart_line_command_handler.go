package commands

import (
	"context"
)

type RemoveCartLineCommandHandler struct {
	uowFactory CartUoWFactory
	clock      Clock
}

func NewRemoveCartLineCommandHandler(uowFactory CartUoWFactory, clock Clock) RemoveCartLineCommandHandler {
	return RemoveCartLineCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *RemoveCartLineCommandHandler) Handle(ctx context.Context, cmd RemoveCartLineCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := h.clock()
	cartRepo := uow.CartRepository()
	c, err := loadLiveCart(ctx, cartRepo, cmd.SessionID(), now)
	if err != nil {
		return err
	}

	if id, ok := cmd.LineID(); ok {
		if err = c.RemoveLine(id, now); err != nil {
			return err
		}
	} else {
		c.Clear(now)
	}

	if err = cartRepo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
