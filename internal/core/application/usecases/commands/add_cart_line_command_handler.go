package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
)

// AddCartLineCommandHandler validates the configured product against the
// catalog, prices it and appends it to the session's cart. A session without
// a cart gets one; an expired cart is emptied first.
type AddCartLineCommandHandler struct {
	uowFactory CartUoWFactory
	lines      lineBuilder
	ttl        time.Duration
	clock      Clock
}

func NewAddCartLineCommandHandler(
	uowFactory CartUoWFactory,
	products ports.ProductRepository,
	quoter services.Quoter,
	ttl time.Duration,
	clock Clock,
) AddCartLineCommandHandler {
	return AddCartLineCommandHandler{
		uowFactory: uowFactory,
		lines:      lineBuilder{products: products, quoter: quoter},
		ttl:        ttl,
		clock:      clock,
	}
}

// Handle rejects invalid selections before any transaction is opened.
func (h *AddCartLineCommandHandler) Handle(ctx context.Context, cmd AddCartLineCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	line, err := h.lines.build(ctx, cmd.LineID(), cmd.ProductID(), cmd.Quantity(), cmd.Selection(), cmd.Note())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := h.clock()
	cartRepo := uow.CartRepository()
	c, isNew, err := loadOrCreateCart(ctx, cartRepo, cmd.SessionID(), h.ttl, now)
	if err != nil {
		return err
	}

	if err = c.AddLine(line, now); err != nil {
		return err
	}

	if isNew {
		err = cartRepo.Add(ctx, c)
	} else {
		err = cartRepo.Update(ctx, c)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
