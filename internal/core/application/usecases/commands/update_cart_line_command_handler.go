package commands

import (
	"context"

	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
)

// UpdateCartLineCommandHandler re-validates and re-prices a line against the
// current catalog entry of its product.
type UpdateCartLineCommandHandler struct {
	uowFactory CartUoWFactory
	lines      lineBuilder
	clock      Clock
}

func NewUpdateCartLineCommandHandler(
	uowFactory CartUoWFactory,
	products ports.ProductRepository,
	quoter services.Quoter,
	clock Clock,
) UpdateCartLineCommandHandler {
	return UpdateCartLineCommandHandler{
		uowFactory: uowFactory,
		lines:      lineBuilder{products: products, quoter: quoter},
		clock:      clock,
	}
}

func (h *UpdateCartLineCommandHandler) Handle(ctx context.Context, cmd UpdateCartLineCommand) error {
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

	current, err := c.Line(cmd.LineID())
	if err != nil {
		return err
	}

	line, err := h.lines.build(ctx, current.ID(), current.ProductID(), cmd.Quantity(), cmd.Selection(), cmd.Note())
	if err != nil {
		return err
	}

	if err = c.ReplaceLine(line, now); err != nil {
		return err
	}

	if err = cartRepo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
