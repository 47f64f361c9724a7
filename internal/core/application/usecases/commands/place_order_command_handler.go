package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
)

// PlaceOrderCommandHandler creates the order and empties the cart in one
// transaction, then announces the order on the push channel.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, factory, publisher, logger, time.Now)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	factory    services.OrderFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
	clock      Clock
}

func NewPlaceOrderCommandHandler(
	uowFactory UoWFactory,
	factory services.OrderFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
	clock Clock,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		factory:    factory,
		publisher:  publisher,
		logger:     logger.With("component", "place-order"),
		clock:      clock,
	}
}

// Handle fails with cart.ErrCartIsEmpty when the cart has no lines or has
// expired. A failed publish is logged; the order stands.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
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
	c, err := cartRepo.GetBySession(ctx, cmd.SessionID())
	if err != nil {
		return err
	}
	if c.IsExpired(now) {
		return cart.ErrCartIsEmpty
	}

	placed, err := h.factory.Create(cmd.OrderID(), c, cmd.Customer(), cmd.Note(), now)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return err
	}

	c.Clear(now)
	if err = cartRepo.Update(ctx, c); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.PublishOrderCreated(ctx, placed); err != nil {
		h.logger.Error("failed to publish order created", "order", placed.Number(), "error", err)
	}

	return nil
}
