package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// ChangeOrderStatusCommandHandler is the authoritative side of a status
// change: the transition is checked against the stored order, persisted with
// a version check and announced after commit.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
	clock      Clock
}

func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
	clock Clock,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "change-order-status"),
		clock:      clock,
	}
}

// Handle returns the updated order. Illegal transitions fail with
// errs.ErrIllegalTransition and concurrent edits with errs.ErrVersionIsInvalid.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.ChangeStatus(cmd.Target(), cmd.Actor(), cmd.Notes(), h.clock()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	history := o.History()
	change := history[len(history)-1]
	if err = h.publisher.PublishOrderStatusChanged(ctx, o, change); err != nil {
		h.logger.Error("failed to publish status change",
			"order", o.Number(), "from", change.From, "to", change.To, "error", err)
	}

	h.logger.Info("order status changed", "order", o.Number(), "from", change.From, "to", change.To, "actor", change.Actor)
	return o, nil
}
