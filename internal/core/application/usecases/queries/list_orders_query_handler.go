package queries

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

type ListOrdersQueryHandler struct {
	orders OrderReader
}

func NewListOrdersQueryHandler(orders OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders}
}

// Handle returns snapshots, oldest order first.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]order.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	found, err := h.orders.ListByStatuses(ctx, query.Statuses()...)
	if err != nil {
		return nil, err
	}

	result := make([]order.Snapshot, 0, len(found))
	for _, o := range found {
		result = append(result, o.Snapshot())
	}
	return result, nil
}
