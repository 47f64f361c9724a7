package queries

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

type GetOrderQueryHandler struct {
	orders OrderReader
}

func NewGetOrderQueryHandler(orders OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (order.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	var (
		o   *order.Order
		err error
	)
	if id, ok := query.ID(); ok {
		o, err = h.orders.Get(ctx, id)
	} else {
		o, err = h.orders.GetByNumber(ctx, query.Number())
	}
	if err != nil {
		return order.Snapshot{}, err
	}

	return o.Snapshot(), nil
}
