package queries

import (
	"errors"
	"slices"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery returns the orders in the given statuses. Without statuses
// it returns the active ones (received, preparing, ready), which is what the
// kitchen dashboard shows.
//
// Example:
//
//	query, err := NewListOrdersQuery(order.Ready)
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	statuses []order.Status

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(statuses ...order.Status) (ListOrdersQuery, error) {
	for _, s := range statuses {
		if err := s.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}
	if len(statuses) == 0 {
		statuses = order.ActiveStatuses()
	}
	return ListOrdersQuery{
		statuses: slices.Clone(statuses),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Statuses() []order.Status {
	return slices.Clone(q.statuses)
}
