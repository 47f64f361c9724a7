package ports

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// EventPublisher announces committed order changes on the push channel.
// Publishing happens after the transaction commits; a failed publish never
// undoes the change.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, o *order.Order) error
	PublishOrderStatusChanged(ctx context.Context, o *order.Order, change order.StatusChange) error
}
