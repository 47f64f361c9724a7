// Package queries contains read operations of the storefront.
// Queries never change state; handlers either run SQL directly through gorm
// or read aggregates through the narrow reader interfaces below.
package queries

import (
	"context"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

type (
	// OrderReader is the read half of ports.OrderRepository.
	OrderReader interface {
		Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
		GetByNumber(ctx context.Context, number string) (*order.Order, error)
		ListByStatuses(ctx context.Context, statuses ...order.Status) ([]*order.Order, error)
	}

	// CartReader is the read half of ports.CartRepository.
	CartReader interface {
		GetBySession(ctx context.Context, sessionID string) (*cart.Cart, error)
	}
)
