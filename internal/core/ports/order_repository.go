// Package ports defines the contracts between the storefront core and its
// infrastructure: persistence, the catalog source and the event channel.
package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The repository is the authority on order state: writes are versioned so two
// staff members cannot silently overwrite each other's status change.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a status change of an existing order.
	// The stored version must be exactly one behind the aggregate's version,
	// otherwise errs.ErrVersionIsInvalid is returned and nothing is written.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order by its human-readable number,
	// e.g. "ORD-20260314-550E84".
	GetByNumber(ctx context.Context, number string) (*order.Order, error)

	// ListByStatuses returns the orders in any of the given statuses, oldest
	// first. An empty list of statuses returns every order.
	ListByStatuses(ctx context.Context, statuses ...order.Status) ([]*order.Order, error)

	// CountByStatus returns how many orders are in each status.
	CountByStatus(ctx context.Context) (map[order.Status]int, error)
}
