package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
)

// CartRepository stores server-side carts, one per session.
type CartRepository interface {
	// GetBySession returns the cart of a session, expired or not.
	// errs.ErrObjectNotFound is returned when the session has no cart.
	GetBySession(ctx context.Context, sessionID string) (*cart.Cart, error)

	Add(ctx context.Context, aggregate *cart.Cart) error

	// Update replaces the stored lines of the cart.
	Update(ctx context.Context, aggregate *cart.Cart) error

	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteExpired removes every cart that expired before now and reports
	// how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
