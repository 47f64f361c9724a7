package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/customization"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// lineBuilder checks a configured product against the catalog and prices it.
// Add and update share it so both apply the same rules.
type lineBuilder struct {
	products ports.ProductRepository
	quoter   services.Quoter
}

func (b lineBuilder) build(
	ctx context.Context,
	lineID kernel.UUID,
	productID string,
	quantity decimal.Decimal,
	selection customization.Selection,
	note string,
) (*cart.Line, error) {
	product, err := b.products.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.Available() {
		return nil, fmt.Errorf("%w: %s (%w)", catalog.ErrProductIsUnavailable, product.Name(), errs.ErrValueIsInvalid)
	}
	if err = product.Quantity().Validate(quantity); err != nil {
		return nil, err
	}

	quote := b.quoter.Quote(product, selection, quantity)
	if len(quote.Unknown) > 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"selection",
			fmt.Errorf("unknown options: %s", strings.Join(quote.Unknown, ", ")),
		)
	}
	if err = quote.Validation.Err(); err != nil {
		return nil, err
	}

	return cart.NewLine(lineID, product, quantity, selection, strings.TrimSpace(note), quote.Pricing)
}

// loadOrCreateCart returns the session's cart, emptied when it expired, or a
// new one when the session has none.
func loadOrCreateCart(
	ctx context.Context,
	repo ports.CartRepository,
	sessionID string,
	ttl time.Duration,
	now time.Time,
) (c *cart.Cart, isNew bool, err error) {
	c, err = repo.GetBySession(ctx, sessionID)
	switch {
	case err == nil:
		if c.IsExpired(now) {
			c.Clear(now)
		}
		return c, false, nil
	case errors.Is(err, errs.ErrObjectNotFound):
		c, err = cart.NewCart(kernel.NewUUID(), sessionID, now, ttl)
		return c, true, err
	default:
		return nil, false, err
	}
}

// loadLiveCart returns the session's cart, or ObjectNotFound when there is
// none or it expired.
func loadLiveCart(ctx context.Context, repo ports.CartRepository, sessionID string, now time.Time) (*cart.Cart, error) {
	c, err := repo.GetBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if c.IsExpired(now) {
		return nil, errs.NewObjectNotFoundError("cart", sessionID)
	}
	return c, nil
}
