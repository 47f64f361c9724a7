package queries

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// GetCartQueryResponse is the cart as the customer sees it. A session without
// a cart, or with an expired one, gets an empty response.
type GetCartQueryResponse struct {
	Lines     []*cart.Line
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
	ExpiresAt *time.Time
}

type GetCartQueryHandler struct {
	carts CartReader
	clock func() time.Time
}

func NewGetCartQueryHandler(carts CartReader, clock func() time.Time) GetCartQueryHandler {
	return GetCartQueryHandler{carts: carts, clock: clock}
}

func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	empty := GetCartQueryResponse{
		Lines:     []*cart.Line{},
		Subtotal:  decimal.Zero,
		TaxAmount: decimal.Zero,
		Total:     decimal.Zero,
	}

	c, err := h.carts.GetBySession(ctx, query.SessionID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return empty, nil
	}
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	if c.IsExpired(h.clock()) {
		return empty, nil
	}

	expiresAt := c.ExpiresAt()
	return GetCartQueryResponse{
		Lines:     c.Lines(),
		Subtotal:  c.Subtotal(),
		TaxAmount: c.TaxAmount(),
		Total:     c.Total(),
		ExpiresAt: &expiresAt,
	}, nil
}
