package queries

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/guard"
)

var ErrListMenuQueryIsNotConstructed = errors.New(
	"ListMenuQuery must be created via NewListMenuQuery constructor",
)

// ListMenuQuery returns the products on the menu. Unavailable products are
// left out unless explicitly asked for.
type ListMenuQuery struct {
	includeUnavailable bool

	guard guard.ConstructorGuard
}

func NewListMenuQuery(includeUnavailable bool) ListMenuQuery {
	return ListMenuQuery{includeUnavailable: includeUnavailable, guard: guard.NewConstructorGuard()}
}

func (q ListMenuQuery) Validate() error {
	return q.guard.Validate(ErrListMenuQueryIsNotConstructed)
}

type ListMenuQueryHandler struct {
	products ports.ProductRepository
}

func NewListMenuQueryHandler(products ports.ProductRepository) ListMenuQueryHandler {
	return ListMenuQueryHandler{products: products}
}

func (h ListMenuQueryHandler) Handle(ctx context.Context, query ListMenuQuery) ([]*catalog.Product, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.products.List(ctx)
	if err != nil {
		return nil, err
	}

	menu := make([]*catalog.Product, 0, len(all))
	for _, p := range all {
		if p.Available() || query.includeUnavailable {
			menu = append(menu, p)
		}
	}
	return menu, nil
}
