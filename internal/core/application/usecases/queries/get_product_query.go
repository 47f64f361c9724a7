package queries

import (
	"context"
	"errors"
	"strings"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrGetProductQueryIsNotConstructed = errors.New(
	"GetProductQuery must be created via NewGetProductQuery constructor",
)

// GetProductQuery finds a product by id or slug.
type GetProductQuery struct {
	idOrSlug string

	guard guard.ConstructorGuard
}

func NewGetProductQuery(idOrSlug string) (GetProductQuery, error) {
	if strings.TrimSpace(idOrSlug) == "" {
		return GetProductQuery{}, errs.NewValueIsRequiredError("product id")
	}
	return GetProductQuery{idOrSlug: idOrSlug, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

func (q GetProductQuery) IDOrSlug() string {
	return q.idOrSlug
}

type GetProductQueryHandler struct {
	products ports.ProductRepository
}

func NewGetProductQueryHandler(products ports.ProductRepository) GetProductQueryHandler {
	return GetProductQueryHandler{products: products}
}

func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (*catalog.Product, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.products.Get(ctx, query.IDOrSlug())
}
