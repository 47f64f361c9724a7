package ports

import (
	"context"

	"storefront/internal/core/domain/model/catalog"
)

// ProductRepository is the read-only source of the menu.
type ProductRepository interface {
	// Get finds a product by id or slug. A product whose catalog entry is
	// malformed is reported with errs.ErrStructureIsInvalid.
	Get(ctx context.Context, idOrSlug string) (*catalog.Product, error)

	// List returns every well-formed product in menu order.
	List(ctx context.Context) ([]*catalog.Product, error)
}
