package catalogrepo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

// YAMLProductRepository implements ports.ProductRepository over a catalog
// document loaded into memory.
type YAMLProductRepository struct {
	products []*catalog.Product
	byKey    map[string]*catalog.Product
	broken   map[string]error
}

// Load reads and parses the catalog file at path.
func Load(path string, logger *slog.Logger) (*YAMLProductRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data, logger)
}

// Parse builds a repository from a catalog document. Unknown fields fail the
// whole document; a product that cannot be built is logged and remembered as
// broken.
func Parse(data []byte, logger *slog.Logger) (*YAMLProductRepository, error) {
	var file catalogFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	log := logger.With("component", "catalog")
	r := &YAMLProductRepository{
		products: make([]*catalog.Product, 0, len(file.Products)),
		byKey:    make(map[string]*catalog.Product, 2*len(file.Products)),
		broken:   make(map[string]error),
	}

	for i, dto := range file.Products {
		path := fmt.Sprintf("products[%d]", i)
		if strings.TrimSpace(dto.ID) == "" {
			log.Warn("skipping catalog entry without id", "path", path)
			continue
		}
		if _, dup := r.byKey[dto.ID]; dup {
			r.markBroken(log, dto, errs.NewStructureIsInvalidError(path+".id",
				fmt.Errorf("duplicate product id %q", dto.ID)))
			continue
		}

		product, err := dto.toDomain(path)
		if err != nil {
			r.markBroken(log, dto, err)
			continue
		}

		r.products = append(r.products, product)
		r.byKey[product.ID()] = product
		r.byKey[product.Slug()] = product
	}

	log.Info("catalog loaded", "products", len(r.products), "broken", len(r.broken))
	return r, nil
}

func (r *YAMLProductRepository) markBroken(log *slog.Logger, dto productDTO, err error) {
	log.Error("catalog entry is malformed", "product", dto.ID, "error", err)
	r.broken[dto.ID] = err
	if dto.Slug != "" {
		r.broken[dto.Slug] = err
	}
}

// Get finds a product by id or slug.
func (r *YAMLProductRepository) Get(_ context.Context, idOrSlug string) (*catalog.Product, error) {
	if p, ok := r.byKey[idOrSlug]; ok {
		return p, nil
	}
	if err, ok := r.broken[idOrSlug]; ok {
		return nil, err
	}
	return nil, errs.NewObjectNotFoundError("product", idOrSlug)
}

// List returns the well-formed products in file order.
func (r *YAMLProductRepository) List(_ context.Context) ([]*catalog.Product, error) {
	return append([]*catalog.Product(nil), r.products...), nil
}
