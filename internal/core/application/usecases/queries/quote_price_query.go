package queries

import (
	"context"
	"errors"
	"strings"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/customization"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrQuotePriceQueryIsNotConstructed = errors.New(
	"QuotePriceQuery must be created via NewQuotePriceQuery constructor",
)

// QuotePriceQuery prices a product configuration without touching the cart.
// Invalid selections are still priced; the validation result is part of the
// response so a client can show the messages next to the groups.
//
// Example:
//
//	query, err := NewQuotePriceQuery("latte", customization.NewSelection("large"), decimal.NewFromInt(2))
//	resp, err := handler.Handle(ctx, query)
//	fmt.Println(kernel.FormatPrice(resp.Quote.Pricing.Total), resp.Quote.Validation.Valid)
type QuotePriceQuery struct {
	productID string
	selection customization.Selection
	quantity  decimal.Decimal

	guard guard.ConstructorGuard
}

func NewQuotePriceQuery(
	productID string,
	selection customization.Selection,
	quantity decimal.Decimal,
) (QuotePriceQuery, error) {
	var problems []error
	if strings.TrimSpace(productID) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("product id"))
	}
	if !quantity.IsPositive() {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("quantity", errors.New("must be greater than 0")))
	}
	if err := errors.Join(problems...); err != nil {
		return QuotePriceQuery{}, err
	}

	return QuotePriceQuery{
		productID: productID,
		selection: selection,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q QuotePriceQuery) Validate() error {
	return q.guard.Validate(ErrQuotePriceQueryIsNotConstructed)
}

type QuotePriceQueryResponse struct {
	Product  *catalog.Product
	Quantity decimal.Decimal
	Quote    services.Quote
	// QuantityError is set when the quantity breaks the product's rule.
	QuantityError error
}

type QuotePriceQueryHandler struct {
	products ports.ProductRepository
	quoter   services.Quoter
}

func NewQuotePriceQueryHandler(products ports.ProductRepository, quoter services.Quoter) QuotePriceQueryHandler {
	return QuotePriceQueryHandler{products: products, quoter: quoter}
}

func (h QuotePriceQueryHandler) Handle(ctx context.Context, query QuotePriceQuery) (QuotePriceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return QuotePriceQueryResponse{}, err
	}

	product, err := h.products.Get(ctx, query.productID)
	if err != nil {
		return QuotePriceQueryResponse{}, err
	}

	return QuotePriceQueryResponse{
		Product:       product,
		Quantity:      query.quantity,
		Quote:         h.quoter.Quote(product, query.selection, query.quantity),
		QuantityError: product.Quantity().Validate(query.quantity),
	}, nil
}
