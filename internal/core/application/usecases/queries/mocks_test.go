package queries_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/customization"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderReader) GetByNumber(ctx context.Context, number string) (*order.Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderReader) ListByStatuses(ctx context.Context, statuses ...order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, statuses)
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockCartReader struct{ mock.Mock }

func (m *MockCartReader) GetBySession(ctx context.Context, sessionID string) (*cart.Cart, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Get(ctx context.Context, idOrSlug string) (*catalog.Product, error) {
	args := m.Called(ctx, idOrSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context) ([]*catalog.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*catalog.Product), args.Error(1)
}

func product(t *testing.T, id string, available bool) *catalog.Product {
	t.Helper()
	tree, err := customization.NewFlatTree([]customization.FlatItem{
		{ID: id + "-s", Name: "Small", Kind: customization.KindSize, Price: d("0"), Required: true, MinSelections: 1, MaxSelections: 1},
		{ID: id + "-l", Name: "Large", Kind: customization.KindSize, Price: d("1.00"), Required: true, MinSelections: 1, MaxSelections: 1},
	})
	require.NoError(t, err)

	rule, err := catalog.NewQuantityRule(d("1"), d("5"), d("1"))
	require.NoError(t, err)

	p, err := catalog.NewProduct(catalog.ProductParams{
		ID:             id,
		Name:           "Product " + id,
		BasePrice:      d("4.00"),
		Quantity:       rule,
		Available:      available,
		Customizations: tree,
	})
	require.NoError(t, err)
	return p
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	p := product(t, "tea", true)
	sel := customization.NewSelection("tea-s")
	quoter := services.NewQuoter(services.NewPriceCalculator(), services.NewTaxCalculator())

	c, err := cart.NewCart(kernel.NewUUID(), "sess", now, cart.DefaultTTL)
	require.NoError(t, err)
	line, err := cart.NewLine(kernel.NewUUID(), p, d("1"), sel, "", quoter.Quote(p, sel, d("1")).Pricing)
	require.NoError(t, err)
	require.NoError(t, c.AddLine(line, now))

	o, err := services.NewOrderFactory(services.NewTaxCalculator()).Create(kernel.NewUUID(), c, nil, "", now)
	require.NoError(t, err)
	return o
}
