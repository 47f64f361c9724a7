package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/customization"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func clock() commands.Clock {
	return func() time.Time { return now }
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func quoter() services.Quoter {
	return services.NewQuoter(services.NewPriceCalculator(), services.NewTaxCalculator())
}

func latte(t *testing.T, available bool) *catalog.Product {
	t.Helper()
	tree, err := customization.NewFlatTree([]customization.FlatItem{
		{ID: "small", Name: "Small", Kind: customization.KindSize, Price: d("0"), Required: true, MinSelections: 1, MaxSelections: 1},
		{ID: "large", Name: "Large", Kind: customization.KindSize, Price: d("2.00"), Required: true, MinSelections: 1, MaxSelections: 1},
		{ID: "oat", Name: "Oat milk", Kind: customization.KindAddon, Price: d("0.50"), MaxSelections: 2},
	})
	require.NoError(t, err)

	rule, err := catalog.NewQuantityRule(d("1"), d("10"), d("1"))
	require.NoError(t, err)

	p, err := catalog.NewProduct(catalog.ProductParams{
		ID:              "latte",
		Name:            "Latte",
		BasePrice:       d("3.50"),
		Quantity:        rule,
		Available:       available,
		PrepTimeMinutes: 5,
		Customizations:  tree,
	})
	require.NoError(t, err)
	return p
}

func cartWithLatte(t *testing.T, sessionID string) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(kernel.NewUUID(), sessionID, now.Add(-time.Hour), cart.DefaultTTL)
	require.NoError(t, err)

	p := latte(t, true)
	sel := customization.NewSelection("large")
	q := quoter().Quote(p, sel, d("2"))
	line, err := cart.NewLine(kernel.NewUUID(), p, d("2"), sel, "", q.Pricing)
	require.NoError(t, err)
	require.NoError(t, c.AddLine(line, now.Add(-time.Hour)))
	return c
}

func placedOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := services.NewOrderFactory(services.NewTaxCalculator()).
		Create(kernel.NewUUID(), cartWithLatte(t, "sess"), nil, "", now.Add(-time.Minute))
	require.NoError(t, err)
	return o
}
