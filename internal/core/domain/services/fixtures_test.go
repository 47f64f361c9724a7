package services_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/customization"
	"storefront/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func latte(t *testing.T, taxes ...catalog.Tax) *catalog.Product {
	t.Helper()
	tree, err := customization.NewFlatTree([]customization.FlatItem{
		{ID: "small", Name: "Small", Kind: customization.KindSize, Price: d("0"), Required: true, MinSelections: 1, MaxSelections: 1},
		{ID: "large", Name: "Large", Kind: customization.KindSize, Price: d("2.00"), Required: true, MinSelections: 1, MaxSelections: 1},
		{ID: "oat", Name: "Oat milk", Kind: customization.KindAddon, Price: d("0.50"), MaxSelections: 2},
		{ID: "shot", Name: "Extra shot", Kind: customization.KindAddon, Price: d("0.50"), MaxSelections: 2},
	})
	require.NoError(t, err)

	p, err := catalog.NewProduct(catalog.ProductParams{
		ID:              "latte",
		Name:            "Latte",
		BasePrice:       d("0.00"),
		Available:       true,
		PrepTimeMinutes: 5,
		Taxes:           taxes,
		Customizations:  tree,
	})
	require.NoError(t, err)
	return p
}

func bagel(t *testing.T, taxes ...catalog.Tax) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(catalog.ProductParams{
		ID:              "bagel",
		Name:            "Bagel",
		BasePrice:       d("2.25"),
		Available:       true,
		PrepTimeMinutes: 12,
		Taxes:           taxes,
	})
	require.NoError(t, err)
	return p
}

func cartWith(t *testing.T, lines ...*cart.Line) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(kernel.NewUUID(), "session-1", now, cart.DefaultTTL)
	require.NoError(t, err)
	for _, l := range lines {
		require.NoError(t, c.AddLine(l, now))
	}
	return c
}
