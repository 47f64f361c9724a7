package customization_test

import (
	"testing"

	"storefront/internal/core/domain/model/customization"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// coffeeTree: exclusive required Size (Small, Large) and multi Add-ons (max 2).
func coffeeTree(t *testing.T) *customization.Tree {
	t.Helper()
	tree, err := customization.NewFlatTree([]customization.FlatItem{
		{ID: "small", Name: "Small", Kind: customization.KindSize, Price: price("0"), Required: true, MinSelections: 1, MaxSelections: 1},
		{ID: "large", Name: "Large", Kind: customization.KindSize, Price: price("2.00"), Required: true, MinSelections: 1, MaxSelections: 1},
		{ID: "oat", Name: "Oat milk", Kind: customization.KindAddon, Price: price("0.50"), MaxSelections: 2},
		{ID: "shot", Name: "Extra shot", Kind: customization.KindAddon, Price: price("0.50"), MaxSelections: 2},
		{ID: "syrup", Name: "Vanilla syrup", Kind: customization.KindAddon, Price: price("0.75"), MaxSelections: 2},
	})
	require.NoError(t, err)
	return tree
}

// pizzaTree: Crust (exclusive, required) containing a nested Cheese group.
func pizzaTree(t *testing.T) *customization.Tree {
	t.Helper()
	tree, err := customization.NewHierarchicalTree([]customization.Node{
		{
			ID: "toppings", Type: customization.NodeGroup, Name: "Toppings", DisplayOrder: 2,
			Constraints: customization.Constraints{Min: 0, Max: 3},
			Children: []customization.Node{
				{ID: "olives", Type: customization.NodeOption, Name: "Olives", Price: price("1.00"), DisplayOrder: 2},
				{ID: "mushrooms", Type: customization.NodeOption, Name: "Mushrooms", Price: price("1.25"), DisplayOrder: 1},
				{ID: "basil", Type: customization.NodeModifier, Name: "Basil", Price: price("0.30"), DisplayOrder: 3},
				{ID: "onion", Type: customization.NodeOption, Name: "Onion", Price: price("0.40"), DisplayOrder: 4},
			},
		},
		{
			ID: "crust", Type: customization.NodeGroup, Name: "Crust", DisplayOrder: 1,
			Constraints: customization.Constraints{Min: 1, Max: 1, Required: true},
			Children: []customization.Node{
				{ID: "thin", Type: customization.NodeOption, Name: "Thin", DisplayOrder: 1},
				{ID: "deep", Type: customization.NodeOption, Name: "Deep dish", Price: price("2.50"), DisplayOrder: 2},
				{
					ID: "cheese", Type: customization.NodeGroup, Name: "Stuffed crust cheese", DisplayOrder: 3,
					Constraints: customization.Constraints{Min: 1, Max: 2, Required: true},
					Children: []customization.Node{
						{ID: "mozzarella", Type: customization.NodeOption, Name: "Mozzarella", Price: price("1.00")},
						{ID: "cheddar", Type: customization.NodeOption, Name: "Cheddar", Price: price("1.10")},
						{ID: "gouda", Type: customization.NodeOption, Name: "Gouda", Price: price("1.20")},
					},
				},
			},
		},
	})
	require.NoError(t, err)
	return tree
}
