package customization_test

import (
	"testing"

	"storefront/internal/core/domain/model/customization"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tree := coffeeTree(t)

	t.Run("required exclusive group without selection yields one error", func(t *testing.T) {
		result := customization.Validate(tree, customization.Selection{})

		assert.False(t, result.Valid)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "SIZE", result.Errors[0].GroupID)
		assert.Equal(t, "Size", result.Errors[0].GroupName)
		assert.Equal(t, "Please select size", result.Errors[0].Message)
		require.ErrorIs(t, result.Err(), errs.ErrValueIsInvalid)
	})

	t.Run("complete selection is valid", func(t *testing.T) {
		result := customization.Validate(tree, customization.NewSelection("large", "oat", "shot"))

		assert.True(t, result.Valid)
		assert.Empty(t, result.Errors)
		require.NoError(t, result.Err())
	})

	t.Run("over max is reported even if toggle would prevent it", func(t *testing.T) {
		result := customization.Validate(tree, customization.NewSelection("large", "oat", "shot", "syrup"))

		require.Len(t, result.Errors, 1)
		assert.Equal(t, "Too many addon selections", result.Errors[0].Message)
	})

	t.Run("both errors can fire for the same group", func(t *testing.T) {
		inconsistent, err := customization.NewHierarchicalTree([]customization.Node{{
			ID: "g", Type: customization.NodeGroup, Name: "Sides",
			Constraints: customization.Constraints{Min: 3, Max: 1, Required: true},
			Children: []customization.Node{
				{ID: "a", Type: customization.NodeOption, Name: "A"},
				{ID: "b", Type: customization.NodeOption, Name: "B"},
				{ID: "c", Type: customization.NodeOption, Name: "C"},
			},
		}})
		require.NoError(t, err)

		result := customization.Validate(inconsistent, customization.NewSelection("a", "b"))
		assert.Equal(t, []string{"Please select sides", "Too many selections for sides"}, result.Messages())
		assert.Len(t, result.For("g"), 2)
	})

	t.Run("exact group reports under and over", func(t *testing.T) {
		exact, err := customization.NewHierarchicalTree([]customization.Node{{
			ID: "g", Type: customization.NodeGroup, Name: "Sides",
			Constraints: customization.Constraints{Min: 2, Max: 2, Required: true},
			Children: []customization.Node{
				{ID: "a", Type: customization.NodeOption, Name: "A"},
				{ID: "b", Type: customization.NodeOption, Name: "B"},
				{ID: "c", Type: customization.NodeOption, Name: "C"},
			},
		}})
		require.NoError(t, err)

		under := customization.Validate(exact, customization.NewSelection("a"))
		assert.Equal(t, []string{"Please select sides"}, under.Messages())

		over := customization.Validate(exact, customization.NewSelection("a", "b", "c"))
		assert.Equal(t, []string{"Too many selections for sides"}, over.Messages())
	})

	t.Run("nested groups are validated", func(t *testing.T) {
		pizza := pizzaTree(t)

		result := customization.Validate(pizza, customization.NewSelection("deep"))
		require.Len(t, result.For("cheese"), 1)
		assert.Equal(t, "Please select stuffed crust cheese", result.For("cheese")[0].Message)
		assert.Empty(t, result.For("crust"))
	})

	t.Run("required error iff count below min", func(t *testing.T) {
		pizza := pizzaTree(t)
		cheese, _ := pizza.Group("cheese")

		for _, ids := range [][]string{{}, {"mozzarella"}, {"mozzarella", "gouda"}} {
			sel := customization.NewSelection(ids...)
			hasErr := false
			for _, e := range customization.Validate(pizza, sel).For("cheese") {
				if e.Message == "Please select stuffed crust cheese" {
					hasErr = true
				}
			}
			assert.Equal(t, sel.CountIn(cheese) < cheese.Rule().Min, hasErr, "selection %v", ids)
		}
	})
}

func TestValidate_MessageWordingFollowsLayout(t *testing.T) {
	flat, err := customization.NewFlatTree([]customization.FlatItem{
		{ID: "ketchup", Name: "Ketchup", Kind: customization.KindAddon, Price: price("0"), Required: true, MinSelections: 1, MaxSelections: 1},
		{ID: "mayo", Name: "Mayo", Kind: customization.KindAddon, Price: price("0"), Required: true, MinSelections: 1, MaxSelections: 1},
		{ID: "no-salt", Name: "No salt", Kind: customization.KindModifier, Price: price("0"), MaxSelections: 1},
		{ID: "extra-salt", Name: "Extra salt", Kind: customization.KindModifier, Price: price("0"), MaxSelections: 1},
	})
	require.NoError(t, err)

	t.Run("flat groups are named after their kind", func(t *testing.T) {
		result := customization.Validate(flat, customization.NewSelection("no-salt", "extra-salt"))

		assert.Equal(t, []string{"Please select addon", "Too many modifier selections"}, result.Messages())
	})

	t.Run("hierarchical groups are named after the group", func(t *testing.T) {
		result := customization.Validate(pizzaTree(t), customization.NewSelection("deep"))

		assert.Equal(t, "Please select stuffed crust cheese", result.For("cheese")[0].Message)
	})
}
