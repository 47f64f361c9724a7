package customization_test

import (
	"math/rand/v2"
	"testing"

	"storefront/internal/core/domain/model/customization"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggle_ExclusiveGroup(t *testing.T) {
	tree := coffeeTree(t)

	t.Run("selecting replaces the previous choice", func(t *testing.T) {
		sel := customization.Toggle(tree, customization.Selection{}, "SIZE", "small")
		sel = customization.Toggle(tree, sel, "SIZE", "large")

		assert.Equal(t, []string{"large"}, sel.IDs())
	})

	t.Run("clicking the selected option keeps it selected", func(t *testing.T) {
		sel := customization.Toggle(tree, customization.Selection{}, "SIZE", "large")
		again := customization.Toggle(tree, sel, "SIZE", "large")

		assert.Equal(t, []string{"large"}, again.IDs())
	})

	t.Run("other groups are untouched", func(t *testing.T) {
		sel := customization.NewSelection("oat", "small")
		sel = customization.Toggle(tree, sel, "SIZE", "large")

		assert.Equal(t, []string{"oat", "large"}, sel.IDs())
	})
}

func TestToggle_MultiGroup(t *testing.T) {
	tree := coffeeTree(t)

	t.Run("adds and removes", func(t *testing.T) {
		sel := customization.Toggle(tree, customization.Selection{}, "ADDON", "oat")
		sel = customization.Toggle(tree, sel, "ADDON", "shot")
		assert.Equal(t, []string{"oat", "shot"}, sel.IDs())

		sel = customization.Toggle(tree, sel, "ADDON", "oat")
		assert.Equal(t, []string{"shot"}, sel.IDs())
	})

	t.Run("adding beyond max is ignored", func(t *testing.T) {
		sel := customization.NewSelection("oat", "shot")
		next := customization.Toggle(tree, sel, "ADDON", "syrup")

		assert.True(t, sel.Equal(next))
		assert.False(t, customization.CanAdd(tree, sel, "syrup"))
		assert.True(t, customization.CanAdd(tree, sel, "oat"))
	})

	t.Run("does not modify the input selection", func(t *testing.T) {
		sel := customization.NewSelection("oat")
		_ = customization.Toggle(tree, sel, "ADDON", "shot")

		assert.Equal(t, []string{"oat"}, sel.IDs())
	})
}

func TestToggle_UnknownTargetsAreNoOps(t *testing.T) {
	tree := coffeeTree(t)
	sel := customization.NewSelection("small")

	assert.True(t, sel.Equal(customization.Toggle(tree, sel, "SAUCE", "small")))
	assert.True(t, sel.Equal(customization.Toggle(tree, sel, "SIZE", "oat")))
	assert.True(t, sel.Equal(customization.Toggle(tree, sel, "SIZE", "ghost")))
}

func TestToggle_NestedGroup(t *testing.T) {
	tree := pizzaTree(t)

	sel := customization.Toggle(tree, customization.Selection{}, "crust", "deep")
	sel = customization.Toggle(tree, sel, "cheese", "gouda")
	sel = customization.Toggle(tree, sel, "crust", "thin")

	assert.Equal(t, []string{"gouda", "thin"}, sel.IDs())
}

func TestToggle_RandomSequencesKeepCardinality(t *testing.T) {
	trees := map[string]*customization.Tree{"flat": coffeeTree(t), "hierarchical": pizzaTree(t)}

	for name, tree := range trees {
		t.Run(name, func(t *testing.T) {
			rng := rand.New(rand.NewPCG(42, 7))
			groups := tree.AllGroups()
			sel := customization.Selection{}
			seen := map[string]bool{}

			for range 2000 {
				g := groups[rng.IntN(len(groups))]
				ids := g.OptionIDs()
				if len(ids) == 0 {
					continue
				}
				id := ids[rng.IntN(len(ids))]
				sel = customization.Toggle(tree, sel, g.ID(), id)
				seen[g.ID()] = true

				for _, check := range groups {
					count := sel.CountIn(check)
					require.LessOrEqual(t, count, check.Rule().Max)
					if check.Rule().IsExclusive() && seen[check.ID()] {
						require.Equal(t, 1, count)
					}
				}
			}
		})
	}
}
