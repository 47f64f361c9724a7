package services_test

import (
	"testing"

	"storefront/internal/core/domain/model/customization"
	"storefront/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestPriceCalculator_Total(t *testing.T) {
	calc := services.NewPriceCalculator()
	product := latte(t)

	tests := []struct {
		name      string
		selection customization.Selection
		quantity  string
		want      string
	}{
		{"large with two add-ons", customization.NewSelection("large", "oat", "shot"), "3", "9.00"},
		{"nothing selected", customization.NewSelection(), "4", "0"},
		{"small is free", customization.NewSelection("small"), "2", "0"},
		{"unknown ids add nothing", customization.NewSelection("large", "ghost"), "1", "2.00"},
		{"fractional quantity", customization.NewSelection("oat"), "1.5", "0.75"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.Total(product, tt.selection, d(tt.quantity))
			assert.True(t, d(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestPriceCalculator_EmptySelectionIsBaseTimesQuantity(t *testing.T) {
	calc := services.NewPriceCalculator()
	product := bagel(t)

	for _, q := range []string{"1", "2", "7", "0.5"} {
		got := calc.Total(product, customization.NewSelection(), d(q))
		assert.True(t, product.BasePrice().Mul(d(q)).Equal(got))
	}
}

func TestPriceCalculator_AddingAnOptionNeverLowersTheTotal(t *testing.T) {
	calc := services.NewPriceCalculator()
	product := latte(t)
	base := customization.NewSelection("small")

	for _, id := range []string{"large", "oat", "shot"} {
		before := calc.Total(product, base, d("2"))
		after := calc.Total(product, customization.NewSelection(append(base.IDs(), id)...), d("2"))
		assert.True(t, after.GreaterThanOrEqual(before), id)
	}
}

func TestPriceCalculator_UnitPrice(t *testing.T) {
	calc := services.NewPriceCalculator()

	got := calc.UnitPrice(latte(t), customization.NewSelection("large", "oat"))

	assert.True(t, d("2.50").Equal(got))
}
