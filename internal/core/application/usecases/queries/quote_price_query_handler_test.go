package queries_test

import (
	"testing"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/customization"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuotePriceQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	products := new(MockProductRepository)
	products.On("Get", ctx, "tea").Return(product(t, "tea", true), nil)

	h := queries.NewQuotePriceQueryHandler(products,
		services.NewQuoter(services.NewPriceCalculator(), services.NewTaxCalculator()))

	t.Run("valid", func(t *testing.T) {
		q, err := queries.NewQuotePriceQuery("tea", customization.NewSelection("tea-l"), d("3"))
		require.NoError(t, err)

		resp, err := h.Handle(ctx, q)

		require.NoError(t, err)
		assert.True(t, resp.Quote.Validation.Valid)
		assert.NoError(t, resp.QuantityError)
		assert.True(t, d("15.00").Equal(resp.Quote.Pricing.Total))
	})

	t.Run("invalid selection and quantity are reported, not returned", func(t *testing.T) {
		q, err := queries.NewQuotePriceQuery("tea", customization.NewSelection(), d("9"))
		require.NoError(t, err)

		resp, err := h.Handle(ctx, q)

		require.NoError(t, err)
		assert.False(t, resp.Quote.Validation.Valid)
		assert.ErrorIs(t, resp.QuantityError, errs.ErrValueIsOutOfRange)
		assert.True(t, d("36.00").Equal(resp.Quote.Pricing.Total))
	})
}

func TestNewQuotePriceQuery_InvalidInput(t *testing.T) {
	_, err := queries.NewQuotePriceQuery("", customization.NewSelection(), d("0"))

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
