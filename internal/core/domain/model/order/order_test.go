package order_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var placedAt = time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	lines := []order.Line{{
		ProductID: "latte",
		Name:      "Latte",
		BasePrice: d("3.00"),
		Quantity:  d("2"),
		Options:   []catalog.ChosenOption{{ID: "large", Name: "Large", Group: "Size", Price: d("1.00")}},
		UnitPrice: d("4.00"),
		Subtotal:  d("8.00"),
		TaxAmount: d("0.64"),
		Total:     d("8.64"),
	}}
	taxes := []catalog.TaxCharge{
		{Tax: catalog.Tax{Name: "Sales tax", Kind: catalog.TaxPercentage, Value: d("8")}, Amount: d("0.64")},
		{Tax: catalog.Tax{Name: "City levy", Kind: catalog.TaxPercentage, Value: d("2"), Inclusive: true}, Amount: d("0.16")},
	}
	o, err := order.NewOrder(kernel.NewUUID(), lines, taxes, &order.Customer{Name: "Ada"}, " extra napkins ", 6, placedAt)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should start in Received with derived totals", func(t *testing.T) {
		o := newTestOrder(t)
		snap := o.Snapshot()

		assert.Equal(t, order.Received, o.Status())
		assert.Equal(t, 1, o.Version())
		assert.True(t, d("8.00").Equal(snap.Subtotal))
		assert.True(t, d("0.64").Equal(snap.TaxAmount))
		assert.True(t, d("8.64").Equal(o.Total()))
		assert.Equal(t, "extra napkins", snap.Note)
		assert.Regexp(t, `^ORD-20260314-[0-9A-F]{6}$`, o.Number())
		assert.Empty(t, o.History())
	})

	t.Run("should reject empty orders", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), nil, nil, nil, "", 0, placedAt)
		require.ErrorIs(t, err, order.ErrOrderHasNoLines)
	})

	t.Run("should reject invalid id and quantity together", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, []order.Line{{Name: "x", Quantity: d("0")}}, nil, nil, "", 0, placedAt)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("should follow the lifecycle and record history", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.ChangeStatus(order.Preparing, "chef", "", placedAt.Add(time.Minute)))
		require.NoError(t, o.ChangeStatus(order.Ready, "chef", " shelf 3 ", placedAt.Add(5*time.Minute)))

		assert.Equal(t, order.Ready, o.Status())
		assert.Equal(t, 3, o.Version())
		require.Len(t, o.History(), 2)
		assert.Equal(t, order.StatusChange{
			From: order.Preparing, To: order.Ready, Actor: "chef", Notes: "shelf 3", At: placedAt.Add(5 * time.Minute),
		}, o.History()[1])
		assert.Equal(t, placedAt.Add(5*time.Minute), o.UpdatedAt())
	})

	t.Run("should leave the order untouched on illegal transitions", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.Cancelled, "chef", "", placedAt))

		err := o.ChangeStatus(order.Preparing, "chef", "", placedAt)
		require.ErrorIs(t, err, errs.ErrIllegalTransition)
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Len(t, o.History(), 1)
		assert.Equal(t, 2, o.Version())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should round trip through a snapshot", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.Preparing, "chef", "", placedAt))

		restored, err := order.RestoreOrder(o.Snapshot())
		require.NoError(t, err)
		assert.Equal(t, o.Snapshot(), restored.Snapshot())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		snap := newTestOrder(t).Snapshot()
		snap.Status = order.Unknown
		_, err := order.RestoreOrder(snap)
		require.Error(t, err)
	})
}

func TestSnapshot_CloneIsDeep(t *testing.T) {
	snap := newTestOrder(t).Snapshot()
	clone := snap.Clone()

	clone.Lines[0].Options[0].Name = "Small"
	clone.Customer.Name = "Grace"

	assert.Equal(t, "Large", snap.Lines[0].Options[0].Name)
	assert.Equal(t, "Ada", snap.Customer.Name)
}

func TestOrder_ZeroValue(t *testing.T) {
	var o order.Order
	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
}
