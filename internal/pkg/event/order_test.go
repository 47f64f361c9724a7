package event_test

import (
	"encoding/json"
	"testing"
	"time"

	"storefront/internal/pkg/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	data, err := json.Marshal(event.OrderStatusChangedEvent{
		OrderEventMetadata: event.OrderEventMetadata{
			EventType:   event.EventOrderStatusChanged,
			OccurredAt:  at,
			OrderID:     "42",
			OrderNumber: "ORD-20260314-ABCDEF",
		},
		NewStatus:      "READY",
		PreviousStatus: "PREPARING",
	})
	require.NoError(t, err)

	env, err := event.Decode(data)
	require.NoError(t, err)

	assert.Equal(t, event.EventOrderStatusChanged, env.EventType)
	assert.Equal(t, "42", env.OrderID)
	assert.True(t, at.Equal(env.OccurredAt))
	assert.Equal(t, data, env.Raw)
	assert.True(t, event.IsOrderEvent(env.EventType))
}

func TestDecode_Rejects(t *testing.T) {
	_, err := event.Decode([]byte(`{"order_id":"1"}`))
	require.Error(t, err)

	_, err = event.Decode([]byte(`not json`))
	require.Error(t, err)
}

func TestOrderTopic(t *testing.T) {
	assert.Equal(t, "orders.abc.status", event.OrderTopic("abc"))
}

func TestEnvelope_FullPayload(t *testing.T) {
	data, err := json.Marshal(event.OrderCreatedEvent{
		OrderEventMetadata: event.OrderEventMetadata{
			EventType:   event.EventOrderCreated,
			OrderID:     "7",
			OrderNumber: "ORD-20260314-QWERTY",
		},
		Status: "RECEIVED",
		Items: []event.LineSummary{
			{Name: "Latte", Quantity: "2"},
			{Name: "Croissant", Quantity: "1"},
		},
	})
	require.NoError(t, err)
	env, err := event.Decode(data)
	require.NoError(t, err)

	created, err := env.Created()
	require.NoError(t, err)
	assert.Len(t, created.Items, 2)
	assert.Equal(t, "Croissant", created.Items[1].Name)

	_, err = env.StatusChanged()
	require.Error(t, err, "an order.created event is not a status change")

	_, err = event.Envelope{OrderEventMetadata: event.OrderEventMetadata{EventType: event.EventOrderStatusChanged}}.StatusChanged()
	require.Error(t, err, "envelopes without a payload cannot be expanded")
}
