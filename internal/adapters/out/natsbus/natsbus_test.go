package natsbus_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/adapters/out/natsbus"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/event"

	"github.com/nats-io/nats.go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

type MockConn struct {
	mock.Mock
	handlers map[string]nats.MsgHandler
}

func (m *MockConn) Publish(subject string, data []byte) error {
	args := m.Called(subject, data)
	return args.Error(0)
}

func (m *MockConn) Subscribe(subject string, cb nats.MsgHandler) (*nats.Subscription, error) {
	args := m.Called(subject)
	if m.handlers == nil {
		m.handlers = make(map[string]nats.MsgHandler)
	}
	m.handlers[subject] = cb
	if args.Error(0) != nil {
		return nil, args.Error(0)
	}
	return new(nats.Subscription), nil
}

func (m *MockConn) deliver(subject string, data []byte) {
	m.handlers[subject](&nats.Msg{Subject: subject, Data: data})
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	lines := []order.Line{{
		ProductID: "latte",
		Name:      "Latte",
		BasePrice: decimal.RequireFromString("3.50"),
		Quantity:  decimal.NewFromInt(2),
		UnitPrice: decimal.RequireFromString("3.50"),
		Subtotal:  decimal.RequireFromString("7.00"),
		TaxAmount: decimal.Zero,
		Total:     decimal.RequireFromString("7.00"),
	}}
	o, err := order.NewOrder(kernel.NewUUID(), lines, nil, &order.Customer{Name: "Ada"}, "", 5, now)
	require.NoError(t, err)
	return o
}

func TestPublishOrderCreated_SendsToKitchenAndOrderSubjects(t *testing.T) {
	o := newOrder(t)
	conn := new(MockConn)
	var sent []byte
	conn.On("Publish", event.KitchenOrdersTopic, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).([]byte) }).
		Return(nil)
	conn.On("Publish", event.OrderTopic(o.ID().String()), mock.Anything).Return(nil)

	err := natsbus.NewPublisher(conn).PublishOrderCreated(context.Background(), o)

	require.NoError(t, err)
	conn.AssertExpectations(t)

	var payload event.OrderCreatedEvent
	require.NoError(t, json.Unmarshal(sent, &payload))
	assert.Equal(t, event.EventOrderCreated, payload.EventType)
	assert.Equal(t, o.Number(), payload.OrderNumber)
	assert.Equal(t, "RECEIVED", payload.Status)
	assert.Equal(t, "7.00", payload.Total)
	assert.Equal(t, "Ada", payload.CustomerName)
	assert.True(t, now.Equal(payload.OccurredAt))
	assert.Equal(t, []event.LineSummary{{Name: "Latte", Quantity: "2"}}, payload.Items)
}

func TestPublishOrderStatusChanged_CarriesTransition(t *testing.T) {
	o := newOrder(t)
	require.NoError(t, o.ChangeStatus(order.Preparing, "alice", "started", now.Add(time.Minute)))
	history := o.History()
	conn := new(MockConn)
	var sent []byte
	conn.On("Publish", event.KitchenOrdersTopic, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).([]byte) }).
		Return(nil)
	conn.On("Publish", event.OrderTopic(o.ID().String()), mock.Anything).Return(nil)

	err := natsbus.NewPublisher(conn).PublishOrderStatusChanged(context.Background(), o, history[len(history)-1])

	require.NoError(t, err)
	var payload event.OrderStatusChangedEvent
	require.NoError(t, json.Unmarshal(sent, &payload))
	assert.Equal(t, event.EventOrderStatusChanged, payload.EventType)
	assert.Equal(t, "RECEIVED", payload.PreviousStatus)
	assert.Equal(t, "PREPARING", payload.NewStatus)
	assert.Equal(t, "alice", payload.Actor)
	assert.Equal(t, "started", payload.Notes)
}

func TestPublish_ConnectionError_IsReturned(t *testing.T) {
	o := newOrder(t)
	boom := errors.New("connection closed")
	conn := new(MockConn)
	conn.On("Publish", mock.Anything, mock.Anything).Return(boom)

	err := natsbus.NewPublisher(conn).PublishOrderCreated(context.Background(), o)

	require.ErrorIs(t, err, boom)
}

func TestPublish_CancelledContext_PublishesNothing(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	conn := new(MockConn)

	err := natsbus.NewPublisher(conn).PublishOrderCreated(ctx, newOrder(t))

	require.ErrorIs(t, err, context.Canceled)
	conn.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestSubscribeOrder_DeliversOrderEventsOnly(t *testing.T) {
	conn := new(MockConn)
	subject := event.OrderTopic("42")
	conn.On("Subscribe", subject).Return(nil)
	var got []event.Envelope

	sub, err := natsbus.NewSubscriber(conn, discardLogger()).SubscribeOrder(context.Background(), "42",
		func(_ context.Context, env event.Envelope) { got = append(got, env) })
	require.NoError(t, err)
	require.NotNil(t, sub)

	conn.deliver(subject, []byte(`{"event_type":"order.status_changed","order_id":"42","new_status":"READY"}`))
	conn.deliver(subject, []byte(`{"event_type":"table.opened"}`))
	conn.deliver(subject, []byte(`not json`))

	require.Len(t, got, 1)
	assert.Equal(t, event.EventOrderStatusChanged, got[0].EventType)
	assert.Equal(t, "42", got[0].OrderID)
}

func TestSubscribeKitchen_SubscribeError_IsReturned(t *testing.T) {
	conn := new(MockConn)
	conn.On("Subscribe", event.KitchenOrdersTopic).Return(nats.ErrConnectionClosed)

	_, err := natsbus.NewSubscriber(conn, discardLogger()).SubscribeKitchen(context.Background(),
		func(context.Context, event.Envelope) {})

	require.ErrorIs(t, err, nats.ErrConnectionClosed)
}
