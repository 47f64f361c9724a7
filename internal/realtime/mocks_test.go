package realtime_test

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/event"
	"storefront/internal/realtime"

	"github.com/stretchr/testify/mock"
)

type MockAuthority struct{ mock.Mock }

func (m *MockAuthority) ListOrders(ctx context.Context, statuses ...order.Status) ([]order.Snapshot, error) {
	args := m.Called(ctx, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Snapshot), args.Error(1)
}

func (m *MockAuthority) Stats(ctx context.Context) (order.Stats, error) {
	args := m.Called(ctx)
	return args.Get(0).(order.Stats), args.Error(1)
}

func (m *MockAuthority) ChangeStatus(
	ctx context.Context,
	id kernel.UUID,
	target order.Status,
	notes string,
) (order.Snapshot, error) {
	args := m.Called(ctx, id, target, notes)
	return args.Get(0).(order.Snapshot), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(n realtime.Notification) {
	m.Called(n)
}

type MockOrderSource struct{ mock.Mock }

func (m *MockOrderSource) TrackOrder(ctx context.Context, id kernel.UUID) (order.Snapshot, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(order.Snapshot), args.Error(1)
}

type MockSubscription struct{ mock.Mock }

func (m *MockSubscription) Unsubscribe() error {
	return m.Called().Error(0)
}

// MockOrderSubscriber keeps the handler so tests can push events by hand.
type MockOrderSubscriber struct {
	mock.Mock
	handler event.Handler
}

func (m *MockOrderSubscriber) SubscribeOrder(ctx context.Context, orderID string, h event.Handler) (event.Subscription, error) {
	args := m.Called(ctx, orderID)
	m.handler = h
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(event.Subscription), args.Error(1)
}
