package realtime

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/event"
)

var ErrTrackerIsWatching = errors.New("tracker is already watching an order")

// OrderSource reads one order as a customer sees it.
type OrderSource interface {
	TrackOrder(ctx context.Context, id kernel.UUID) (order.Snapshot, error)
}

// OrderSubscriber opens the push subscription of one order.
type OrderSubscriber interface {
	SubscribeOrder(ctx context.Context, orderID string, h event.Handler) (event.Subscription, error)
}

// OrderTracker follows a single order for the customer's order view. Every
// push event on the order's subject triggers a refetch; the latest state is
// offered on the Watch channel, older undelivered states are replaced.
type OrderTracker struct {
	source     OrderSource
	subscriber OrderSubscriber
	logger     *slog.Logger

	mu      sync.Mutex
	sub     event.Subscription
	updates chan order.Snapshot
	closed  bool
	// watch numbers Watch calls; a handler from an earlier watch sees a
	// different number and drops its result.
	watch uint64
}

func NewOrderTracker(source OrderSource, subscriber OrderSubscriber, logger *slog.Logger) *OrderTracker {
	return &OrderTracker{
		source:     source,
		subscriber: subscriber,
		logger:     logger.With("component", "order-tracker"),
	}
}

// Watch fetches the order, subscribes to its events and returns a channel
// carrying the initial state and every refetched state. The channel is
// closed by Close.
func (t *OrderTracker) Watch(ctx context.Context, id kernel.UUID) (<-chan order.Snapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.sub != nil {
		return nil, ErrTrackerIsWatching
	}

	initial, err := t.source.TrackOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	t.watch++
	watch := t.watch
	t.updates = make(chan order.Snapshot, 1)
	t.closed = false
	t.updates <- initial

	sub, err := t.subscriber.SubscribeOrder(ctx, id.String(), func(ctx context.Context, env event.Envelope) {
		t.refetch(ctx, watch, id, env)
	})
	if err != nil {
		close(t.updates)
		t.closed = true
		return nil, err
	}
	t.sub = sub

	t.logger.Debug("watching order", "order_id", id.String())
	return t.updates, nil
}

// Close unsubscribes and closes the Watch channel. It is safe to call more
// than once.
func (t *OrderTracker) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.sub == nil {
		return nil
	}
	err := t.sub.Unsubscribe()
	t.sub = nil
	if !t.closed {
		close(t.updates)
		t.closed = true
	}
	return err
}

func (t *OrderTracker) refetch(ctx context.Context, watch uint64, id kernel.UUID, env event.Envelope) {
	if !t.isCurrent(watch) {
		return
	}

	snap, err := t.source.TrackOrder(ctx, id)
	if err != nil {
		t.logger.Warn("refetch failed", "order_id", id.String(), "event", env.EventType, "error", err)
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed || t.watch != watch {
		return
	}
	select {
	case <-t.updates:
	default:
	}
	t.updates <- snap
}

func (t *OrderTracker) isCurrent(watch uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.closed && t.watch == watch
}
