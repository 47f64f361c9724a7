// Package realtime keeps a staff client's view of the kitchen orders in step
// with the order authority.
//
// The local order list is written only through Coordinator methods. Staff
// status changes are applied optimistically; when the authority refuses one,
// the order goes back to the entry it had before the change and the list is
// invalidated. Push events never patch local orders; they invalidate the list
// and a refetch brings the authoritative state.
//
// Example:
//
//	c := realtime.NewCoordinator(client, notifier, realtime.Preferences{Sound: true}, logger)
//	go c.Run(ctx)
//	sub, _ := subscriber.SubscribeKitchen(ctx, c.HandleEvent)
//	defer sub.Unsubscribe()
//
//	if _, err := c.ChangeStatus(ctx, orderID, order.Preparing, ""); err != nil {
//	    // local list is back to where it was
//	}
package realtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/event"
)

var ErrMutationInFlight = errors.New("a status change for this order is already in flight")

// Authority is the source of truth for orders.
type Authority interface {
	ListOrders(ctx context.Context, statuses ...order.Status) ([]order.Snapshot, error)
	Stats(ctx context.Context) (order.Stats, error)
	ChangeStatus(ctx context.Context, id kernel.UUID, target order.Status, notes string) (order.Snapshot, error)
}

type pendingChange struct {
	record int
	before order.Snapshot
}

type Coordinator struct {
	authority Authority
	notifier  Notifier
	prefs     Preferences
	statuses  []order.Status
	clock     func() time.Time
	logger    *slog.Logger

	mu        sync.Mutex
	orders    []order.Snapshot
	stats     order.Stats
	inFlight  map[kernel.UUID]pendingChange
	mutations []Mutation
	// seq numbers refetches and local writes; touched holds the seq of the
	// latest local write per order so older refetches cannot overwrite it.
	seq     uint64
	applied uint64
	touched map[kernel.UUID]uint64

	invalidated chan struct{}
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithStatuses limits the local list to orders in the given statuses.
func WithStatuses(statuses ...order.Status) Option {
	return func(c *Coordinator) {
		c.statuses = slices.Clone(statuses)
	}
}

func WithClock(clock func() time.Time) Option {
	return func(c *Coordinator) {
		c.clock = clock
	}
}

func NewCoordinator(authority Authority, notifier Notifier, prefs Preferences, logger *slog.Logger, opts ...Option) *Coordinator {
	c := &Coordinator{
		authority:   authority,
		notifier:    notifier,
		prefs:       prefs,
		clock:       time.Now,
		logger:      logger.With("component", "sync-coordinator"),
		inFlight:    make(map[kernel.UUID]pendingChange),
		touched:     make(map[kernel.UUID]uint64),
		invalidated: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Orders returns a copy of the local order list.
func (c *Coordinator) Orders() []order.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneOrders(c.orders)
}

// Order returns the local copy of one order.
func (c *Coordinator) Order(id kernel.UUID) (order.Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexOf(id); i >= 0 {
		return c.orders[i].Clone(), true
	}
	return order.Snapshot{}, false
}

func (c *Coordinator) Stats() order.Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Pending reports whether a status change for id awaits the authority.
// Callers disable the order's actions while it does.
func (c *Coordinator) Pending(id kernel.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.inFlight[id]
	return ok
}

// Mutations returns every mutation record in start order.
func (c *Coordinator) Mutations() []Mutation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.mutations)
}

// ChangeStatus moves an order to target optimistically and asks the
// authority to do the same.
//
// Returns:
//   - ErrMutationInFlight when another change for the order is pending
//   - *errs.IllegalTransitionError when the local status cannot reach target;
//     the authority is not called
//   - the authority's error after the order has been restored to its entry
//     from before the change; other orders keep whatever happened to them
//     meanwhile and the list is invalidated
func (c *Coordinator) ChangeStatus(ctx context.Context, id kernel.UUID, target order.Status, notes string) (Mutation, error) {
	c.mu.Lock()
	i := c.indexOf(id)
	if i < 0 {
		c.mu.Unlock()
		return Mutation{}, errs.NewObjectNotFoundError("orderID", id)
	}
	if _, busy := c.inFlight[id]; busy {
		c.mu.Unlock()
		return Mutation{}, ErrMutationInFlight
	}
	current := c.orders[i].Status
	if !current.CanTransitionTo(target) {
		c.mu.Unlock()
		return Mutation{}, errs.NewIllegalTransitionError(current, target)
	}

	before := c.orders[i].Clone()
	c.orders[i].Status = target
	c.orders[i].UpdatedAt = c.clock()
	c.touch(id)

	m := Mutation{
		ID:        kernel.NewUUID(),
		OrderID:   id,
		From:      current,
		To:        target,
		Notes:     notes,
		State:     MutationPending,
		StartedAt: c.clock(),
	}
	c.mutations = append(c.mutations, m)
	c.inFlight[id] = pendingChange{record: len(c.mutations) - 1, before: before}
	c.mu.Unlock()

	c.logger.Info("status change sent", "order_id", id.String(), "from", current, "to", target)
	updated, err := c.authority.ChangeStatus(ctx, id, target, notes)

	if err != nil {
		m = c.rollback(id, err)
		c.invalidate()
		c.logger.Warn("status change rolled back", "order_id", id.String(), "to", target, "error", err)
		c.notifier.Notify(Notification{
			Kind:      NotifyError,
			OrderID:   id,
			Title:     "Could not update order",
			Message:   err.Error(),
			Retryable: retryable(err),
		})
		return m, err
	}

	m = c.confirm(id, updated)
	c.logger.Info("status change confirmed", "order_id", id.String(), "to", target)
	if rerr := c.Refresh(ctx); rerr != nil {
		c.logger.Warn("refetch after status change failed", "error", rerr)
		c.invalidate()
	}
	return m, nil
}

// HandleEvent turns a push event into an invalidation. It is an event.Handler.
func (c *Coordinator) HandleEvent(_ context.Context, env event.Envelope) {
	if !event.IsOrderEvent(env.EventType) {
		return
	}

	orderID, err := kernel.UUIDFromString(env.OrderID)
	known := err == nil && c.knows(orderID)

	switch env.EventType {
	case event.EventOrderCreated:
		c.notifier.Notify(Notification{
			Kind:    NotifyNewOrder,
			OrderID: orderID,
			Title:   "New order",
			Message: newOrderMessage(env),
			Sound:   c.prefs.Sound,
		})
	case event.EventOrderStatusChanged:
		if !known {
			c.logger.Debug("status change for an order not in the list", "order_id", env.OrderID)
		}
		c.notifier.Notify(Notification{
			Kind:    NotifyStatusChanged,
			OrderID: orderID,
			Title:   "Order updated",
			Message: statusChangedMessage(env),
		})
	}

	c.invalidate()
}

// Run refetches whenever the list has been invalidated, until ctx ends.
// A burst of invalidations collapses into one refetch.
func (c *Coordinator) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.invalidated:
			if err := c.Refresh(ctx); err != nil {
				c.logger.Warn("refetch failed", "error", err)
			}
		}
	}
}

// Refresh fetches the order list and the stats. A response is dropped when a
// newer one has been applied in the meantime. Orders with a pending change,
// or written locally after the fetch started, keep their local entry.
func (c *Coordinator) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	orders, err := c.authority.ListOrders(ctx, c.statuses...)
	if err != nil {
		return fmt.Errorf("list orders: %w", err)
	}
	stats, err := c.authority.Stats(ctx)
	if err != nil {
		return fmt.Errorf("order stats: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq <= c.applied {
		c.logger.Debug("discarding stale refetch", "seq", seq, "applied", c.applied)
		return nil
	}
	c.applied = seq

	fresh := cloneOrders(orders)
	for j := range fresh {
		id := fresh[j].ID
		if _, pending := c.inFlight[id]; !pending && c.touched[id] <= seq {
			continue
		}
		if local := c.indexOf(id); local >= 0 {
			fresh[j] = c.orders[local].Clone()
		}
	}
	c.orders = fresh
	c.stats = stats

	for id, at := range c.touched {
		if at < seq {
			delete(c.touched, id)
		}
	}
	return nil
}

// rollback puts the order back to its entry from before the change. The rest
// of the list is left alone: it may hold refetched orders or other pending
// changes.
func (c *Coordinator) rollback(id kernel.UUID, cause error) Mutation {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(id); i >= 0 {
		c.orders[i] = c.inFlight[id].before
	}
	c.touch(id)
	return c.settle(id, MutationRolledBack, cause)
}

// confirm stores the authority's copy of the order when it sent one.
func (c *Coordinator) confirm(id kernel.UUID, updated order.Snapshot) Mutation {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(id); i >= 0 && updated.ID.IsEqual(id) {
		c.orders[i] = updated.Clone()
	}
	c.touch(id)
	return c.settle(id, MutationConfirmed, nil)
}

// settle and touch expect c.mu to be held.
func (c *Coordinator) settle(id kernel.UUID, state MutationState, cause error) Mutation {
	i := c.inFlight[id].record
	delete(c.inFlight, id)
	c.mutations[i].State = state
	c.mutations[i].Err = cause
	c.mutations[i].SettledAt = c.clock()
	return c.mutations[i]
}

func (c *Coordinator) touch(id kernel.UUID) {
	c.seq++
	c.touched[id] = c.seq
}

func (c *Coordinator) invalidate() {
	select {
	case c.invalidated <- struct{}{}:
	default:
	}
}

func (c *Coordinator) knows(id kernel.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.indexOf(id) >= 0
}

func (c *Coordinator) indexOf(id kernel.UUID) int {
	for i := range c.orders {
		if c.orders[i].ID.IsEqual(id) {
			return i
		}
	}
	return -1
}

func cloneOrders(orders []order.Snapshot) []order.Snapshot {
	out := make([]order.Snapshot, len(orders))
	for i := range orders {
		out[i] = orders[i].Clone()
	}
	return out
}

// newOrderMessage reads "Order ORD-1 - 2 items" from the event payload, or
// just the order number when the payload cannot be read.
func newOrderMessage(env event.Envelope) string {
	created, err := env.Created()
	if err != nil {
		return "Order " + env.OrderNumber
	}
	noun := "items"
	if len(created.Items) == 1 {
		noun = "item"
	}
	return fmt.Sprintf("Order %s - %d %s", env.OrderNumber, len(created.Items), noun)
}

func statusChangedMessage(env event.Envelope) string {
	changed, err := env.StatusChanged()
	if err != nil || changed.NewStatus == "" {
		return "Order " + env.OrderNumber + " was updated"
	}
	return fmt.Sprintf("Order %s is now %s", env.OrderNumber, strings.ToLower(changed.NewStatus))
}

func retryable(err error) bool {
	var te *errs.TransportError
	if errors.As(err, &te) {
		return te.Retryable()
	}
	return true
}
