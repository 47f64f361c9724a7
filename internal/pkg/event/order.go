// Package event holds the payloads exchanged on the push channel. Subscribers
// treat every event as a hint to refetch; payload fields are informational.
package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const (
	// KitchenOrdersTopic carries every order event for staff views.
	KitchenOrdersTopic = "kitchen.orders"

	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

// OrderTopic is the per-order subject a customer's order view listens on.
func OrderTopic(orderID string) string {
	return fmt.Sprintf("orders.%s.status", orderID)
}

type OrderEventMetadata struct {
	EventType   string    `json:"event_type"`
	OccurredAt  time.Time `json:"occurred_at"`
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
}

// LineSummary is one order line as shown in a new-order alert.
type LineSummary struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

type OrderCreatedEvent struct {
	OrderEventMetadata
	Status          string        `json:"status"`
	Total           string        `json:"total"`
	CustomerName    string        `json:"customer_name,omitempty"`
	PrepTimeMinutes int           `json:"prep_time_minutes"`
	Items           []LineSummary `json:"items"`
}

type OrderStatusChangedEvent struct {
	OrderEventMetadata
	NewStatus      string `json:"new_status"`
	PreviousStatus string `json:"previous_status"`
	Actor          string `json:"actor,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// Envelope is what a subscriber decodes first: enough to route the event
// without knowing its concrete type.
type Envelope struct {
	OrderEventMetadata
	Raw []byte `json:"-"`
}

// Decode reads the routing metadata of a raw event.
func Decode(data []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, fmt.Errorf("decode order event: %w", err)
	}
	if env.EventType == "" {
		return Envelope{}, fmt.Errorf("decode order event: missing event_type")
	}
	env.Raw = data
	return env, nil
}

// Created decodes the full payload of an order.created event.
func (e Envelope) Created() (OrderCreatedEvent, error) {
	var payload OrderCreatedEvent
	if err := e.decodeAs(EventOrderCreated, &payload); err != nil {
		return OrderCreatedEvent{}, err
	}
	return payload, nil
}

// StatusChanged decodes the full payload of an order.status_changed event.
func (e Envelope) StatusChanged() (OrderStatusChangedEvent, error) {
	var payload OrderStatusChangedEvent
	if err := e.decodeAs(EventOrderStatusChanged, &payload); err != nil {
		return OrderStatusChangedEvent{}, err
	}
	return payload, nil
}

func (e Envelope) decodeAs(eventType string, payload any) error {
	if e.EventType != eventType {
		return fmt.Errorf("decode %s: event is %s", eventType, e.EventType)
	}
	if len(e.Raw) == 0 {
		return fmt.Errorf("decode %s: no payload", eventType)
	}
	if err := json.Unmarshal(e.Raw, payload); err != nil {
		return fmt.Errorf("decode %s: %w", eventType, err)
	}
	return nil
}

// IsOrderEvent reports whether t is one of the order event types.
func IsOrderEvent(t string) bool {
	return t == EventOrderCreated || t == EventOrderStatusChanged
}

// Handler receives every well-formed order event of a subscription.
type Handler func(ctx context.Context, env Envelope)

// Subscription is a live subject subscription.
type Subscription interface {
	Unsubscribe() error
}
