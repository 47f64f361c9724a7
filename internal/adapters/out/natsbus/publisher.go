package natsbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/event"
)

// msgPublisher is the part of *nats.Conn the publisher needs.
type msgPublisher interface {
	Publish(subject string, data []byte) error
}

// Publisher implements ports.EventPublisher. Every event goes to the kitchen
// subject and to the order's own subject.
type Publisher struct {
	conn msgPublisher
}

func NewPublisher(conn msgPublisher) *Publisher {
	return &Publisher{conn: conn}
}

func (p *Publisher) PublishOrderCreated(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	s := o.Snapshot()
	payload := event.OrderCreatedEvent{
		OrderEventMetadata: event.OrderEventMetadata{
			EventType:   event.EventOrderCreated,
			OccurredAt:  s.CreatedAt,
			OrderID:     s.ID.String(),
			OrderNumber: s.Number,
		},
		Status:          s.Status.String(),
		Total:           s.Total.StringFixed(2),
		PrepTimeMinutes: s.PrepTimeMinutes,
		Items:           make([]event.LineSummary, 0, len(s.Lines)),
	}
	for _, line := range s.Lines {
		payload.Items = append(payload.Items, event.LineSummary{
			Name:     line.Name,
			Quantity: line.Quantity.String(),
		})
	}
	if s.Customer != nil {
		payload.CustomerName = s.Customer.Name
	}

	return p.publish(ctx, s.ID.String(), payload)
}

func (p *Publisher) PublishOrderStatusChanged(ctx context.Context, o *order.Order, change order.StatusChange) error {
	if err := o.Validate(); err != nil {
		return err
	}

	payload := event.OrderStatusChangedEvent{
		OrderEventMetadata: event.OrderEventMetadata{
			EventType:   event.EventOrderStatusChanged,
			OccurredAt:  change.At,
			OrderID:     o.ID().String(),
			OrderNumber: o.Number(),
		},
		NewStatus:      change.To.String(),
		PreviousStatus: change.From.String(),
		Actor:          change.Actor,
		Notes:          change.Notes,
	}

	return p.publish(ctx, o.ID().String(), payload)
}

func (p *Publisher) publish(ctx context.Context, orderID string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode order event: %w", err)
	}

	return errors.Join(
		p.conn.Publish(event.KitchenOrdersTopic, data),
		p.conn.Publish(event.OrderTopic(orderID), data),
	)
}
