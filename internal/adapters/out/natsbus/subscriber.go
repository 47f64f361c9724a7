package natsbus

import (
	"context"
	"log/slog"

	"storefront/internal/pkg/event"

	"github.com/nats-io/nats.go"
)

// msgSubscriber is the part of *nats.Conn the subscriber needs.
type msgSubscriber interface {
	Subscribe(subject string, cb nats.MsgHandler) (*nats.Subscription, error)
}

// Subscriber delivers order events from NATS to handlers. Malformed payloads
// and foreign event types are logged and dropped.
type Subscriber struct {
	conn   msgSubscriber
	logger *slog.Logger
}

func NewSubscriber(conn msgSubscriber, logger *slog.Logger) *Subscriber {
	return &Subscriber{
		conn:   conn,
		logger: logger.With("component", "natsbus"),
	}
}

// SubscribeKitchen listens to every order event.
func (s *Subscriber) SubscribeKitchen(ctx context.Context, h event.Handler) (event.Subscription, error) {
	return s.subscribe(ctx, event.KitchenOrdersTopic, h)
}

// SubscribeOrder listens to the events of one order.
func (s *Subscriber) SubscribeOrder(ctx context.Context, orderID string, h event.Handler) (event.Subscription, error) {
	return s.subscribe(ctx, event.OrderTopic(orderID), h)
}

func (s *Subscriber) subscribe(ctx context.Context, subject string, h event.Handler) (event.Subscription, error) {
	sub, err := s.conn.Subscribe(subject, func(msg *nats.Msg) {
		env, err := event.Decode(msg.Data)
		if err != nil {
			s.logger.Warn("dropping malformed event", "subject", msg.Subject, "error", err)
			return
		}
		if !event.IsOrderEvent(env.EventType) {
			s.logger.Debug("ignoring event", "subject", msg.Subject, "type", env.EventType)
			return
		}
		h(ctx, env)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("subscribed", "subject", subject)
	return sub, nil
}
