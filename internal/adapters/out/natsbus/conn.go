// Package natsbus is the push channel of the storefront: committed order
// changes go out as small JSON events on NATS subjects and staff or customer
// views subscribe to them to know when to refetch.
package natsbus

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

// Connect opens a NATS connection that keeps reconnecting for as long as the
// process runs. Connection state changes are logged.
func Connect(url, name string, logger *slog.Logger) (*nats.Conn, error) {
	log := logger.With("component", "natsbus")

	conn, err := nats.Connect(url,
		nats.Name(name),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn("disconnected from NATS", "error", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Info("reconnected to NATS", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return conn, nil
}
