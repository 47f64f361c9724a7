package realtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"storefront/internal/core/domain/model/kernel"
)

type NotificationKind int

const (
	NotifyNewOrder NotificationKind = iota
	NotifyStatusChanged
	NotifyError
)

// Notification is a user-facing message raised by the coordinator.
type Notification struct {
	Kind      NotificationKind
	OrderID   kernel.UUID
	Title     string
	Message   string
	Sound     bool
	Retryable bool
}

// Notifier shows notifications to the staff member.
type Notifier interface {
	Notify(n Notification)
}

// Preferences are per-session settings injected into the coordinator.
type Preferences struct {
	Sound bool
}

// LogNotifier writes notifications to a structured logger.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "notifier")}
}

func (n *LogNotifier) Notify(notification Notification) {
	level := slog.LevelInfo
	if notification.Kind == NotifyError {
		level = slog.LevelWarn
	}
	n.logger.Log(context.Background(), level, notification.Title,
		"message", notification.Message,
		"order_id", notification.OrderID.String(),
		"sound", notification.Sound,
		"retryable", notification.Retryable,
	)
}

// WriterNotifier prints notifications as lines of text and rings the
// terminal bell when a notification asks for sound.
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Notify(notification Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if notification.Sound {
		_, _ = io.WriteString(n.w, "\a")
	}
	line := notification.Title
	if notification.Message != "" {
		line += ": " + notification.Message
	}
	if notification.Retryable {
		line += " (retry possible)"
	}
	_, _ = fmt.Fprintln(n.w, line)
}
