package service

import (
	"context"
	"log/slog"
)

// Notification is an outbound email. Delivery is best-effort: a failed send
// never rolls back the state change that triggered it.
type Notification struct {
	To      []string
	Subject string
	Body    string
}

// Notifier delivers notifications to users. The real transport lives outside
// this service; tests and dev environments use LogNotifier.
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}

// LogNotifier writes notifications to the log instead of delivering them.
type LogNotifier struct {
	Logger *slog.Logger
}

func (l *LogNotifier) Send(ctx context.Context, n Notification) error {
	l.Logger.InfoContext(ctx, "notification issued",
		slog.Any("to", n.To),
		slog.String("subject", n.Subject),
		slog.String("body", n.Body),
	)
	return nil
}
