package mongodb

import (
	"context"
	"log/slog"
	"time"

	"tourbook/config"

	"go.mongodb.org/mongo-driver/event"
)

const defaultSlowCommandThreshold = 200 * time.Millisecond

// commandMonitor reports failed and slow commands through slog.
// In debug mode every command is logged.
type commandMonitor struct {
	logger        *slog.Logger
	debug         bool
	slowThreshold time.Duration
}

func newCommandMonitor(logger *slog.Logger, cfg *config.Config) *event.CommandMonitor {
	m := &commandMonitor{
		logger:        logger,
		debug:         cfg != nil && cfg.Env.Debug,
		slowThreshold: defaultSlowCommandThreshold,
	}

	return &event.CommandMonitor{
		Succeeded: m.succeeded,
		Failed:    m.failed,
	}
}

func (m *commandMonitor) succeeded(ctx context.Context, evt *event.CommandSucceededEvent) {
	if m.logger == nil {
		return
	}

	attrs := []slog.Attr{
		slog.String("command", evt.CommandName),
		slog.String("database", evt.DatabaseName),
		slog.Duration("elapsed", evt.Duration),
	}

	switch {
	case evt.Duration >= m.slowThreshold:
		m.logger.LogAttrs(ctx, slog.LevelWarn, "MongoDB slow command", attrs...)
	case m.debug:
		m.logger.LogAttrs(ctx, slog.LevelDebug, "MongoDB command", attrs...)
	}
}

func (m *commandMonitor) failed(ctx context.Context, evt *event.CommandFailedEvent) {
	if m.logger == nil {
		return
	}

	m.logger.LogAttrs(ctx, slog.LevelError, "MongoDB command failed",
		slog.String("command", evt.CommandName),
		slog.String("database", evt.DatabaseName),
		slog.Duration("elapsed", evt.Duration),
		slog.String("failure", evt.Failure),
	)
}
