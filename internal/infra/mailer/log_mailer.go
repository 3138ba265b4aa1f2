package mailer

import (
	"context"
	"log/slog"

	deliverycontext "tourbook/internal/delivery/context"
	"tourbook/internal/domain/service"
)

// logMailer writes messages to the log instead of sending them.
type logMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) service.Mailer {
	return &logMailer{logger: logger}
}

func (m *logMailer) Send(ctx context.Context, msg *service.Email) error {
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).Info("[LogMailer] Email not delivered",
		slog.String("to", msg.ToEmail),
		slog.String("subject", msg.Subject),
		slog.String("text", msg.Text),
	)

	return nil
}
