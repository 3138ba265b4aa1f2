// Package mailer delivers transactional email for the credential lifecycle.
package mailer

import (
	"log/slog"

	"tourbook/config"
	"tourbook/internal/domain/constants"
	"tourbook/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MailerParams holds dependencies for Mailer, injected by Fx
type MailerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewMailer selects the delivery provider from configuration.
func NewMailer(params MailerParams) (service.Mailer, error) {
	cfg := params.Config.Mailer
	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.MailerProviderLog {
		params.Logger.Info("Mailer provider is log, emails will not be delivered")

		return NewLogMailer(params.Logger), nil
	}

	switch cfg.Provider {
	case constants.MailerProviderMailerSend:
		if cfg.APIKey == "" || cfg.FromEmail == "" {
			return nil, errors.New("mailersend provider requires apiKey and fromEmail")
		}

		return NewMailerSendMailer(cfg.APIKey, cfg.FromName, cfg.FromEmail), nil
	default:
		return nil, errors.Errorf("unknown mailer provider: %s", cfg.Provider)
	}
}

// Module provides the mailer FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewMailer),
)
