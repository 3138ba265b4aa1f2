package mailer

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"tourbook/config"
	"tourbook/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMailer_Providers(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	m, err := NewMailer(MailerParams{Config: &config.Config{}, Logger: logger})
	require.NoError(t, err)
	assert.IsType(t, &logMailer{}, m)

	m, err = NewMailer(MailerParams{
		Config: &config.Config{Mailer: &config.MailerConfig{Provider: "mailersend", APIKey: "key", FromEmail: "hello@natours.io"}},
		Logger: logger,
	})
	require.NoError(t, err)
	assert.IsType(t, &mailerSendMailer{}, m)

	_, err = NewMailer(MailerParams{
		Config: &config.Config{Mailer: &config.MailerConfig{Provider: "mailersend"}},
		Logger: logger,
	})
	assert.Error(t, err)

	_, err = NewMailer(MailerParams{
		Config: &config.Config{Mailer: &config.MailerConfig{Provider: "smtp"}},
		Logger: logger,
	})
	assert.ErrorContains(t, err, "unknown mailer provider")
}

func TestLogMailer_Send(t *testing.T) {
	var buf bytes.Buffer
	m := NewLogMailer(slog.New(slog.NewTextHandler(&buf, nil)))

	err := m.Send(context.Background(), &service.Email{
		ToEmail: "jonas@example.com",
		Subject: "Your password reset token (valid for 10 min)",
		Text:    "reset link",
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "jonas@example.com")
	assert.Contains(t, buf.String(), "reset link")
}
