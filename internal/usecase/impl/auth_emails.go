package impl

import (
	"fmt"
	"html"
	"time"

	"tourbook/internal/domain/entity"
	"tourbook/internal/domain/service"
	"tourbook/internal/util"
)

func passwordResetEmail(user *entity.User, resetURL string, ttl time.Duration) *service.Email {
	validFor := util.HumanizeDuration(ttl)

	return &service.Email{
		ToName:  user.Name,
		ToEmail: user.Email,
		Subject: fmt.Sprintf("Your password reset token (valid for %s)", validFor),
		Text: fmt.Sprintf(
			"Hi %s,\n\nForgot your password? Submit a PATCH request with your new password and passwordConfirm to: %s\n"+
				"If you didn't forget your password, please ignore this email.",
			user.FirstName(), resetURL,
		),
		HTML: fmt.Sprintf(
			`<p>Hi %s,</p><p>Forgot your password? Reset it here within %s: <a href="%s">%s</a></p>`+
				`<p>If you didn't forget your password, please ignore this email.</p>`,
			html.EscapeString(user.FirstName()), validFor, html.EscapeString(resetURL), html.EscapeString(resetURL),
		),
	}
}

func verificationEmail(user *entity.User, verifyURL string, ttl time.Duration) *service.Email {
	validFor := util.HumanizeDuration(ttl)

	return &service.Email{
		ToName:  user.Name,
		ToEmail: user.Email,
		Subject: "Welcome to the Natours Family! Please confirm your email",
		Text: fmt.Sprintf(
			"Hi %s,\n\nWelcome aboard! Confirm your email address within %s by submitting a PATCH request to: %s",
			user.FirstName(), validFor, verifyURL,
		),
		HTML: fmt.Sprintf(
			`<p>Hi %s,</p><p>Welcome aboard! Confirm your email address within %s: <a href="%s">%s</a></p>`,
			html.EscapeString(user.FirstName()), validFor, html.EscapeString(verifyURL), html.EscapeString(verifyURL),
		),
	}
}
