package handler

import (
	"log/slog"
	"net/http"
	"time"

	"tourbook/config"
	"tourbook/internal/delivery/api/middleware"
	"tourbook/internal/delivery/api/response"
	"tourbook/internal/domain/constants"
	"tourbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// logoutCookieTTL is how long the placeholder cookie lives after logout.
const logoutCookieTTL = 10 * time.Second

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
	Logger *slog.Logger
}

// AuthHandler serves signup, login and the password and email flows.
type AuthHandler struct {
	authUC       usecase.AuthUsecase
	cookieTTL    time.Duration
	secureCookie bool
	logger       *slog.Logger
	now          func() time.Time
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	h := &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
		now:    time.Now,
	}
	if params.Config.Auth != nil {
		h.cookieTTL = params.Config.Auth.CookieTTL
		h.secureCookie = params.Config.Auth.SecureCookie
	}

	return h
}

// Signup registers a user and logs them in.
func (h *AuthHandler) Signup(c echo.Context) error {
	var input usecase.SignupInput
	if err := c.Bind(&input); err != nil {
		return err
	}

	out, err := h.authUC.Signup(c.Request().Context(), &input)
	if err != nil {
		return err
	}

	return h.sendToken(c, http.StatusCreated, out)
}

// Login exchanges email and password for a token.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return err
	}

	out, err := h.authUC.Login(c.Request().Context(), &input)
	if err != nil {
		return err
	}

	return h.sendToken(c, http.StatusOK, out)
}

// Logout overwrites the token cookie with a short-lived placeholder.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.cookie(c, middleware.LoggedOutCookieValue, logoutCookieTTL))

	return response.Message(c, http.StatusOK, "Logged out")
}

// ForgotPassword mails a reset link.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var input usecase.ForgotPasswordInput
	if err := c.Bind(&input); err != nil {
		return err
	}

	if err := h.authUC.ForgotPassword(c.Request().Context(), &input); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "Token sent to email!")
}

// ResetPassword sets a new password using the emailed token.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var input usecase.ResetPasswordInput
	if err := c.Bind(&input); err != nil {
		return err
	}

	out, err := h.authUC.ResetPassword(c.Request().Context(), c.Param("token"), &input)
	if err != nil {
		return err
	}

	return h.sendToken(c, http.StatusOK, out)
}

// VerifyEmail confirms the address using the emailed token.
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	out, err := h.authUC.VerifyEmail(c.Request().Context(), c.Param("token"))
	if err != nil {
		return err
	}

	return h.sendToken(c, http.StatusOK, out)
}

// ResendVerification mails a new verification link to the caller.
func (h *AuthHandler) ResendVerification(c echo.Context) error {
	if err := h.authUC.ResendVerification(c.Request().Context()); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "Verification email sent!")
}

// UpdateMyPassword changes the caller's password and issues a fresh token.
func (h *AuthHandler) UpdateMyPassword(c echo.Context) error {
	var input usecase.UpdatePasswordInput
	if err := c.Bind(&input); err != nil {
		return err
	}

	out, err := h.authUC.UpdateMyPassword(c.Request().Context(), &input)
	if err != nil {
		return err
	}

	return h.sendToken(c, http.StatusOK, out)
}

func (h *AuthHandler) sendToken(c echo.Context, status int, out *usecase.AuthOutput) error {
	c.SetCookie(h.cookie(c, out.Token, h.cookieTTL))

	return response.Token(c, status, out.Token, out.User)
}

func (h *AuthHandler) cookie(c echo.Context, value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     constants.AccessTokenCookie,
		Value:    value,
		Path:     "/",
		Expires:  h.now().Add(ttl),
		HttpOnly: true,
		Secure:   h.secureCookie || c.IsTLS(),
		SameSite: http.SameSiteLaxMode,
	}
}
