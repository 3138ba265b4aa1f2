package handler

import (
	"log/slog"
	"net/http"

	"tourbook/internal/delivery/api/response"
	"tourbook/internal/domain/entity"
	"tourbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves the caller's own profile and the admin user routes.
type UserHandler struct {
	*ResourceHandler[entity.User]

	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		ResourceHandler: NewResourceHandler(usecase.ResourceUsecase[entity.User](params.UserUC), ResourceOptions[entity.User]{
			Single:   "user",
			Plural:   "users",
			ReadOnly: []string{"id", "_id", "createdAt"},
		}),
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// Me returns the authenticated user.
func (h *UserHandler) Me(c echo.Context) error {
	user, err := h.userUC.Me(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, "user", user)
}

// UpdateMe changes the caller's name or email.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	var input usecase.UpdateMeInput
	if err := c.Bind(&input); err != nil {
		return err
	}

	user, err := h.userUC.UpdateMe(c.Request().Context(), &input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, "user", user)
}

// DeleteMe deactivates the caller's account.
func (h *UserHandler) DeleteMe(c echo.Context) error {
	if err := h.userUC.DeleteMe(c.Request().Context()); err != nil {
		return err
	}

	return response.NoContent(c)
}
