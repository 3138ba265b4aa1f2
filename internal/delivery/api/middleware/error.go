package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"tourbook/config"
	"tourbook/internal/delivery/api/response"
	deliverycontext "tourbook/internal/delivery/context"
	domainerrors "tourbook/internal/domain/errors"
	"tourbook/internal/domain/repository"
	"tourbook/internal/errors"
	"tourbook/internal/util"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger     *slog.Logger
	production bool
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:     logger,
		production: cfg.IsProduction(),
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	appErr := Normalize(err, c)
	if appErr.HTTPCode() >= http.StatusInternalServerError {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
			slog.Any("error", err),
			slog.String("stack", errors.StackTrace(err)),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
		)
	}

	if m.production {
		if !appErr.IsOperational() {
			// Internal details never leave the process in production.
			internal := domainerrors.ErrInternalError
			_ = response.Error(c, internal.HTTPCode(), internal.ErrorCode(), internal.Message())

			return
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message())

		return
	}

	_ = response.DebugError(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), err.Error(), errors.StackTrace(err))
}

// Normalize maps any error raised while serving c onto an AppError.
func Normalize(err error, c echo.Context) domainerrors.AppError {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr
	}

	if verrs, ok := errors.AsType[validator.ValidationErrors](err); ok {
		return domainerrors.NewInvalidInputError(util.ValidationMessages(verrs))
	}

	if dup, ok := errors.AsType[*repository.DuplicateKeyError](err); ok {
		return domainerrors.NewDuplicateFieldError(dup.Value)
	}

	if _, ok := errors.AsType[*json.SyntaxError](err); ok {
		return domainerrors.NewValidationError("Invalid JSON body.")
	}

	if typeErr, ok := errors.AsType[*json.UnmarshalTypeError](err); ok {
		return domainerrors.NewInvalidValueError(typeErr.Field, typeErr.Value)
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		if httpErr.Internal != nil {
			if inner := Normalize(httpErr.Internal, c); inner.IsOperational() {
				return inner
			}
		}
		if httpErr.Code == http.StatusNotFound || httpErr.Code == http.StatusMethodNotAllowed {
			return domainerrors.NewRouteNotFoundError(c.Request().URL.String())
		}

		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		return domainerrors.NewBaseError(httpErr.Code, "HTTP_ERROR", message, "")
	}

	return domainerrors.NewUnexpectedError(err, "")
}
