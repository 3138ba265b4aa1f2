package response

import (
	"net/http"

	deliverycontext "tourbook/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// Envelope statuses.
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Status  string    `json:"status"`
	Results *int      `json:"results,omitempty"`
	Token   string    `json:"token,omitempty"`
	Data    any       `json:"data,omitempty"`
	Message string    `json:"message,omitempty"`
	Code    string    `json:"code,omitempty"`
	Error   string    `json:"error,omitempty"`
	Stack   string    `json:"stack,omitempty"`
	Meta    *MetaInfo `json:"meta"`
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success returns data keyed by name, e.g. {"data":{"tour":{...}}}.
func Success(c echo.Context, statusCode int, name string, data any) error {
	return c.JSON(statusCode, Envelope{
		Status: StatusSuccess,
		Data:   map[string]any{name: data},
		Meta:   meta(c),
	})
}

// List returns a page of items together with their count.
func List(c echo.Context, name string, items any, results int) error {
	return c.JSON(http.StatusOK, Envelope{
		Status:  StatusSuccess,
		Results: &results,
		Data:    map[string]any{name: items},
		Meta:    meta(c),
	})
}

// Token returns a freshly issued bearer token and, when present, its user.
func Token(c echo.Context, statusCode int, token string, user any) error {
	env := Envelope{
		Status: StatusSuccess,
		Token:  token,
		Meta:   meta(c),
	}
	if user != nil {
		env.Data = map[string]any{"user": user}
	}

	return c.JSON(statusCode, env)
}

// Message returns a success envelope carrying only a message.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Envelope{
		Status:  StatusSuccess,
		Message: message,
		Meta:    meta(c),
	})
}

// NoContent answers a successful delete.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Error returns an error response. 4xx responses are "fail", 5xx "error".
func Error(c echo.Context, statusCode int, errorCode string, message string) error {
	return c.JSON(statusCode, Envelope{
		Status:  errorStatus(statusCode),
		Code:    errorCode,
		Message: message,
		Meta:    meta(c),
	})
}

// DebugError is Error plus the raw error text and stack, for development only.
func DebugError(c echo.Context, statusCode int, errorCode, message, cause, stack string) error {
	return c.JSON(statusCode, Envelope{
		Status:  errorStatus(statusCode),
		Code:    errorCode,
		Message: message,
		Error:   cause,
		Stack:   stack,
		Meta:    meta(c),
	})
}

func errorStatus(statusCode int) string {
	if statusCode >= http.StatusInternalServerError {
		return StatusError
	}

	return StatusFail
}
