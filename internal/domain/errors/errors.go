package errors

import (
	"fmt"
	"net/http"
	"strings"

	"tourbook/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
	// IsOperational reports whether the message is safe to show to clients in production.
	IsOperational() bool
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// IsOperational is always true for errors raised deliberately by the application.
func (e *BaseError) IsOperational() bool {
	return true
}

// Is matches errors of the same code so wrapped copies still satisfy errors.Is.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode && t.message == e.message
}

// Error codes shared by the constructors below.
const (
	CodeValidation      = "VALIDATION_FAILED"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "DUPLICATE_FIELD"
	CodeForbidden       = "FORBIDDEN"
	CodeTooManyRequests = "TOO_MANY_REQUESTS"
	CodeInternal        = "INTERNAL_ERROR"
)

// NewValidationError reports malformed or semantically invalid input.
func NewValidationError(message string) *BaseError {
	return NewBaseError(http.StatusBadRequest, CodeValidation, message, "")
}

// NewInvalidValueError renders the "Invalid <field>: <value>." message used for cast failures.
func NewInvalidValueError(field string, value any) *BaseError {
	return NewValidationError(fmt.Sprintf("Invalid %s: %v.", field, value))
}

// NewInvalidInputError joins individual field messages into one validation error.
func NewInvalidInputError(messages []string) *BaseError {
	return NewValidationError("Invalid input data. " + strings.Join(messages, ". "))
}

// NewAuthenticationError reports a missing or unacceptable credential.
func NewAuthenticationError(code, message string) *BaseError {
	return NewBaseError(http.StatusUnauthorized, code, message, "")
}

// NewAuthorizationError reports an authenticated principal lacking the required roles.
func NewAuthorizationError(required []string) *BaseError {
	return NewBaseError(
		http.StatusForbidden,
		CodeForbidden,
		fmt.Sprintf("You do not have permission to perform this action (requires one of: %s)", strings.Join(required, ", ")),
		"",
	)
}

// NewNotFoundError reports an absent resource.
func NewNotFoundError(message string) *BaseError {
	return NewBaseError(http.StatusNotFound, CodeNotFound, message, "")
}

// NewDuplicateFieldError reports a unique constraint violation.
func NewDuplicateFieldError(value any) *BaseError {
	return NewBaseError(
		http.StatusBadRequest,
		CodeConflict,
		fmt.Sprintf("Duplicate field value: %q. Please use another value!", fmt.Sprint(value)),
		"",
	)
}

// NewRouteNotFoundError is returned for requests that match no route.
func NewRouteNotFoundError(url string) *BaseError {
	return NewBaseError(http.StatusNotFound, "ROUTE_NOT_FOUND", fmt.Sprintf("Can't find %s on this server!", url), "")
}

// Predefined error types
var (
	// Authentication-related errors
	ErrTokenMissing = NewAuthenticationError(
		"TOKEN_MISSING",
		"You are not logged in! Please log in to get access.",
	)

	ErrTokenInvalid = NewAuthenticationError(
		"TOKEN_INVALID",
		"Invalid token. Please log in again!",
	)

	ErrTokenExpired = NewAuthenticationError(
		"TOKEN_EXPIRED",
		"Your token has expired! Please log in again.",
	)

	ErrPrincipalGone = NewAuthenticationError(
		"PRINCIPAL_GONE",
		"The user belonging to this token does no longer exist.",
	)

	ErrTokenStale = NewAuthenticationError(
		"TOKEN_STALE",
		"User recently changed password! Please log in again.",
	)

	ErrInvalidCredentials = NewAuthenticationError(
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
	)

	ErrWrongCurrentPassword = NewAuthenticationError(
		"WRONG_CURRENT_PASSWORD",
		"Your current password is wrong.",
	)

	// Credential lifecycle errors
	ErrMissingCredentials = NewBaseError(
		http.StatusBadRequest,
		"MISSING_CREDENTIALS",
		"Please provide email and password!",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		http.StatusBadRequest,
		CodeValidation,
		"Invalid input data. Passwords are not the same!",
		"",
	)

	ErrNoUserWithEmail = NewNotFoundError("There is no user with email address.")

	ErrTokenInvalidOrExpired = NewBaseError(
		http.StatusBadRequest,
		"ONE_TIME_TOKEN_INVALID",
		"Token is invalid or has expired",
		"",
	)

	ErrEmailDispatch = NewBaseError(
		http.StatusInternalServerError,
		"EMAIL_DISPATCH_FAILED",
		"There was an error sending the email. Try again later!",
		"",
	)

	ErrPasswordRoute = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_ROUTE",
		"This route is not for password updates. Please use /updateMyPassword.",
		"",
	)

	ErrEmailAlreadyVerified = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_ALREADY_VERIFIED",
		"Your email address is already verified.",
		"",
	)

	// Resource errors
	ErrDocumentNotFound = NewNotFoundError("No document found with that ID")

	ErrPageNotFound = NewNotFoundError("This page does not exist")

	// Review errors
	ErrAlreadyReviewed = NewBaseError(
		http.StatusBadRequest,
		CodeConflict,
		"You have already reviewed this tour",
		"",
	)

	ErrNotReviewOwner = NewBaseError(
		http.StatusForbidden,
		CodeForbidden,
		"You can only modify your own reviews",
		"",
	)

	// Geo errors
	ErrInvalidLatLng = NewValidationError("Please provide latitude and longitude in the format lat,lng.")

	ErrInvalidUnit = NewValidationError("Please provide a distance unit of mi or km.")

	// Rate limiting
	ErrTooManyRequests = NewBaseError(
		http.StatusTooManyRequests,
		CodeTooManyRequests,
		"Too many requests from this IP, please try again in an hour!",
		"",
	)

	// ErrInternalError is what production clients see for any non-operational failure.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		CodeInternal,
		"Something went very wrong!",
		"",
	)
)

// UnexpectedError wraps a failure the application did not anticipate.
// It is never operational, so production responses hide its message.
type UnexpectedError struct {
	err     error
	details string
}

// NewUnexpectedError creates an unexpected error around err
func NewUnexpectedError(err error, details string) AppError {
	return &UnexpectedError{
		err:     err,
		details: details,
	}
}

// NewDatabaseExecuteError reports a storage failure; details names what was attempted.
func NewDatabaseExecuteError(err error, details string) AppError {
	return NewUnexpectedError(errors.Wrap(err, "database execution failed"), details)
}

// Error implements the error interface
func (e *UnexpectedError) Error() string {
	if e.err == nil {
		return "unexpected error"
	}

	return e.err.Error()
}

// Unwrap exposes the cause for errors.Is/As and stack formatting.
func (e *UnexpectedError) Unwrap() error {
	return e.err
}

// Format prints the wrapped cause, including its stack with %+v.
func (e *UnexpectedError) Format(s fmt.State, verb rune) {
	if f, ok := e.err.(fmt.Formatter); ok {
		f.Format(s, verb)

		return
	}
	_, _ = fmt.Fprint(s, e.Error())
}

// HTTPCode returns the HTTP status code
func (e *UnexpectedError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *UnexpectedError) ErrorCode() string {
	return CodeInternal
}

// Message returns the user-friendly error message
func (e *UnexpectedError) Message() string {
	return e.Error()
}

// Details returns detailed error information
func (e *UnexpectedError) Details() string {
	return e.details
}

// IsOperational is false: the message may leak internals.
func (e *UnexpectedError) IsOperational() bool {
	return false
}

// StatusText maps an HTTP code onto the envelope status word.
func StatusText(httpCode int) string {
	if httpCode >= http.StatusInternalServerError {
		return "error"
	}

	return "fail"
}
