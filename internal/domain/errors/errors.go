package errors

import (
	"net/http"

	"vidvault/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
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

// WrapMessage wraps the error with additional context message.
// errors.Is against the predefined value still matches.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
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

// Predefined error types
var (
	// Request validation
	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Invalid input",
		"",
	)

	ErrInvalidVideoURL = NewBaseError(
		http.StatusBadRequest,
		"INVALID_VIDEO_URL",
		"Invalid YouTube URL",
		"",
	)

	// Authentication and authorization
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Unauthorized",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Forbidden",
		"",
	)

	// Entitlement
	ErrPaymentRequired = NewBaseError(
		http.StatusPaymentRequired,
		"SUBSCRIPTION_REQUIRED",
		"Subscription required",
		"",
	)

	// Users
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"Email already in use",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Server error",
		"",
	)

	// Videos
	ErrVideoAlreadyExists = NewBaseError(
		http.StatusConflict,
		"VIDEO_ALREADY_EXISTS",
		"Video already added",
		"",
	)

	// Payment provider and webhooks
	ErrPaymentProviderMisconfigured = NewBaseError(
		http.StatusInternalServerError,
		"PAYMENT_PROVIDER_MISCONFIGURED",
		"Stripe configuration missing",
		"",
	)

	ErrCheckoutFailed = NewBaseError(
		http.StatusInternalServerError,
		"CHECKOUT_FAILED",
		"Failed to create session",
		"",
	)

	ErrInvalidWebhook = NewBaseError(
		http.StatusBadRequest,
		"INVALID_WEBHOOK",
		"Webhook signature not verified",
		"",
	)

	ErrMalformedReference = NewBaseError(
		http.StatusBadRequest,
		"MALFORMED_REFERENCE",
		"Client reference is missing or malformed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, e.details).Error()
}

// Unwrap exposes the driver error to errors.Is/As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Server error"
}

// Details returns detailed error information.
// The driver error is not included; it stays in server logs.
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
