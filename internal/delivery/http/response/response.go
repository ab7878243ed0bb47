// Package response writes the JSON envelopes shared by all handlers.
package response

import (
	"net/http"

	domainerrors "vidvault/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Envelope is the success counterpart of domainerrors.Response.
type Envelope struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Success writes data wrapped in an Envelope.
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Envelope{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// OK writes a bare 200 JSON body.
func OK(c echo.Context, body any) error {
	return c.JSON(http.StatusOK, body)
}

// Created writes a bare 201 JSON body.
func Created(c echo.Context, body any) error {
	return c.JSON(http.StatusCreated, body)
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, domainerrors.Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// Text writes a plain text body, used where webhook senders expect one.
func Text(c echo.Context, statusCode int, message string) error {
	return c.String(statusCode, message)
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}
