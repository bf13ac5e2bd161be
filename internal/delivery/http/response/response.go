// Package response implements the unified API response envelope.
package response

import (
	"net/http"

	domainerrors "catalog/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Status marks an envelope as a success or a failure.
type Status string

const (
	// StatusSuccess marks a successful response.
	StatusSuccess Status = "SUCCESS"
	// StatusFailure marks a failed response.
	StatusFailure Status = "FAILURE"
)

// Envelope is the unified API response structure.
type Envelope struct {
	Response Status `json:"response"`
	Message  string `json:"message"`
	Data     any    `json:"data"`
}

// Success writes a SUCCESS envelope with the given payload.
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Envelope{
		Response: StatusSuccess,
		Message:  message,
		Data:     data,
	})
}

// Failure writes a FAILURE envelope with a nil data field.
func Failure(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Envelope{
		Response: StatusFailure,
		Message:  message,
		Data:     nil,
	})
}

// BadRequest 400 failure
func BadRequest(c echo.Context, message string) error {
	return Failure(c, http.StatusBadRequest, message)
}

// NotFound 404 failure
func NotFound(c echo.Context, message string) error {
	return Failure(c, http.StatusNotFound, message)
}

// InternalServerError 500 failure
func InternalServerError(c echo.Context, message string) error {
	return Failure(c, http.StatusInternalServerError, message)
}

// HandleAppError maps an application error onto the envelope, falling back
// to a generic 500 for anything outside the taxonomy.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Failure(c, appErr.HTTPCode(), appErr.Message())
	}

	return InternalServerError(c, "Internal server error")
}
