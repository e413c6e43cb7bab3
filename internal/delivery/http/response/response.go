// Package response defines the wire envelope shared by every endpoint.
package response

import (
	"github.com/labstack/echo/v4"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Envelope is the unified API response structure. Every success carries
// "status":"success" plus data; every failure carries "status":"error" plus
// a user-facing message.
type Envelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// Success writes a success envelope with the given payload.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Envelope{
		Status: statusSuccess,
		Data:   data,
	})
}

// Error writes an error envelope with the given message.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Envelope{
		Status:  statusError,
		Message: message,
	})
}
