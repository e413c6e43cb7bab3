package middleware

import (
	"log/slog"

	deliverycontext "fintrack/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestContextMiddleware stamps each request with an ID and a
// request-scoped logger carrying that ID, so every layer below logs with
// the same correlation field.
type RequestContextMiddleware struct {
	logger *slog.Logger
}

// NewRequestContextMiddleware creates a new request context middleware.
func NewRequestContextMiddleware(logger *slog.Logger) *RequestContextMiddleware {
	return &RequestContextMiddleware{logger: logger}
}

// Handle installs the request ID and logger on both the echo context and the
// request's context.Context.
func (m *RequestContextMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		requestLogger := m.logger.With(slog.String("requestID", requestID))

		ctx := c.Request().Context()
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		ctx = deliverycontext.WithLogger(ctx, requestLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		return next(c)
	}
}
