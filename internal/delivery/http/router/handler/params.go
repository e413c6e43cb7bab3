package handler

import (
	"time"

	domainerrors "fintrack/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// dateLayout is the wire format for calendar dates in request payloads.
const dateLayout = "2006-01-02"

// idParam parses the :id path segment. A malformed id is a client error
// with a resource-specific message such as "Invalid budget ID".
func idParam(c echo.Context, resource string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError("Invalid " + resource + " ID")
	}

	return id, nil
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}
