package handler

import (
	"log/slog"
	"net/http"
	"time"

	domainerrors "fintrack/internal/domain/errors"
	"fintrack/internal/delivery/http/middleware"
	"fintrack/internal/delivery/http/response"
	"fintrack/internal/domain/entity"
	"fintrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const incomeValidationMsg = "Please ensure all fields are filled out correctly"

type incomeRequest struct {
	Name     string  `json:"name" validate:"required,max=255"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Time     string  `json:"time" validate:"required,oneof=Weekly Bi-Weekly Monthly Yearly"`
	Date     string  `json:"date" validate:"required,datetime=2006-01-02"`
	Position string  `json:"position" validate:"required,oneof='Full Time' 'Part Time' Casual 'Side Job'"`
}

type incomeResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	Time      string    `json:"time"`
	Date      string    `json:"date"`
	Position  string    `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

func toIncomeResponse(i *entity.Income) *incomeResponse {
	return &incomeResponse{
		ID:        i.ID,
		UserID:    i.UserID,
		Name:      i.Name,
		Amount:    i.Amount,
		Time:      i.Time,
		Date:      i.Date.Format(dateLayout),
		Position:  i.Position,
		CreatedAt: i.CreatedAt,
	}
}

func (r *incomeRequest) toInput(userID uuid.UUID) (*usecase.IncomeInput, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return nil, err
	}

	return &usecase.IncomeInput{
		UserID:   userID,
		Name:     r.Name,
		Amount:   r.Amount,
		Time:     r.Time,
		Date:     date,
		Position: r.Position,
	}, nil
}

// IncomeHandler holds dependencies for income CRUD handlers.
type IncomeHandler struct {
	uc     usecase.IncomeUsecase
	logger *slog.Logger
}

// NewIncomeHandler is the constructor for IncomeHandler, injected by Fx.
func NewIncomeHandler(uc usecase.IncomeUsecase, logger *slog.Logger) *IncomeHandler {
	return &IncomeHandler{uc: uc, logger: logger}
}

// Create records a new income source for the authenticated user.
func (h *IncomeHandler) Create(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req incomeRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewValidationError(incomeValidationMsg)
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.NewValidationError(incomeValidationMsg)
	}
	input, err := req.toInput(userID)
	if err != nil {
		return domainerrors.NewValidationError(incomeValidationMsg)
	}

	income, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toIncomeResponse(income))
}

// List returns all income sources owned by the authenticated user.
func (h *IncomeHandler) List(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	incomes, err := h.uc.List(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]*incomeResponse, 0, len(incomes))
	for _, i := range incomes {
		out = append(out, toIncomeResponse(i))
	}

	return response.Success(c, http.StatusOK, out)
}

// Get returns a single income source by id.
func (h *IncomeHandler) Get(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	id, err := idParam(c, "income")
	if err != nil {
		return err
	}

	income, err := h.uc.Get(c.Request().Context(), id, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toIncomeResponse(income))
}

// Update replaces the writable fields of an income source.
func (h *IncomeHandler) Update(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	id, err := idParam(c, "income")
	if err != nil {
		return err
	}

	var req incomeRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewValidationError(incomeValidationMsg)
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.NewValidationError(incomeValidationMsg)
	}
	input, err := req.toInput(userID)
	if err != nil {
		return domainerrors.NewValidationError(incomeValidationMsg)
	}

	income, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toIncomeResponse(income))
}

// Delete removes an income source by id.
func (h *IncomeHandler) Delete(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	id, err := idParam(c, "income")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"message": "Income deleted successfully",
	})
}
