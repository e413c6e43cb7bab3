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

const budgetValidationMsg = "Budget data is not formatted correctly"

type budgetRequest struct {
	CategoryID string  `json:"category_id" validate:"required,uuid"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
	StartDate  string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string  `json:"end_date" validate:"required,datetime=2006-01-02"`
}

type budgetResponse struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	CategoryID uuid.UUID `json:"category_id"`
	Amount     float64   `json:"amount"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	CreatedAt  time.Time `json:"created_at"`
}

func toBudgetResponse(b *entity.Budget) *budgetResponse {
	return &budgetResponse{
		ID:         b.ID,
		UserID:     b.UserID,
		CategoryID: b.CategoryID,
		Amount:     b.Amount,
		StartDate:  b.StartDate.Format(dateLayout),
		EndDate:    b.EndDate.Format(dateLayout),
		CreatedAt:  b.CreatedAt,
	}
}

func (r *budgetRequest) toInput(userID uuid.UUID) (*usecase.BudgetInput, error) {
	categoryID, err := uuid.Parse(r.CategoryID)
	if err != nil {
		return nil, err
	}
	startDate, err := parseDate(r.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate(r.EndDate)
	if err != nil {
		return nil, err
	}

	return &usecase.BudgetInput{
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     r.Amount,
		StartDate:  startDate,
		EndDate:    endDate,
	}, nil
}

// BudgetHandler holds dependencies for budget CRUD handlers.
type BudgetHandler struct {
	uc     usecase.BudgetUsecase
	logger *slog.Logger
}

// NewBudgetHandler is the constructor for BudgetHandler, injected by Fx.
func NewBudgetHandler(uc usecase.BudgetUsecase, logger *slog.Logger) *BudgetHandler {
	return &BudgetHandler{uc: uc, logger: logger}
}

// Create records a new budget for the authenticated user.
func (h *BudgetHandler) Create(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req budgetRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewValidationError(budgetValidationMsg)
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.NewValidationError(budgetValidationMsg)
	}
	input, err := req.toInput(userID)
	if err != nil {
		return domainerrors.NewValidationError(budgetValidationMsg)
	}

	budget, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toBudgetResponse(budget))
}

// List returns all budgets owned by the authenticated user.
func (h *BudgetHandler) List(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	budgets, err := h.uc.List(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]*budgetResponse, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, toBudgetResponse(b))
	}

	return response.Success(c, http.StatusOK, out)
}

// Get returns a single budget by id.
func (h *BudgetHandler) Get(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	id, err := idParam(c, "budget")
	if err != nil {
		return err
	}

	budget, err := h.uc.Get(c.Request().Context(), id, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBudgetResponse(budget))
}

// Update replaces the writable fields of a budget.
func (h *BudgetHandler) Update(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	id, err := idParam(c, "budget")
	if err != nil {
		return err
	}

	var req budgetRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewValidationError(budgetValidationMsg)
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.NewValidationError(budgetValidationMsg)
	}
	input, err := req.toInput(userID)
	if err != nil {
		return domainerrors.NewValidationError(budgetValidationMsg)
	}

	budget, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBudgetResponse(budget))
}

// Delete removes a budget by id.
func (h *BudgetHandler) Delete(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	id, err := idParam(c, "budget")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"message": "Budget deleted successfully",
	})
}
