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

const expenseValidationMsg = "Please ensure all fields are filled out correctly"

type expenseRequest struct {
	Category  string  `json:"category" validate:"required,max=255"`
	Location  string  `json:"location" validate:"required,max=255"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Date      string  `json:"date" validate:"required,datetime=2006-01-02"`
	Payment   string  `json:"payment" validate:"required,oneof=Credit Debit Cash"`
	Deduction string  `json:"deduction" validate:"required,oneof=None"`
}

type expenseResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Category  string    `json:"category"`
	Location  string    `json:"location"`
	Amount    float64   `json:"amount"`
	Date      string    `json:"date"`
	Payment   string    `json:"payment"`
	Deduction string    `json:"deduction"`
	CreatedAt time.Time `json:"created_at"`
}

func toExpenseResponse(e *entity.Expense) *expenseResponse {
	return &expenseResponse{
		ID:        e.ID,
		UserID:    e.UserID,
		Category:  e.Category,
		Location:  e.Location,
		Amount:    e.Amount,
		Date:      e.Date.Format(dateLayout),
		Payment:   e.Payment,
		Deduction: e.Deduction,
		CreatedAt: e.CreatedAt,
	}
}

func (r *expenseRequest) toInput(userID uuid.UUID) (*usecase.ExpenseInput, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return nil, err
	}

	return &usecase.ExpenseInput{
		UserID:    userID,
		Category:  r.Category,
		Location:  r.Location,
		Amount:    r.Amount,
		Date:      date,
		Payment:   r.Payment,
		Deduction: r.Deduction,
	}, nil
}

// ExpenseHandler holds dependencies for expense CRUD handlers.
type ExpenseHandler struct {
	uc     usecase.ExpenseUsecase
	logger *slog.Logger
}

// NewExpenseHandler is the constructor for ExpenseHandler, injected by Fx.
func NewExpenseHandler(uc usecase.ExpenseUsecase, logger *slog.Logger) *ExpenseHandler {
	return &ExpenseHandler{uc: uc, logger: logger}
}

// Create records a new expense for the authenticated user.
func (h *ExpenseHandler) Create(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req expenseRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewValidationError(expenseValidationMsg)
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.NewValidationError(expenseValidationMsg)
	}
	input, err := req.toInput(userID)
	if err != nil {
		return domainerrors.NewValidationError(expenseValidationMsg)
	}

	expense, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toExpenseResponse(expense))
}

// List returns all expenses owned by the authenticated user.
func (h *ExpenseHandler) List(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	expenses, err := h.uc.List(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]*expenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, toExpenseResponse(e))
	}

	return response.Success(c, http.StatusOK, out)
}

// Get returns a single expense by id.
func (h *ExpenseHandler) Get(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	id, err := idParam(c, "expense")
	if err != nil {
		return err
	}

	expense, err := h.uc.Get(c.Request().Context(), id, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toExpenseResponse(expense))
}

// Update replaces the writable fields of an expense.
func (h *ExpenseHandler) Update(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	id, err := idParam(c, "expense")
	if err != nil {
		return err
	}

	var req expenseRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewValidationError(expenseValidationMsg)
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.NewValidationError(expenseValidationMsg)
	}
	input, err := req.toInput(userID)
	if err != nil {
		return domainerrors.NewValidationError(expenseValidationMsg)
	}

	expense, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toExpenseResponse(expense))
}

// Delete removes an expense by id.
func (h *ExpenseHandler) Delete(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	id, err := idParam(c, "expense")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"message": "Expense deleted successfully",
	})
}
