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

const savingValidationMsg = "Please ensure all fields are filled out correctly"

type savingRequest struct {
	Name          string  `json:"name" validate:"required,max=255"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	DepositAmount float64 `json:"deposit_amount" validate:"required,gt=0"`
	Time          string  `json:"time" validate:"required,oneof=Daily Weekly Bi-Weekly Monthly Yearly"`
	Date          string  `json:"date" validate:"required,datetime=2006-01-02"`
}

type savingResponse struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	Name          string    `json:"name"`
	Amount        float64   `json:"amount"`
	DepositAmount float64   `json:"deposit_amount"`
	Time          string    `json:"time"`
	Date          string    `json:"date"`
	CreatedAt     time.Time `json:"created_at"`
}

func toSavingResponse(s *entity.Saving) *savingResponse {
	return &savingResponse{
		ID:            s.ID,
		UserID:        s.UserID,
		Name:          s.Name,
		Amount:        s.Amount,
		DepositAmount: s.DepositAmount,
		Time:          s.Time,
		Date:          s.Date.Format(dateLayout),
		CreatedAt:     s.CreatedAt,
	}
}

func (r *savingRequest) toInput(userID uuid.UUID) (*usecase.SavingInput, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return nil, err
	}

	return &usecase.SavingInput{
		UserID:        userID,
		Name:          r.Name,
		Amount:        r.Amount,
		DepositAmount: r.DepositAmount,
		Time:          r.Time,
		Date:          date,
	}, nil
}

// SavingHandler holds dependencies for savings CRUD handlers.
type SavingHandler struct {
	uc     usecase.SavingUsecase
	logger *slog.Logger
}

// NewSavingHandler is the constructor for SavingHandler, injected by Fx.
func NewSavingHandler(uc usecase.SavingUsecase, logger *slog.Logger) *SavingHandler {
	return &SavingHandler{uc: uc, logger: logger}
}

// Create records a new savings goal for the authenticated user.
func (h *SavingHandler) Create(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req savingRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewValidationError(savingValidationMsg)
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.NewValidationError(savingValidationMsg)
	}
	input, err := req.toInput(userID)
	if err != nil {
		return domainerrors.NewValidationError(savingValidationMsg)
	}

	saving, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toSavingResponse(saving))
}

// List returns all savings goals owned by the authenticated user.
func (h *SavingHandler) List(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	savings, err := h.uc.List(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]*savingResponse, 0, len(savings))
	for _, s := range savings {
		out = append(out, toSavingResponse(s))
	}

	return response.Success(c, http.StatusOK, out)
}

// Get returns a single savings goal by id.
func (h *SavingHandler) Get(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	id, err := idParam(c, "saving")
	if err != nil {
		return err
	}

	saving, err := h.uc.Get(c.Request().Context(), id, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSavingResponse(saving))
}

// Update replaces the writable fields of a savings goal.
func (h *SavingHandler) Update(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	id, err := idParam(c, "saving")
	if err != nil {
		return err
	}

	var req savingRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewValidationError(savingValidationMsg)
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.NewValidationError(savingValidationMsg)
	}
	input, err := req.toInput(userID)
	if err != nil {
		return domainerrors.NewValidationError(savingValidationMsg)
	}

	saving, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSavingResponse(saving))
}

// Delete removes a savings goal by id.
func (h *SavingHandler) Delete(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	id, err := idParam(c, "saving")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"message": "Saving deleted successfully",
	})
}
