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

const categoryValidationMsg = "Category data is not formatted correctly"

type categoryRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type categoryResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func toCategoryResponse(cat *entity.Category) *categoryResponse {
	return &categoryResponse{
		ID:        cat.ID,
		UserID:    cat.UserID,
		Name:      cat.Name,
		CreatedAt: cat.CreatedAt,
	}
}

// CategoryHandler holds dependencies for category CRUD handlers.
type CategoryHandler struct {
	uc     usecase.CategoryUsecase
	logger *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler, injected by Fx.
func NewCategoryHandler(uc usecase.CategoryUsecase, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{uc: uc, logger: logger}
}

// Create records a new category for the authenticated user.
func (h *CategoryHandler) Create(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewValidationError(categoryValidationMsg)
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.NewValidationError(categoryValidationMsg)
	}

	category, err := h.uc.Create(c.Request().Context(), &usecase.CategoryInput{
		UserID: userID,
		Name:   req.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCategoryResponse(category))
}

// List returns all categories owned by the authenticated user.
func (h *CategoryHandler) List(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	categories, err := h.uc.List(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]*categoryResponse, 0, len(categories))
	for _, cat := range categories {
		out = append(out, toCategoryResponse(cat))
	}

	return response.Success(c, http.StatusOK, out)
}

// Get returns a single category by id.
func (h *CategoryHandler) Get(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	id, err := idParam(c, "category")
	if err != nil {
		return err
	}

	category, err := h.uc.Get(c.Request().Context(), id, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCategoryResponse(category))
}

// Update renames a category.
func (h *CategoryHandler) Update(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	id, err := idParam(c, "category")
	if err != nil {
		return err
	}

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewValidationError(categoryValidationMsg)
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.NewValidationError(categoryValidationMsg)
	}

	category, err := h.uc.Update(c.Request().Context(), id, &usecase.CategoryInput{
		UserID: userID,
		Name:   req.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCategoryResponse(category))
}

// Delete removes a category by id.
func (h *CategoryHandler) Delete(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	id, err := idParam(c, "category")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"message": "Category deleted successfully",
	})
}
