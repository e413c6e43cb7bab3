// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fintrack/internal/delivery/http/middleware"
	"fintrack/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	AuthHandler     *handler.AuthHandler
	BudgetHandler   *handler.BudgetHandler
	ExpenseHandler  *handler.ExpenseHandler
	IncomeHandler   *handler.IncomeHandler
	SavingHandler   *handler.SavingHandler
	CategoryHandler *handler.CategoryHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Account and session routes. Registration and login are open; the rest
	// of the user surface requires an authenticated session.
	userGroup := api.Group("/user")
	{
		userGroup.POST("", r.params.UserHandler.Register)
		userGroup.POST("/login", r.params.UserHandler.Login)
		userGroup.POST("/logout", r.params.UserHandler.Logout, r.params.AuthMiddleware.Authenticate)
		userGroup.GET("/validate", r.params.UserHandler.Validate, r.params.AuthMiddleware.Authenticate)
		userGroup.PUT("", r.params.UserHandler.UpdateProfile, r.params.AuthMiddleware.Authenticate)
		userGroup.DELETE("", r.params.UserHandler.DeleteAccount, r.params.AuthMiddleware.Authenticate)
	}

	// Password reset flow. Both endpoints are open on purpose: the caller
	// has no session to present.
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/forgot-password", r.params.AuthHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.params.AuthHandler.ResetPassword)
	}

	registerResource(api, "/budget", r.params.AuthMiddleware, resourceHandlers{
		create: r.params.BudgetHandler.Create,
		list:   r.params.BudgetHandler.List,
		get:    r.params.BudgetHandler.Get,
		update: r.params.BudgetHandler.Update,
		delete: r.params.BudgetHandler.Delete,
	})
	registerResource(api, "/expense", r.params.AuthMiddleware, resourceHandlers{
		create: r.params.ExpenseHandler.Create,
		list:   r.params.ExpenseHandler.List,
		get:    r.params.ExpenseHandler.Get,
		update: r.params.ExpenseHandler.Update,
		delete: r.params.ExpenseHandler.Delete,
	})
	registerResource(api, "/income", r.params.AuthMiddleware, resourceHandlers{
		create: r.params.IncomeHandler.Create,
		list:   r.params.IncomeHandler.List,
		get:    r.params.IncomeHandler.Get,
		update: r.params.IncomeHandler.Update,
		delete: r.params.IncomeHandler.Delete,
	})
	registerResource(api, "/savings", r.params.AuthMiddleware, resourceHandlers{
		create: r.params.SavingHandler.Create,
		list:   r.params.SavingHandler.List,
		get:    r.params.SavingHandler.Get,
		update: r.params.SavingHandler.Update,
		delete: r.params.SavingHandler.Delete,
	})
	registerResource(api, "/categories", r.params.AuthMiddleware, resourceHandlers{
		create: r.params.CategoryHandler.Create,
		list:   r.params.CategoryHandler.List,
		get:    r.params.CategoryHandler.Get,
		update: r.params.CategoryHandler.Update,
		delete: r.params.CategoryHandler.Delete,
	})
}

type resourceHandlers struct {
	create echo.HandlerFunc
	list   echo.HandlerFunc
	get    echo.HandlerFunc
	update echo.HandlerFunc
	delete echo.HandlerFunc
}

// registerResource wires the uniform CRUD route shape shared by every
// finance resource. All routes sit behind the session gate.
func registerResource(api *echo.Group, prefix string, auth *middleware.AuthMiddleware, h resourceHandlers) {
	group := api.Group(prefix)
	group.Use(auth.Authenticate)
	{
		group.POST("", h.create)
		group.GET("", h.list)
		group.GET("/:id", h.get)
		group.PUT("/:id", h.update)
		group.DELETE("/:id", h.delete)
	}
}
