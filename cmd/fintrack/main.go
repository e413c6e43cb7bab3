package main

import (
	"context"
	"log/slog"
	"os"

	"fintrack/config"
	"fintrack/internal/delivery"
	"fintrack/internal/delivery/http"
	"fintrack/internal/delivery/http/middleware"
	"fintrack/internal/delivery/http/router/handler"
	"fintrack/internal/infra/auth"
	"fintrack/internal/infra/email"
	logs "fintrack/internal/infra/log"
	"fintrack/internal/infra/persistence/postgres"
	"fintrack/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewBudgetRepository,
			postgres.NewExpenseRepository,
			postgres.NewIncomeRepository,
			postgres.NewSavingRepository,
			postgres.NewCategoryRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			auth.NewBcryptHasher,
			auth.NewResetTokenSource,
			email.NewMXVerifier,
			email.NewSMTPMailer,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewBudgetService,
			impl.NewExpenseService,
			impl.NewIncomeService,
			impl.NewSavingService,
			impl.NewCategoryService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestContextMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewAuthHandler,
			handler.NewBudgetHandler,
			handler.NewExpenseHandler,
			handler.NewIncomeHandler,
			handler.NewSavingHandler,
			handler.NewCategoryHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
