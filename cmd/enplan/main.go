package main

import (
	"context"
	"log/slog"
	"os"

	"enplan/config"
	"enplan/internal/delivery"
	"enplan/internal/delivery/http"
	"enplan/internal/delivery/http/middleware"
	"enplan/internal/delivery/http/router/handler"
	"enplan/internal/infra/auth"
	logs "enplan/internal/infra/log"
	"enplan/internal/infra/persistence/postgres"
	"enplan/internal/usecase"
	"enplan/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

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
			seedComponentCatalog,
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
			postgres.NewAccountRepository,
			postgres.NewProjectRepository,
			postgres.NewComponentRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewProjectService,
			impl.NewComponentService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewProjectHandler,
			handler.NewComponentHandler,
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

// seedComponentCatalog installs the built-in component catalog once the
// database is ready. The hook is appended after the postgres one, so the
// schema exists by the time it runs. Seeding is idempotent.
func seedComponentCatalog(lc fx.Lifecycle, componentUC usecase.ComponentUsecase) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return componentUC.Seed(ctx)
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
