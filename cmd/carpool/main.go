package main

import (
	"context"
	"log/slog"
	"os"

	"carpool/config"
	"carpool/internal/delivery"
	"carpool/internal/delivery/api"
	"carpool/internal/delivery/api/middleware"
	"carpool/internal/delivery/api/router/handler"
	"carpool/internal/infra/auth"
	logs "carpool/internal/infra/log"
	"carpool/internal/infra/metrics"
	"carpool/internal/infra/persistence/postgres"
	"carpool/internal/infra/pubsub"
	"carpool/internal/usecase/impl"

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
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			// Non-transactional repositories serve the read projections.
			postgres.NewRoleRepository,
			postgres.NewDriverProfileRepository,
			postgres.NewPassengerProfileRepository,
			postgres.NewVehicleRepository,
			postgres.NewDriverRouteRepository,
			postgres.NewPassengerRouteRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			pubsub.NewEventPublisher,
			metrics.NewLifecycleMetrics,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRoleService,
			impl.NewRoleQueryService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRoleHandler,
			handler.NewProfileHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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
				os.Exit(1)
			}
		}()
	}
}
