// Command migrate creates or updates the role, profile, vehicle and route tables and exits.
package main

import (
	"context"
	"log/slog"

	"carpool/config"
	logs "carpool/internal/infra/log"
	"carpool/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	DB     *gorm.DB
	Logger *slog.Logger
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(runMigrate),
		fx.NopLogger,
	).Run()
}

// runMigrate hooks after the database ping so a bad connection fails fast.
func runMigrate(params migrateParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := postgres.Migrate(ctx, params.DB); err != nil {
				return err
			}
			params.Logger.InfoContext(ctx, "Role schema migrated")

			return params.Shutdown()
		},
	})
}
