// Command seed creates or resets the bootstrap administrator from seed.adminEmail
// and seed.adminPassword, then exits.
package main

import (
	"context"
	"log/slog"

	"vidvault/config"
	"vidvault/internal/errors"
	"vidvault/internal/infra/auth"
	logs "vidvault/internal/infra/log"
	"vidvault/internal/infra/persistence/postgres"
	"vidvault/internal/usecase"
	"vidvault/internal/usecase/impl"

	"go.uber.org/fx"
)

type seedParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Config *config.Config
	Logger *slog.Logger
	Admin  usecase.AdminUsecase
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			postgres.New,
			postgres.NewUserRepository,
			auth.NewBcryptHasher,
			impl.NewAdminService,
		),
		logs.Module,
		fx.Invoke(seedAdmin),
	).Run()
}

// seedAdmin runs after the database hook has pinged and migrated.
func seedAdmin(params seedParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			exitCode := 0
			if err := upsertAdmin(ctx, params); err != nil {
				params.Logger.Error("Failed to seed admin", slog.Any("error", err))
				exitCode = 1
			}

			return params.Shutdown(fx.ExitCode(exitCode))
		},
	})
}

func upsertAdmin(ctx context.Context, params seedParams) error {
	if params.Config.Seed == nil {
		return errors.New("seed configuration is missing")
	}

	admin, err := params.Admin.SeedAdmin(ctx, params.Config.Seed.AdminEmail, params.Config.Seed.AdminPassword)
	if err != nil {
		return errors.WithStack(err)
	}

	params.Logger.Info("Admin user ready",
		slog.Int64("user_id", admin.ID),
		slog.String("email", admin.Email),
	)

	return nil
}
