package main

import (
	"context"
	"log/slog"
	"os"

	"vidvault/config"
	"vidvault/internal/delivery"
	"vidvault/internal/delivery/worker"
	"vidvault/internal/delivery/worker/handler"
	logs "vidvault/internal/infra/log"
	"vidvault/internal/infra/persistence/postgres"
	"vidvault/internal/infra/pubsub"
	"vidvault/internal/usecase/impl"

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
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			context.Background,
			postgres.New,
		),
		logs.Module,
		// The entitlement service publishes on activation; the worker never activates.
		fx.Provide(pubsub.NewNoopPublisher),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewEntitlementService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start worker", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
