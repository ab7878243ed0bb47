package main

import (
	"context"
	"log/slog"
	"os"

	"vidvault/config"
	"vidvault/internal/delivery"
	"vidvault/internal/delivery/http"
	"vidvault/internal/delivery/http/middleware"
	"vidvault/internal/delivery/http/router/handler"
	"vidvault/internal/infra/auth"
	logs "vidvault/internal/infra/log"
	"vidvault/internal/infra/payment/stripe"
	"vidvault/internal/infra/persistence/postgres"
	"vidvault/internal/infra/pubsub"
	"vidvault/internal/infra/qrcode"
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
	return fx.Options(
		fx.Provide(
			config.New,
			context.Background,
			postgres.New,
		),
		logs.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewVideoRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			stripe.NewGateway,
			qrcode.NewQRCodeServiceFromConfig,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewSessionService,
			impl.NewEntitlementService,
			impl.NewWebhookService,
			impl.NewBillingService,
			impl.NewVideoService,
			impl.NewAdminService,
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
			handler.NewAuthHandler,
			handler.NewBillingHandler,
			handler.NewWebhookHandler,
			handler.NewVideoHandler,
			handler.NewAdminHandler,
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
				os.Exit(1)
			}
		}()
	}
}
