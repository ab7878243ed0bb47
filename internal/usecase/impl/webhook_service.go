package impl

import (
	"context"
	"log/slog"

	deliverycontext "vidvault/internal/delivery/context"
	"vidvault/internal/domain/entity"
	domainerrors "vidvault/internal/domain/errors"
	"vidvault/internal/domain/service"
	"vidvault/internal/errors"
	"vidvault/internal/usecase"

	"go.uber.org/fx"
)

type webhookService struct {
	gateway     service.PaymentGateway
	entitlement usecase.EntitlementUsecase
	logger      *slog.Logger
}

// WebhookServiceParams holds dependencies for WebhookService, injected by Fx.
type WebhookServiceParams struct {
	fx.In

	Gateway     service.PaymentGateway
	Entitlement usecase.EntitlementUsecase
	Logger      *slog.Logger
}

// NewWebhookService is the constructor for webhookService.
func NewWebhookService(params WebhookServiceParams) usecase.WebhookUsecase {
	return &webhookService{
		gateway:     params.Gateway,
		entitlement: params.Entitlement,
		logger:      params.Logger,
	}
}

func (srv *webhookService) HandlePaymentWebhook(ctx context.Context, payload []byte, signatureHeader string) (*usecase.WebhookOutcome, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	event, err := srv.gateway.ParseWebhookEvent(payload, signatureHeader)
	if err != nil {
		logger.Warn("Webhook rejected", slog.Any("error", err))

		return nil, err
	}

	outcome := &usecase.WebhookOutcome{
		EventID:   event.ID,
		EventType: event.Type,
		Result:    entity.ActivationIgnored,
	}

	if event.Type != entity.PaymentEventCheckoutCompleted {
		logger.Debug("Webhook event ignored", slog.String("eventID", event.ID), slog.String("type", event.Type))

		return outcome, nil
	}

	result, err := srv.entitlement.Activate(ctx, &usecase.ActivateInput{
		SignatureValid:    event.Verified,
		ClientReferenceID: event.ClientReferenceID,
		PaymentEventID:    event.ID,
	})
	// Unresolvable references are acknowledged to stop provider redelivery.
	if errors.IsAny(err, domainerrors.ErrMalformedReference, domainerrors.ErrUserNotFound) {
		logger.Warn("Checkout completion references no usable account",
			slog.String("eventID", event.ID),
			slog.String("clientReferenceID", event.ClientReferenceID),
			slog.Any("error", err),
		)

		return outcome, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to handle checkout completion")
	}

	outcome.Result = result

	return outcome, nil
}
