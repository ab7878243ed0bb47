// Package stripe adapts the Stripe API to the domain PaymentGateway.
package stripe

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"

	"vidvault/config"
	"vidvault/internal/domain/entity"
	domainerrors "vidvault/internal/domain/errors"
	"vidvault/internal/domain/service"
	"vidvault/internal/errors"

	stripego "github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
	"github.com/stripe/stripe-go/v81/webhook"
)

const (
	successPath = "/?status=success"
	cancelPath  = "/?status=cancelled"
)

type gateway struct {
	cfg      config.StripeConfig
	backends *stripego.Backends
	logger   *slog.Logger
}

// NewGateway builds the Stripe gateway. Missing credentials are reported per
// call so the service can start without payments configured.
func NewGateway(cfg *config.Config, logger *slog.Logger) service.PaymentGateway {
	return newGateway(cfg, nil, logger)
}

func newGateway(cfg *config.Config, backends *stripego.Backends, logger *slog.Logger) *gateway {
	var stripeCfg config.StripeConfig
	if cfg.Stripe != nil {
		stripeCfg = *cfg.Stripe
	}

	return &gateway{
		cfg:      stripeCfg,
		backends: backends,
		logger:   logger,
	}
}

// CreateCheckoutSession opens a subscription checkout for one unit of the
// configured price. The user ID travels as client_reference_id.
func (g *gateway) CreateCheckoutSession(ctx context.Context, userID int64, origin string) (*entity.CheckoutSession, error) {
	if g.cfg.SecretKey == "" || g.cfg.PriceID == "" {
		g.logger.ErrorContext(ctx, "Stripe configuration missing",
			slog.Bool("secret_key_missing", g.cfg.SecretKey == ""),
			slog.Bool("price_id_missing", g.cfg.PriceID == ""),
		)

		return nil, domainerrors.ErrPaymentProviderMisconfigured
	}

	origin = strings.TrimRight(origin, "/")
	if origin == "" {
		origin = strings.TrimRight(g.cfg.DefaultOrigin, "/")
	}

	params := &stripego.CheckoutSessionParams{
		Mode:              stripego.String(string(stripego.CheckoutSessionModeSubscription)),
		ClientReferenceID: stripego.String(strconv.FormatInt(userID, 10)),
		LineItems: []*stripego.CheckoutSessionLineItemParams{
			{
				Price:    stripego.String(g.cfg.PriceID),
				Quantity: stripego.Int64(1),
			},
		},
		SuccessURL: stripego.String(origin + successPath),
		CancelURL:  stripego.String(origin + cancelPath),
	}
	params.Context = ctx

	session, err := client.New(g.cfg.SecretKey, g.backends).CheckoutSessions.New(params)
	if err != nil {
		g.logger.ErrorContext(ctx, "Stripe checkout session creation failed",
			slog.Int64("user_id", userID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrCheckoutFailed, err.Error())
	}

	g.logger.InfoContext(ctx, "Stripe checkout session created",
		slog.Int64("user_id", userID),
		slog.String("session_id", session.ID),
	)

	return &entity.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

// ParseWebhookEvent checks the Stripe-Signature header against the webhook
// secret. Only checkout completions have their client reference decoded.
func (g *gateway) ParseWebhookEvent(payload []byte, signatureHeader string) (*entity.PaymentEvent, error) {
	if g.cfg.WebhookSecret == "" || signatureHeader == "" {
		return nil, service.ErrMissingSignature
	}

	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, g.cfg.WebhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, errors.Wrap(service.ErrSignatureMismatch, err.Error())
	}

	paymentEvent := &entity.PaymentEvent{
		ID:       event.ID,
		Type:     string(event.Type),
		Verified: true,
	}

	if event.Type == stripego.EventTypeCheckoutSessionCompleted && event.Data != nil {
		var session stripego.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return nil, errors.Wrap(err, "failed to decode checkout session")
		}
		paymentEvent.ClientReferenceID = session.ClientReferenceID
	}

	return paymentEvent, nil
}
