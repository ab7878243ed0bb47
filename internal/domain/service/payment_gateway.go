package service

import (
	"context"
	"errors"

	"vidvault/internal/domain/entity"
)

var (
	// ErrMissingSignature is returned when the webhook secret or signature header is absent.
	ErrMissingSignature = errors.New("missing signature")
	// ErrSignatureMismatch is returned when the payload fails provider verification.
	ErrSignatureMismatch = errors.New("webhook signature verification failed")
)

// PaymentGateway is the boundary to the external payment provider.
type PaymentGateway interface {
	// CreateCheckoutSession starts a subscription checkout tied to the user.
	// origin is the frontend base URL used for the success/cancel redirects.
	CreateCheckoutSession(ctx context.Context, userID int64, origin string) (*entity.CheckoutSession, error)

	// ParseWebhookEvent verifies the provider signature and decodes the event.
	ParseWebhookEvent(payload []byte, signatureHeader string) (*entity.PaymentEvent, error)
}
