package usecase

import (
	"context"

	"vidvault/internal/domain/entity"
)

// WebhookOutcome reports what a delivered payment event did.
type WebhookOutcome struct {
	EventID   string
	EventType string
	Result    entity.ActivationResult
}

// WebhookUsecase handles signed payment-provider deliveries.
type WebhookUsecase interface {
	// HandlePaymentWebhook verifies and dispatches one delivery. Signature
	// problems return service.ErrMissingSignature or service.ErrSignatureMismatch.
	// Events that reference no usable account are acknowledged, not failed.
	HandlePaymentWebhook(ctx context.Context, payload []byte, signatureHeader string) (*WebhookOutcome, error)
}
