package usecase

import (
	"context"

	"vidvault/internal/domain/entity"
)

// ActivateInput carries a payment completion into the entitlement activator.
type ActivateInput struct {
	// SignatureValid must be true; only verified provider events may activate.
	SignatureValid    bool
	ClientReferenceID string
	// PaymentEventID is forwarded to the activation event, optional.
	PaymentEventID string
}

// EntitlementUsecase owns the isActive flag.
type EntitlementUsecase interface {
	// Activate is idempotent: activating an active user succeeds without a write.
	Activate(ctx context.Context, input *ActivateInput) (entity.ActivationResult, error)
	// IsActive reads the live entitlement flag.
	IsActive(ctx context.Context, userID int64) (bool, error)
}
