package usecase

import (
	"context"

	"vidvault/internal/domain/entity"
)

// SimulationOutput is the before/after view returned by the simulated webhook.
type SimulationOutput struct {
	UserBefore           *entity.User
	UserAfter            *entity.User
	Result               entity.ActivationResult
	ActivationSuccessful bool
}

// Database reachability as reported by DebugSystem.
const (
	DatabaseConnected = "connected"
	DatabaseError     = "error"
)

// ConfiguredSettings reports which secrets and connections are present, never their values.
type ConfiguredSettings struct {
	StripeSecretKey     bool
	StripePriceID       bool
	StripeWebhookSecret bool
	Database            bool
	SigningSecret       bool
}

// SystemStatusOutput is the snapshot returned by DebugSystem.
type SystemStatusOutput struct {
	Environment    string
	Configured     ConfiguredSettings
	DatabaseStatus string
	Users          entity.UserCounts
}

// BillingUsecase defines subscription checkout and status operations.
type BillingUsecase interface {
	CreateCheckoutSession(ctx context.Context, userID int64, origin string) (*entity.CheckoutSession, error)
	// CreateCheckoutQR creates a checkout session and renders its URL as a PNG QR code.
	CreateCheckoutQR(ctx context.Context, userID int64, origin string) ([]byte, error)
	Status(ctx context.Context, userID int64) (bool, error)

	// SimulateWebhook runs activation for the caller as if a verified checkout
	// completion had arrived. Only mounted outside production.
	SimulateWebhook(ctx context.Context, userID int64) (*SimulationOutput, error)
	DebugUser(ctx context.Context, userID int64) (*entity.User, error)
	// DebugSystem reports configuration presence, whether the store answers and user totals.
	// A store failure is reported in the output, not returned.
	DebugSystem(ctx context.Context) *SystemStatusOutput
}
