package service

import (
	"context"
	"time"
)

// EntitlementActivatedEvent is published after a user's subscription becomes active.
type EntitlementActivatedEvent struct {
	UserID         int64     `json:"user_id"`
	PaymentEventID string    `json:"payment_event_id,omitempty"`
	ActivatedAt    time.Time `json:"activated_at"`
	RequestID      string    `json:"request_id,omitempty"`
}

// EventPublisher fans entitlement changes out to other systems.
type EventPublisher interface {
	PublishEntitlementActivated(ctx context.Context, event *EntitlementActivatedEvent) error
	Close() error
}
