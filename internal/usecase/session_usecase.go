package usecase

import (
	"context"

	"vidvault/internal/domain/entity"
)

// SessionUsecase turns a presented session token into a request identity.
type SessionUsecase interface {
	// Resolve verifies the token and confirms the user still exists.
	// Any verification failure or missing user yields ErrUnauthorized.
	Resolve(ctx context.Context, token string) (*entity.Identity, error)
}
