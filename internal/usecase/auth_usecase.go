// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"vidvault/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string
	Password string
	Role     entity.Role // empty means USER
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput is returned by register and login: the account and a fresh session token.
type AuthOutput struct {
	User  *entity.User
	Token string
}

// AuthUsecase defines the interface for account and credential operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	// CurrentUser re-reads the caller; a vanished account is Unauthorized.
	CurrentUser(ctx context.Context, userID int64) (*entity.User, error)
	// SessionTTL is the lifetime shared by issued tokens and the session cookie.
	SessionTTL() time.Duration
}
