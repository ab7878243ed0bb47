package usecase

import (
	"context"

	"vidvault/internal/domain/entity"
)

// AdminUsecase defines administrator operations.
type AdminUsecase interface {
	ListUsers(ctx context.Context) ([]*entity.User, error)
	// SeedAdmin creates or resets the bootstrap administrator as an active ADMIN.
	SeedAdmin(ctx context.Context, email, password string) (*entity.User, error)
}
