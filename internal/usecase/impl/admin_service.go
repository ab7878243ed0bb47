package impl

import (
	"context"
	"log/slog"

	"vidvault/internal/domain/entity"
	domainerrors "vidvault/internal/domain/errors"
	"vidvault/internal/domain/repository"
	"vidvault/internal/domain/service"
	"vidvault/internal/usecase"

	"github.com/pkg/errors"
)

type adminService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// NewAdminService creates a new admin service instance
func NewAdminService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (s *adminService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// SeedAdmin upserts an active administrator; an existing account with the
// email is promoted and its password reset.
func (s *adminService) SeedAdmin(ctx context.Context, email, password string) (*entity.User, error) {
	if email == "" || password == "" {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("admin email and password are required")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	admin := &entity.User{
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
		IsActive:     true,
	}
	if err := s.userRepo.Upsert(ctx, admin); err != nil {
		return nil, errors.Wrap(err, "failed to upsert admin")
	}

	s.logger.InfoContext(ctx, "Admin account seeded", slog.Int64("userID", admin.ID), slog.String("email", email))

	return admin, nil
}
