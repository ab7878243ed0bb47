package impl

import (
	"context"
	"testing"

	"vidvault/internal/domain/entity"
	domainerrors "vidvault/internal/domain/errors"
	mockRepo "vidvault/internal/mocks/repository"
	mockService "vidvault/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminService_ListUsers(t *testing.T) {
	ctx := context.Background()
	userRepo := mockRepo.NewMockUserRepository(t)
	srv := NewAdminService(userRepo, mockService.NewMockPasswordHasher(t), newDiscardLogger())

	users := []*entity.User{{ID: 2}, {ID: 1}}
	userRepo.EXPECT().List(ctx).Return(users, nil)

	got, err := srv.ListUsers(ctx)

	require.NoError(t, err)
	assert.Equal(t, users, got)
}

func TestAdminService_SeedAdmin(t *testing.T) {
	ctx := context.Background()
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	srv := NewAdminService(userRepo, hasher, newDiscardLogger())

	hasher.EXPECT().Hash("admin123").Return("hash", nil)
	userRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "admin@gmail.com" && u.Role == entity.RoleAdmin && u.IsActive && u.PasswordHash == "hash"
		})).
		Run(func(_ context.Context, u *entity.User) { u.ID = 1 }).
		Return(nil)

	admin, err := srv.SeedAdmin(ctx, "admin@gmail.com", "admin123")

	require.NoError(t, err)
	assert.Equal(t, int64(1), admin.ID)
}

func TestAdminService_SeedAdmin_RequiresCredentials(t *testing.T) {
	srv := NewAdminService(mockRepo.NewMockUserRepository(t), mockService.NewMockPasswordHasher(t), newDiscardLogger())

	_, err := srv.SeedAdmin(context.Background(), "", "admin123")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}
