// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"vidvault/internal/domain/entity"
	domainerrors "vidvault/internal/domain/errors"
	"vidvault/internal/domain/repository"
	"vidvault/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// primary pins the query to the write source. Credential and entitlement reads
// must see an activation committed a moment ago, which a lagging replica may not.
func (repo *userRepository) primary(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Clauses(dbresolver.Write)
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.primary(ctx).Where("id = ?", id).Take(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.primary(ctx).Where("email = ?", email).Take(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user and copies the generated ID and timestamp back.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt

	return nil
}

// Activate flips is_active in one UPDATE; there is no read-modify-write in between.
func (repo *userRepository) Activate(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("is_active", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to activate user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// List returns all users, newest first.
func (repo *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	var usersM []*model.UserModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&usersM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(usersM))
	for _, userM := range usersM {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// Count returns the total and active number of users in one query.
func (repo *userRepository) Count(ctx context.Context) (*entity.UserCounts, error) {
	var counts entity.UserCounts
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Select("COUNT(*) AS total, COUNT(CASE WHEN is_active THEN 1 END) AS active").
		Scan(&counts).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count users")
	}

	return &counts, nil
}

// Upsert inserts the user or overwrites password, role and entitlement of the
// existing row with the same email.
func (repo *userRepository) Upsert(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"password_hash", "role", "is_active"}),
	}).Create(userM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert user")
	}

	stored, err := repo.FindByEmail(ctx, user.Email)
	if err != nil {
		return err
	}
	user.ID = stored.ID
	user.CreatedAt = stored.CreatedAt

	return nil
}

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         entity.Role(data.Role),
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         data.Role.String(),
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
	}
}
