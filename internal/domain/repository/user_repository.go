// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"vidvault/internal/domain/entity"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the credential store: user identity, role and entitlement.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user and fills in the generated ID and CreatedAt.
	// A duplicate email yields domainerrors.ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// Activate sets is_active = true in a single statement.
	// It returns ErrUserNotFound when no row matched.
	Activate(ctx context.Context, id int64) error

	// List returns all users, newest first.
	List(ctx context.Context) ([]*entity.User, error)

	// Count returns how many users exist and how many of them are active.
	Count(ctx context.Context) (*entity.UserCounts, error)

	// Upsert creates or overwrites the user keyed by email.
	Upsert(ctx context.Context, user *entity.User) error
}
