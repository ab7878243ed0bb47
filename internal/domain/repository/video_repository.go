package repository

import (
	"context"

	"vidvault/internal/domain/entity"
)

// VideoRepository stores the video links owned by users.
type VideoRepository interface {
	// Create persists a video; a duplicate (url, user) yields domainerrors.ErrVideoAlreadyExists.
	Create(ctx context.Context, video *entity.Video) error

	// ListByUser returns the user's videos, newest first.
	ListByUser(ctx context.Context, userID int64) ([]*entity.Video, error)
}
