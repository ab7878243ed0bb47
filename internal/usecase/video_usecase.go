package usecase

import (
	"context"

	"vidvault/internal/domain/entity"
)

// AddVideoInput defines the data required to bookmark a video.
type AddVideoInput struct {
	UserID int64
	URL    string
}

// VideoUsecase defines the bookmark operations available to active subscribers.
type VideoUsecase interface {
	AddVideo(ctx context.Context, input *AddVideoInput) (*entity.Video, error)
	ListVideos(ctx context.Context, userID int64) ([]*entity.Video, error)
}
