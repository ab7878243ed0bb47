package impl

import (
	"context"
	"log/slog"

	deliverycontext "vidvault/internal/delivery/context"
	"vidvault/internal/domain/entity"
	domainerrors "vidvault/internal/domain/errors"
	"vidvault/internal/domain/repository"
	"vidvault/internal/usecase"

	"github.com/pkg/errors"
)

type videoService struct {
	videoRepo repository.VideoRepository
	logger    *slog.Logger
}

// NewVideoService creates a new video service instance
func NewVideoService(videoRepo repository.VideoRepository, logger *slog.Logger) usecase.VideoUsecase {
	return &videoService{
		videoRepo: videoRepo,
		logger:    logger,
	}
}

// AddVideo stores a YouTube link for the user. The same URL may be stored by
// different users but only once per user.
func (s *videoService) AddVideo(ctx context.Context, input *usecase.AddVideoInput) (*entity.Video, error) {
	if !entity.IsYouTubeURL(input.URL) {
		return nil, domainerrors.ErrInvalidVideoURL
	}

	video := &entity.Video{
		URL:    input.URL,
		UserID: input.UserID,
	}
	if err := s.videoRepo.Create(ctx, video); err != nil {
		return nil, errors.Wrap(err, "failed to store video")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Video added",
		slog.Int64("userID", input.UserID),
		slog.Int64("videoID", video.ID),
	)

	return video, nil
}

// ListVideos returns the user's videos, newest first.
func (s *videoService) ListVideos(ctx context.Context, userID int64) ([]*entity.Video, error) {
	videos, err := s.videoRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list videos")
	}

	return videos, nil
}
