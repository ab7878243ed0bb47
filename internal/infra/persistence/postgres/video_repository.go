package postgres

import (
	"context"

	"vidvault/internal/domain/entity"
	domainerrors "vidvault/internal/domain/errors"
	"vidvault/internal/domain/repository"
	"vidvault/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type videoRepository struct {
	db *gorm.DB
}

// NewVideoRepository is the constructor for videoRepository.
func NewVideoRepository(db *gorm.DB) repository.VideoRepository {
	return &videoRepository{db: db}
}

func (repo *videoRepository) Create(ctx context.Context, video *entity.Video) error {
	videoM := &model.VideoModel{
		URL:    video.URL,
		UserID: video.UserID,
	}

	if err := repo.db.WithContext(ctx).Create(videoM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrVideoAlreadyExists.WrapMessage("video already stored for user")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("video owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create video")
	}

	video.ID = videoM.ID
	video.CreatedAt = videoM.CreatedAt

	return nil
}

func (repo *videoRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.Video, error) {
	var videosM []*model.VideoModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&videosM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list videos")
	}

	videos := make([]*entity.Video, 0, len(videosM))
	for _, videoM := range videosM {
		videos = append(videos, &entity.Video{
			ID:        videoM.ID,
			URL:       videoM.URL,
			UserID:    videoM.UserID,
			CreatedAt: videoM.CreatedAt,
		})
	}

	return videos, nil
}
