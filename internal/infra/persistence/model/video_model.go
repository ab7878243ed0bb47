package model

import "time"

// VideoModel mirrors the 'videos' table. A user can save a given URL once.
type VideoModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	URL       string    `gorm:"type:text;not null;uniqueIndex:idx_videos_url_user_id"`
	UserID    int64     `gorm:"not null;index;uniqueIndex:idx_videos_url_user_id"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (VideoModel) TableName() string {
	return "videos"
}

// All returns every persistence model, in dependency order, for schema tooling.
func All() []any {
	return []any{&UserModel{}, &VideoModel{}}
}
