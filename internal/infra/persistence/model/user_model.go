// Package model holds the GORM persistence models. They never leave the infra layer.
package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(16);not null"`
	IsActive     bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time `gorm:"not null"`

	Videos []VideoModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
