// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"vidvault/internal/domain/entity"
	domainerrors "vidvault/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// userResponse is the public view of an account. The password hash never leaves the server.
type userResponse struct {
	ID    int64       `json:"id"`
	Email string      `json:"email"`
	Role  entity.Role `json:"role"`
}

type authResponse struct {
	userResponse
	Token string `json:"token"`
}

// userRecordResponse adds the entitlement flag and creation time for admin and debug views.
type userRecordResponse struct {
	userResponse
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

type videoResponse struct {
	ID        int64     `json:"id"`
	URL       string    `json:"url"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{ID: user.ID, Email: user.Email, Role: user.Role}
}

func toUserRecordResponse(user *entity.User) userRecordResponse {
	return userRecordResponse{
		userResponse: toUserResponse(user),
		IsActive:     user.IsActive,
		CreatedAt:    user.CreatedAt,
	}
}

func toVideoResponse(video *entity.Video) videoResponse {
	return videoResponse{
		ID:        video.ID,
		URL:       video.URL,
		UserID:    video.UserID,
		CreatedAt: video.CreatedAt,
	}
}

// bindAndValidate decodes the JSON body into req and runs its validate tags.
// Both failures are reported as ErrInvalidInput.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrInvalidInput.WrapMessage(err.Error())
	}

	return c.Validate(req)
}
