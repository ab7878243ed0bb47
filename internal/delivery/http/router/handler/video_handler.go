package handler

import (
	"vidvault/internal/delivery/http/response"
	"vidvault/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type addVideoRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// VideoHandler serves the caller's bookmarked videos.
type VideoHandler struct {
	uc usecase.VideoUsecase
}

// NewVideoHandler is the constructor for VideoHandler, injected by Fx.
func NewVideoHandler(uc usecase.VideoUsecase) *VideoHandler {
	return &VideoHandler{uc: uc}
}

// AddVideo bookmarks a YouTube link.
func (h *VideoHandler) AddVideo(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req addVideoRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	video, err := h.uc.AddVideo(c.Request().Context(), &usecase.AddVideoInput{
		UserID: userID,
		URL:    req.URL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, toVideoResponse(video))
}

// ListVideos returns the caller's videos, newest first.
func (h *VideoHandler) ListVideos(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	videos, err := h.uc.ListVideos(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	body := make([]videoResponse, 0, len(videos))
	for _, video := range videos {
		body = append(body, toVideoResponse(video))
	}

	return response.OK(c, body)
}
