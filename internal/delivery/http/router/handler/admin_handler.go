package handler

import (
	"vidvault/internal/delivery/http/response"
	"vidvault/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler serves administrator views.
type AdminHandler struct {
	uc usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// ListUsers returns every account, newest first.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	records := make([]userRecordResponse, 0, len(users))
	for _, user := range users {
		records = append(records, toUserRecordResponse(user))
	}

	return response.OK(c, map[string]any{"users": records})
}
