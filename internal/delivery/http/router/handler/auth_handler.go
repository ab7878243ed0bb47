package handler

import (
	"net/http"
	"time"

	"vidvault/config"
	deliverycontext "vidvault/internal/delivery/context"
	"vidvault/internal/delivery/http/response"
	"vidvault/internal/domain/entity"
	"vidvault/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=USER ADMIN"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// AuthHandler serves registration, login and the session cookie.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	secure bool
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		secure: cfg.IsProduction(),
	}
}

// Register creates an inactive account and starts a session for it.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     entity.Role(req.Role),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return h.startSession(c, output)
}

// Login verifies credentials and starts a session.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return h.startSession(c, output)
}

// Logout clears the session cookie. Tokens already handed out stay valid until they expire.
func (h *AuthHandler) Logout(c echo.Context) error {
	cookie := h.sessionCookie("", -1)
	cookie.Expires = time.Unix(0, 0)
	c.SetCookie(cookie)

	return response.OK(c, map[string]bool{"ok": true})
}

// Me returns the caller's account.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	user, err := h.uc.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return response.OK(c, toUserResponse(user))
}

func (h *AuthHandler) startSession(c echo.Context, output *usecase.AuthOutput) error {
	ttl := h.uc.SessionTTL()
	cookie := h.sessionCookie(output.Token, int(ttl.Seconds()))
	cookie.Expires = time.Now().Add(ttl)
	c.SetCookie(cookie)

	return response.OK(c, authResponse{
		userResponse: toUserResponse(output.User),
		Token:        output.Token,
	})
}

// sessionCookie must be SameSite=None in production so a separately hosted
// frontend can send it; browsers require Secure alongside None.
func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	cookie := &http.Cookie{
		Name:     deliverycontext.CookieSessionToken,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	if h.secure {
		cookie.SameSite = http.SameSiteNoneMode
		cookie.Secure = true
	}

	return cookie
}
