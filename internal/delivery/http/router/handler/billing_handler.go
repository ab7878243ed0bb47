package handler

import (
	"net/http"
	"time"

	deliverycontext "vidvault/internal/delivery/context"
	"vidvault/internal/delivery/http/response"
	"vidvault/internal/domain/entity"
	domainerrors "vidvault/internal/domain/errors"
	"vidvault/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const contentTypePNG = "image/png"

type userSnapshot struct {
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

type simulationResponse struct {
	UserID               int64        `json:"userId"`
	UserBefore           userSnapshot `json:"userBefore"`
	UserAfter            userSnapshot `json:"userAfter"`
	ActivationSuccessful bool         `json:"activationSuccessful"`
}

type debugInfo struct {
	Timestamp  time.Time `json:"timestamp"`
	UserID     int64     `json:"userId"`
	UserExists bool      `json:"userExists"`
}

type debugUserResponse struct {
	User  userRecordResponse `json:"user"`
	Debug debugInfo          `json:"debug"`
}

type environmentStatus struct {
	Env                 string `json:"env"`
	StripeSecretKey     bool   `json:"stripeSecretKey"`
	StripePriceID       bool   `json:"stripePriceId"`
	StripeWebhookSecret bool   `json:"stripeWebhookSecret"`
	Database            bool   `json:"database"`
	SigningSecret       bool   `json:"signingSecret"`
}

type userTotals struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
}

type currentUser struct {
	ID   int64       `json:"id"`
	Role entity.Role `json:"role"`
}

type debugSystemResponse struct {
	Timestamp   time.Time         `json:"timestamp"`
	Environment environmentStatus `json:"environment"`
	Database    map[string]string `json:"database"`
	Users       userTotals        `json:"users"`
	CurrentUser currentUser       `json:"currentUser"`
}

// BillingHandler serves checkout creation and subscription status.
type BillingHandler struct {
	uc usecase.BillingUsecase
}

// NewBillingHandler is the constructor for BillingHandler, injected by Fx.
func NewBillingHandler(uc usecase.BillingUsecase) *BillingHandler {
	return &BillingHandler{uc: uc}
}

// CreateCheckoutSession returns the hosted checkout URL. The request Origin
// decides where the provider redirects back to.
func (h *BillingHandler) CreateCheckoutSession(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	session, err := h.uc.CreateCheckoutSession(c.Request().Context(), userID, c.Request().Header.Get(echo.HeaderOrigin))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]string{"url": session.URL})
}

// CreateCheckoutQR returns the checkout URL as a PNG QR code.
func (h *BillingHandler) CreateCheckoutQR(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	png, err := h.uc.CreateCheckoutQR(c.Request().Context(), userID, c.Request().Header.Get(echo.HeaderOrigin))
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.Blob(http.StatusOK, contentTypePNG, png)
}

// Status reports the caller's live entitlement.
func (h *BillingHandler) Status(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	active, err := h.uc.Status(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]bool{"active": active})
}

// SimulateWebhook activates the caller as if a verified checkout completed.
func (h *BillingHandler) SimulateWebhook(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	output, err := h.uc.SimulateWebhook(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, simulationResponse{
		UserID:               userID,
		UserBefore:           userSnapshot{IsActive: output.UserBefore.IsActive, CreatedAt: output.UserBefore.CreatedAt},
		UserAfter:            userSnapshot{IsActive: output.UserAfter.IsActive, CreatedAt: output.UserAfter.CreatedAt},
		ActivationSuccessful: output.ActivationSuccessful,
	}, "Webhook simulation completed")
}

// DebugUser returns the caller's stored record.
func (h *BillingHandler) DebugUser(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	user, err := h.uc.DebugUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, debugUserResponse{
		User: toUserRecordResponse(user),
		Debug: debugInfo{
			Timestamp:  time.Now().UTC(),
			UserID:     userID,
			UserExists: true,
		},
	})
}

// DebugSystem reports configuration presence, store reachability and user totals.
func (h *BillingHandler) DebugSystem(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	status := h.uc.DebugSystem(c.Request().Context())

	return response.OK(c, debugSystemResponse{
		Timestamp: time.Now().UTC(),
		Environment: environmentStatus{
			Env:                 status.Environment,
			StripeSecretKey:     status.Configured.StripeSecretKey,
			StripePriceID:       status.Configured.StripePriceID,
			StripeWebhookSecret: status.Configured.StripeWebhookSecret,
			Database:            status.Configured.Database,
			SigningSecret:       status.Configured.SigningSecret,
		},
		Database: map[string]string{"status": status.DatabaseStatus},
		Users: userTotals{
			Total:    status.Users.Total,
			Active:   status.Users.Active,
			Inactive: status.Users.Inactive(),
		},
		CurrentUser: currentUser{ID: identity.UserID, Role: identity.Role},
	})
}

// requireIdentity returns the authenticated caller.
func requireIdentity(c echo.Context) (*entity.Identity, error) {
	identity, ok := deliverycontext.GetIdentity(c.Request().Context())
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return identity, nil
}

// requireUserID returns the authenticated caller's ID.
func requireUserID(c echo.Context) (int64, error) {
	identity, err := requireIdentity(c)
	if err != nil {
		return 0, err
	}

	return identity.UserID, nil
}
