package handler

import (
	"io"
	"log/slog"
	"net/http"

	deliverycontext "vidvault/internal/delivery/context"
	"vidvault/internal/delivery/http/response"
	domainerrors "vidvault/internal/domain/errors"
	"vidvault/internal/domain/service"
	"vidvault/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HeaderStripeSignature carries the provider's signature over the raw body.
const HeaderStripeSignature = "Stripe-Signature"

// WebhookHandler receives payment provider deliveries. Its replies are read by
// the provider, not by a browser, so they do not use the error envelope.
type WebhookHandler struct {
	uc     usecase.WebhookUsecase
	logger *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler, injected by Fx.
func NewWebhookHandler(uc usecase.WebhookUsecase, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{uc: uc, logger: logger}
}

// HandleStripe verifies the raw body against the signature header before any
// activation happens. The body must not be decoded before verification.
func (h *WebhookHandler) HandleStripe(c echo.Context) error {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)

	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return domainerrors.ErrInvalidInput.WrapMessage(err.Error())
	}

	outcome, err := h.uc.HandlePaymentWebhook(c.Request().Context(), payload, c.Request().Header.Get(HeaderStripeSignature))
	switch {
	case errors.Is(err, service.ErrMissingSignature):
		return response.Text(c, http.StatusBadRequest, "Missing signature")
	case errors.Is(err, service.ErrSignatureMismatch):
		logger.Warn("Webhook signature rejected", slog.Any("error", err))

		return response.Text(c, http.StatusBadRequest, "Webhook Error")
	case err != nil:
		logger.Error("Webhook handling failed", slog.Any("error", err))

		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Webhook handling failed"})
	}

	logger.Info("Webhook processed",
		slog.String("event_id", outcome.EventID),
		slog.String("event_type", outcome.EventType),
		slog.String("result", string(outcome.Result)),
	)

	return response.OK(c, map[string]bool{"received": true})
}
