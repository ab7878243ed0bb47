// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vidvault/config"
	"vidvault/internal/delivery/http/middleware"
	"vidvault/internal/delivery/http/router/handler"
	"vidvault/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	AuthHandler    *handler.AuthHandler
	BillingHandler *handler.BillingHandler
	WebhookHandler *handler.WebhookHandler
	VideoHandler   *handler.VideoHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	authHandler    *handler.AuthHandler
	billingHandler *handler.BillingHandler
	webhookHandler *handler.WebhookHandler
	videoHandler   *handler.VideoHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:            params.Config,
		authHandler:    params.AuthHandler,
		billingHandler: params.BillingHandler,
		webhookHandler: params.WebhookHandler,
		videoHandler:   params.VideoHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Checkout and status need a session but not a subscription.
	billingGroup := e.Group("/billing", r.authMiddleware.Authenticate)
	{
		billingGroup.POST("/create-checkout-session", r.billingHandler.CreateCheckoutSession)
		billingGroup.POST("/create-checkout-session/qr", r.billingHandler.CreateCheckoutQR)
		billingGroup.GET("/status", r.billingHandler.Status)
	}

	// Signature-verified, never session-authenticated.
	e.POST("/webhooks/stripe", r.webhookHandler.HandleStripe)

	videoGroup := e.Group("/videos", r.authMiddleware.Authenticate, r.authMiddleware.RequireActive)
	{
		videoGroup.GET("", r.videoHandler.ListVideos)
		videoGroup.POST("", r.videoHandler.AddVideo)
	}

	e.GET("/admin", r.adminHandler.ListUsers,
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireRole(entity.RoleAdmin),
	)

	e.GET("/protected", handler.Protected, r.authMiddleware.Authenticate)
}

// RegisterTestRoutes mounts the billing simulation endpoints.
// It does nothing unless test routes are enabled outside production.
func (r *router) RegisterTestRoutes(e *echo.Echo) {
	if !r.cfg.TestRoutesEnabled() {
		return
	}

	debugGroup := e.Group("/billing/debug", r.authMiddleware.Authenticate)
	{
		debugGroup.POST("/simulate-webhook", r.billingHandler.SimulateWebhook)
		debugGroup.GET("/user", r.billingHandler.DebugUser)
		debugGroup.GET("/system", r.billingHandler.DebugSystem)
	}
}
