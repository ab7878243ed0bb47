package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"vidvault/config"
	deliverycontext "vidvault/internal/delivery/context"
	"vidvault/internal/delivery/http/middleware"
	"vidvault/internal/delivery/http/router"
	"vidvault/internal/delivery/http/router/handler"
	"vidvault/internal/domain/entity"
	domainerrors "vidvault/internal/domain/errors"
	"vidvault/internal/infra/auth"
	"vidvault/internal/infra/payment/stripe"
	"vidvault/internal/infra/persistence/postgres"
	"vidvault/internal/infra/persistence/sqlitetest"
	"vidvault/internal/infra/pubsub"
	"vidvault/internal/infra/qrcode"
	"vidvault/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v81/webhook"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testWebhookSecret = "whsec_test_secret"

type testApp struct {
	t   *testing.T
	e   *echo.Echo
	db  *gorm.DB
	cfg *config.Config
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = "test"
	cfg.Env.ServiceName = "vidvault"
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.SecretKey.Access = "test-signing-secret"
	cfg.Auth = &config.AuthConfig{BcryptCost: bcrypt.MinCost, TokenTTL: time.Hour}
	cfg.Stripe = &config.StripeConfig{
		WebhookSecret: testWebhookSecret,
		DefaultOrigin: "http://localhost:3000",
	}
	cfg.TestRoutes = &config.TestRoutesConfig{Enabled: true}

	return cfg
}

func newTestApp(t *testing.T, mutate func(cfg *config.Config)) *testApp {
	t.Helper()

	cfg := testConfig()
	if mutate != nil {
		mutate(cfg)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db := sqlitetest.New(t)
	userRepo := postgres.NewUserRepository(db)
	videoRepo := postgres.NewVideoRepository(db)

	tokens, err := auth.NewJWTService(cfg, logger)
	require.NoError(t, err)
	hasher := auth.NewBcryptHasher(cfg)
	gateway := stripe.NewGateway(cfg, logger)

	authUC := impl.NewAuthService(impl.AuthServiceParams{
		UserRepo: userRepo, Hasher: hasher, TokenService: tokens, Logger: logger,
	})
	sessionUC := impl.NewSessionService(impl.SessionServiceParams{
		UserRepo: userRepo, TokenService: tokens, Logger: logger,
	})
	entitlementUC := impl.NewEntitlementService(impl.EntitlementServiceParams{
		UserRepo: userRepo, Publisher: pubsub.NewNoopPublisher(logger), Logger: logger,
	})
	webhookUC := impl.NewWebhookService(impl.WebhookServiceParams{
		Gateway: gateway, Entitlement: entitlementUC, Logger: logger,
	})
	billingUC := impl.NewBillingService(impl.BillingServiceParams{
		Config:      cfg,
		Gateway:     gateway,
		QRCode:      qrcode.NewQRCodeServiceFromConfig(cfg),
		Entitlement: entitlementUC,
		UserRepo:    userRepo,
		Logger:      logger,
	})

	e := NewEcho(cfg, logger, router.RouterParams{
		Config:         cfg,
		AuthHandler:    handler.NewAuthHandler(authUC, cfg),
		BillingHandler: handler.NewBillingHandler(billingUC),
		WebhookHandler: handler.NewWebhookHandler(webhookUC, logger),
		VideoHandler:   handler.NewVideoHandler(impl.NewVideoService(videoRepo, logger)),
		AdminHandler:   handler.NewAdminHandler(impl.NewAdminService(userRepo, hasher, logger)),
		AuthMiddleware: middleware.NewAuthMiddleware(sessionUC, entitlementUC),
	})

	return &testApp{t: t, e: e, db: db, cfg: cfg}
}

type requestOption func(req *http.Request)

func withBearer(token string) requestOption {
	return func(req *http.Request) { req.Header.Set(echo.HeaderAuthorization, "Bearer "+token) }
}

func withCookie(token string) requestOption {
	return func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: deliverycontext.CookieSessionToken, Value: token})
	}
}

func withHeader(key, value string) requestOption {
	return func(req *http.Request) { req.Header.Set(key, value) }
}

func (a *testApp) do(method, path, body string, opts ...requestOption) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, opt := range opts {
		opt(req)
	}

	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)

	return rec
}

type sessionBody struct {
	ID    int64       `json:"id"`
	Email string      `json:"email"`
	Role  entity.Role `json:"role"`
	Token string      `json:"token"`
}

func (a *testApp) register(email, password, role string) sessionBody {
	a.t.Helper()

	payload := `{"email":"` + email + `","password":"` + password + `"`
	if role != "" {
		payload += `,"role":"` + role + `"`
	}
	payload += `}`

	rec := a.do(http.MethodPost, "/auth/register", payload)
	require.Equal(a.t, http.StatusOK, rec.Code, rec.Body.String())

	var body sessionBody
	require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func (a *testApp) signedCompletion(eventID, reference string) (payload []byte, header string) {
	a.t.Helper()

	raw, err := json.Marshal(map[string]any{
		"id":     eventID,
		"object": "event",
		"type":   entity.PaymentEventCheckoutCompleted,
		"data": map[string]any{
			"object": map[string]any{
				"id":                  "cs_test_1",
				"object":              "checkout.session",
				"client_reference_id": reference,
			},
		},
	})
	require.NoError(a.t, err)

	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload: raw,
		Secret:  testWebhookSecret,
	})

	return signed.Payload, signed.Header
}

func (a *testApp) deliverWebhook(payload []byte, header string) *httptest.ResponseRecorder {
	a.t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", strings.NewReader(string(payload)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if header != "" {
		req.Header.Set(handler.HeaderStripeSignature, header)
	}

	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) domainerrors.Response {
	t.Helper()

	var body domainerrors.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return body
}

func TestAliceSubscribesAndBookmarks(t *testing.T) {
	app := newTestApp(t, nil)

	alice := app.register("alice@example.com", "secret1", "")
	assert.Positive(t, alice.ID)
	assert.Equal(t, entity.RoleUser, alice.Role)
	assert.NotEmpty(t, alice.Token)

	rec := app.do(http.MethodGet, "/videos", "", withBearer(alice.Token))
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Equal(t, "Subscription required", decodeError(t, rec).Message)

	payload, header := app.signedCompletion("evt_alice", strconv.FormatInt(alice.ID, 10))
	rec = app.deliverWebhook(payload, header)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"received":true}`, rec.Body.String())

	// Redelivery is acknowledged without changing anything.
	rec = app.deliverWebhook(payload, header)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.do(http.MethodGet, "/billing/status", "", withBearer(alice.Token))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"active":true}`, rec.Body.String())

	rec = app.do(http.MethodGet, "/videos", "", withBearer(alice.Token))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = app.do(http.MethodPost, "/videos", `{"url":"https://www.youtube.com/watch?v=dQw4w9WgXcQ"}`, withBearer(alice.Token))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = app.do(http.MethodPost, "/videos", `{"url":"https://youtu.be/abc123"}`, withBearer(alice.Token))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = app.do(http.MethodGet, "/videos", "", withBearer(alice.Token))
	require.Equal(t, http.StatusOK, rec.Code)

	var videos []struct {
		URL    string `json:"url"`
		UserID int64  `json:"userId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &videos))
	require.Len(t, videos, 2)
	assert.Equal(t, "https://youtu.be/abc123", videos[0].URL)
	assert.Equal(t, alice.ID, videos[1].UserID)
}

func TestVideoValidation(t *testing.T) {
	app := newTestApp(t, nil)
	bob := app.register("bob@example.com", "secret1", "")
	require.NoError(t, app.db.Exec("UPDATE users SET is_active = ? WHERE id = ?", true, bob.ID).Error)

	tests := []struct {
		name            string
		body            string
		expectedStatus  int
		expectedMessage string
	}{
		{"not a url", `{"url":"not a url"}`, http.StatusBadRequest, "Invalid input"},
		{"missing url", `{}`, http.StatusBadRequest, "Invalid input"},
		{"other host", `{"url":"https://vimeo.com/123"}`, http.StatusBadRequest, "Invalid YouTube URL"},
		{"youtube without id", `{"url":"https://youtube.com/feed"}`, http.StatusBadRequest, "Invalid YouTube URL"},
		{"shorts", `{"url":"https://youtube.com/shorts/xyz"}`, http.StatusCreated, ""},
		{"duplicate", `{"url":"https://youtube.com/shorts/xyz"}`, http.StatusConflict, "Video already added"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.do(http.MethodPost, "/videos", tt.body, withBearer(bob.Token))
			require.Equal(t, tt.expectedStatus, rec.Code, rec.Body.String())
			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, decodeError(t, rec).Message)
			}
		})
	}
}

func TestRegisterAndLogin(t *testing.T) {
	app := newTestApp(t, nil)

	rec := app.do(http.MethodPost, "/auth/register", `{"email":"carol@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == deliverycontext.CookieSessionToken {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.False(t, cookie.Secure)
	assert.Equal(t, int(time.Hour.Seconds()), cookie.MaxAge)

	tests := []struct {
		name            string
		path            string
		body            string
		expectedStatus  int
		expectedMessage string
	}{
		{"duplicate email", "/auth/register", `{"email":"carol@example.com","password":"secret1"}`, http.StatusConflict, "Email already in use"},
		{"short password", "/auth/register", `{"email":"dave@example.com","password":"123"}`, http.StatusBadRequest, "Invalid input"},
		{"bad email", "/auth/register", `{"email":"dave","password":"secret1"}`, http.StatusBadRequest, "Invalid input"},
		{"password over 72 bytes", "/auth/register", `{"email":"dave@example.com","password":"` + strings.Repeat("a", 73) + `"}`, http.StatusBadRequest, "Invalid input"},
		{"unknown role", "/auth/register", `{"email":"dave@example.com","password":"secret1","role":"ROOT"}`, http.StatusBadRequest, "Invalid input"},
		{"malformed json", "/auth/register", `{"email":`, http.StatusBadRequest, "Invalid input"},
		{"short login password", "/auth/login", `{"email":"carol@example.com","password":"123"}`, http.StatusBadRequest, "Invalid input"},
		{"wrong password", "/auth/login", `{"email":"carol@example.com","password":"wrong-pass"}`, http.StatusUnauthorized, "Invalid credentials"},
		{"unknown email", "/auth/login", `{"email":"nobody@example.com","password":"secret1"}`, http.StatusUnauthorized, "Invalid credentials"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.do(http.MethodPost, tt.path, tt.body)
			require.Equal(t, tt.expectedStatus, rec.Code, rec.Body.String())
			assert.Equal(t, tt.expectedMessage, decodeError(t, rec).Message)
		})
	}

	longest := app.register("frank@example.com", strings.Repeat("a", 72), "")
	assert.NotZero(t, longest.ID)

	rec = app.do(http.MethodPost, "/auth/login", `{"email":"carol@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var login sessionBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	assert.Equal(t, "carol@example.com", login.Email)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestMeAcceptsHeaderOrCookie(t *testing.T) {
	app := newTestApp(t, nil)
	erin := app.register("erin@example.com", "secret1", "")

	for name, opt := range map[string]requestOption{
		"header": withBearer(erin.Token),
		"cookie": withCookie(erin.Token),
	} {
		t.Run(name, func(t *testing.T) {
			rec := app.do(http.MethodGet, "/auth/me", "", opt)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "no-store", rec.Header().Get(echo.HeaderCacheControl))
			assert.JSONEq(t, `{"id":`+strconv.FormatInt(erin.ID, 10)+`,"email":"erin@example.com","role":"USER"}`, rec.Body.String())
		})
	}

	rec := app.do(http.MethodGet, "/auth/me", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.do(http.MethodGet, "/auth/me", "", withBearer("not-a-token"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// A token for a deleted account no longer authenticates.
	require.NoError(t, app.db.Exec("DELETE FROM users WHERE id = ?", erin.ID).Error)
	rec = app.do(http.MethodGet, "/auth/me", "", withBearer(erin.Token))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	app := newTestApp(t, nil)

	rec := app.do(http.MethodPost, "/auth/logout", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, deliverycontext.CookieSessionToken, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestProductionCookieIsCrossSite(t *testing.T) {
	app := newTestApp(t, func(cfg *config.Config) { cfg.Env.Env = config.EnvProduction })

	rec := app.do(http.MethodPost, "/auth/register", `{"email":"frank@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, http.SameSiteNoneMode, cookies[0].SameSite)
	assert.True(t, cookies[0].Secure)
}

func TestAdminGateOrdering(t *testing.T) {
	app := newTestApp(t, nil)
	user := app.register("user@example.com", "secret1", "")
	admin := app.register("root@example.com", "secret1", "ADMIN")

	rec := app.do(http.MethodGet, "/admin", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.do(http.MethodGet, "/admin", "", withBearer(user.Token))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = app.do(http.MethodGet, "/admin", "", withBearer(admin.Token))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Users []struct {
			Email    string      `json:"email"`
			Role     entity.Role `json:"role"`
			IsActive bool        `json:"isActive"`
		} `json:"users"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Users, 2)
	assert.Equal(t, "root@example.com", body.Users[0].Email)
	assert.Equal(t, entity.RoleAdmin, body.Users[0].Role)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestProtectedAndHealth(t *testing.T) {
	app := newTestApp(t, nil)
	gina := app.register("gina@example.com", "secret1", "")

	rec := app.do(http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = app.do(http.MethodGet, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.do(http.MethodGet, "/protected", "", withCookie(gina.Token))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestWebhookRejections(t *testing.T) {
	app := newTestApp(t, nil)
	hank := app.register("hank@example.com", "secret1", "")
	payload, header := app.signedCompletion("evt_hank", strconv.FormatInt(hank.ID, 10))

	rec := app.deliverWebhook(payload, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing signature", rec.Body.String())

	tampered := strings.Replace(string(payload), "cs_test_1", "cs_test_2", 1)
	rec = app.deliverWebhook([]byte(tampered), header)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Webhook Error", rec.Body.String())

	rec = app.do(http.MethodGet, "/billing/status", "", withBearer(hank.Token))
	assert.JSONEq(t, `{"active":false}`, rec.Body.String())
}

func TestWebhookWithoutSecretIsMissingSignature(t *testing.T) {
	app := newTestApp(t, func(cfg *config.Config) { cfg.Stripe.WebhookSecret = "" })
	payload, header := app.signedCompletion("evt_1", "1")

	rec := app.deliverWebhook(payload, header)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing signature", rec.Body.String())
}

func TestWebhookUnusableReferenceIsAcknowledged(t *testing.T) {
	app := newTestApp(t, nil)

	for _, reference := range []string{"", "abc", "-3", "999"} {
		t.Run("reference "+reference, func(t *testing.T) {
			payload, header := app.signedCompletion("evt_"+reference, reference)

			rec := app.deliverWebhook(payload, header)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"received":true}`, rec.Body.String())
		})
	}

	var count int64
	require.NoError(t, app.db.Table("users").Count(&count).Error)
	assert.Zero(t, count)
}

func TestCheckoutWithoutProviderConfig(t *testing.T) {
	app := newTestApp(t, nil)
	ivy := app.register("ivy@example.com", "secret1", "")

	rec := app.do(http.MethodPost, "/billing/create-checkout-session", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.do(http.MethodPost, "/billing/create-checkout-session", "",
		withBearer(ivy.Token), withHeader(echo.HeaderOrigin, "https://app.example.com"))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Stripe configuration missing", decodeError(t, rec).Message)

	rec = app.do(http.MethodPost, "/billing/create-checkout-session/qr", "", withBearer(ivy.Token))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSimulateWebhookRoutes(t *testing.T) {
	app := newTestApp(t, nil)
	jane := app.register("jane@example.com", "secret1", "")

	rec := app.do(http.MethodGet, "/billing/debug/user", "", withBearer(jane.Token))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"userExists":true`)

	rec = app.do(http.MethodPost, "/billing/debug/simulate-webhook", "", withBearer(jane.Token))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			UserID     int64 `json:"userId"`
			UserBefore struct {
				IsActive bool `json:"isActive"`
			} `json:"userBefore"`
			UserAfter struct {
				IsActive bool `json:"isActive"`
			} `json:"userAfter"`
			ActivationSuccessful bool `json:"activationSuccessful"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Webhook simulation completed", body.Message)
	assert.Equal(t, jane.ID, body.Data.UserID)
	assert.False(t, body.Data.UserBefore.IsActive)
	assert.True(t, body.Data.UserAfter.IsActive)
	assert.True(t, body.Data.ActivationSuccessful)

	rec = app.do(http.MethodGet, "/videos", "", withBearer(jane.Token))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestDebugSystemRoute(t *testing.T) {
	app := newTestApp(t, nil)
	admin := app.register("root@example.com", "secret1", "ADMIN")
	lee := app.register("lee@example.com", "secret1", "")
	app.do(http.MethodPost, "/billing/debug/simulate-webhook", "", withBearer(lee.Token))

	rec := app.do(http.MethodGet, "/billing/debug/system", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.do(http.MethodGet, "/billing/debug/system", "", withBearer(admin.Token))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Environment struct {
			Env                 string `json:"env"`
			StripeSecretKey     bool   `json:"stripeSecretKey"`
			StripeWebhookSecret bool   `json:"stripeWebhookSecret"`
			SigningSecret       bool   `json:"signingSecret"`
		} `json:"environment"`
		Database struct {
			Status string `json:"status"`
		} `json:"database"`
		Users struct {
			Total    int64 `json:"total"`
			Active   int64 `json:"active"`
			Inactive int64 `json:"inactive"`
		} `json:"users"`
		CurrentUser struct {
			ID   int64       `json:"id"`
			Role entity.Role `json:"role"`
		} `json:"currentUser"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "test", body.Environment.Env)
	assert.False(t, body.Environment.StripeSecretKey)
	assert.True(t, body.Environment.StripeWebhookSecret)
	assert.True(t, body.Environment.SigningSecret)
	assert.Equal(t, "connected", body.Database.Status)
	assert.Equal(t, int64(2), body.Users.Total)
	assert.Equal(t, int64(1), body.Users.Active)
	assert.Equal(t, int64(1), body.Users.Inactive)
	assert.Equal(t, admin.ID, body.CurrentUser.ID)
	assert.Equal(t, entity.RoleAdmin, body.CurrentUser.Role)
	assert.NotContains(t, rec.Body.String(), testWebhookSecret)
}

func TestTestRoutesAbsentInProduction(t *testing.T) {
	app := newTestApp(t, func(cfg *config.Config) {
		cfg.Env.Env = config.EnvProduction
		cfg.TestRoutes.Enabled = true
	})
	kim := app.register("kim@example.com", "secret1", "")

	rec := app.do(http.MethodPost, "/billing/debug/simulate-webhook", "", withBearer(kim.Token))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.do(http.MethodGet, "/billing/debug/user", "", withBearer(kim.Token))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.do(http.MethodGet, "/billing/debug/system", "", withBearer(kim.Token))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCORSReflectsOrigin(t *testing.T) {
	app := newTestApp(t, nil)

	rec := app.do(http.MethodOptions, "/auth/login", "",
		withHeader(echo.HeaderOrigin, "https://frontend.example.com"),
		withHeader(echo.HeaderAccessControlRequestMethod, http.MethodPost),
	)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://frontend.example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
}

func TestRequestIDIsEchoed(t *testing.T) {
	app := newTestApp(t, nil)

	rec := app.do(http.MethodGet, "/health", "", withHeader(deliverycontext.HeaderXRequestID, "trace-1"))
	assert.Equal(t, "trace-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
}
