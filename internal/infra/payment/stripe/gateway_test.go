package stripe

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"vidvault/config"
	"vidvault/internal/domain/entity"
	domainerrors "vidvault/internal/domain/errors"
	"vidvault/internal/domain/service"
	"vidvault/internal/errors"

	stripego "github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/webhook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWebhookSecret = "whsec_test_secret"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{Stripe: &config.StripeConfig{
		SecretKey:     "sk_test_123",
		PriceID:       "price_123",
		WebhookSecret: testWebhookSecret,
		DefaultOrigin: "http://localhost:3000",
	}}
}

func fakeBackends(t *testing.T, handler http.HandlerFunc) *stripego.Backends {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	backend := stripego.GetBackendWithConfig(stripego.APIBackend, &stripego.BackendConfig{
		HTTPClient:        server.Client(),
		LeveledLogger:     &stripego.LeveledLogger{Level: stripego.LevelNull},
		MaxNetworkRetries: stripego.Int64(0),
		URL:               stripego.String(server.URL),
	})

	return &stripego.Backends{API: backend, Connect: backend, Uploads: backend}
}

func signedPayload(t *testing.T, body map[string]any, secret string) ([]byte, string) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload: payload,
		Secret:  secret,
	})

	return signed.Payload, signed.Header
}

func completedEvent(reference string) map[string]any {
	return map[string]any{
		"id":          "evt_123",
		"object":      "event",
		"type":        "checkout.session.completed",
		"api_version": "2020-08-27",
		"data": map[string]any{
			"object": map[string]any{
				"id":                  "cs_test_123",
				"object":              "checkout.session",
				"client_reference_id": reference,
			},
		},
	}
}

func TestCreateCheckoutSession_SendsSubscriptionParams(t *testing.T) {
	var form url.Values
	backends := fakeBackends(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		form = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cs_test_123","object":"checkout.session","url":"https://checkout.stripe.com/c/pay/cs_test_123"}`))
	})

	gw := newGateway(testConfig(), backends, discardLogger())

	session, err := gw.CreateCheckoutSession(context.Background(), 42, "https://app.example.com/")
	require.NoError(t, err)
	assert.Equal(t, "cs_test_123", session.ID)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_123", session.URL)

	assert.Equal(t, "subscription", form.Get("mode"))
	assert.Equal(t, "42", form.Get("client_reference_id"))
	assert.Equal(t, "price_123", form.Get("line_items[0][price]"))
	assert.Equal(t, "1", form.Get("line_items[0][quantity]"))
	assert.Equal(t, "https://app.example.com/?status=success", form.Get("success_url"))
	assert.Equal(t, "https://app.example.com/?status=cancelled", form.Get("cancel_url"))
}

func TestCreateCheckoutSession_DefaultOrigin(t *testing.T) {
	var successURL string
	backends := fakeBackends(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		successURL = r.PostForm.Get("success_url")
		_, _ = w.Write([]byte(`{"id":"cs_1","url":"https://checkout.stripe.com/x"}`))
	})

	gw := newGateway(testConfig(), backends, discardLogger())

	_, err := gw.CreateCheckoutSession(context.Background(), 1, "")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/?status=success", successURL)
}

func TestCreateCheckoutSession_Misconfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.StripeConfig
	}{
		{name: "no stripe section", cfg: nil},
		{name: "no secret key", cfg: &config.StripeConfig{PriceID: "price_123"}},
		{name: "no price", cfg: &config.StripeConfig{SecretKey: "sk_test_123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := NewGateway(&config.Config{Stripe: tt.cfg}, discardLogger())

			_, err := gw.CreateCheckoutSession(context.Background(), 1, "")
			assert.True(t, errors.Is(err, domainerrors.ErrPaymentProviderMisconfigured))
		})
	}
}

func TestCreateCheckoutSession_ProviderFailure(t *testing.T) {
	backends := fakeBackends(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"No such price"}}`))
	})

	gw := newGateway(testConfig(), backends, discardLogger())

	_, err := gw.CreateCheckoutSession(context.Background(), 1, "")
	assert.True(t, errors.Is(err, domainerrors.ErrCheckoutFailed))
}

func TestParseWebhookEvent_CheckoutCompleted(t *testing.T) {
	gw := NewGateway(testConfig(), discardLogger())
	payload, header := signedPayload(t, completedEvent("42"), testWebhookSecret)

	event, err := gw.ParseWebhookEvent(payload, header)
	require.NoError(t, err)
	assert.Equal(t, "evt_123", event.ID)
	assert.Equal(t, entity.PaymentEventCheckoutCompleted, event.Type)
	assert.Equal(t, "42", event.ClientReferenceID)
	assert.True(t, event.Verified)
}

func TestParseWebhookEvent_OtherKind(t *testing.T) {
	gw := NewGateway(testConfig(), discardLogger())
	body := map[string]any{
		"id":     "evt_456",
		"object": "event",
		"type":   "invoice.paid",
		"data":   map[string]any{"object": map[string]any{"id": "in_1", "object": "invoice"}},
	}
	payload, header := signedPayload(t, body, testWebhookSecret)

	event, err := gw.ParseWebhookEvent(payload, header)
	require.NoError(t, err)
	assert.Equal(t, "invoice.paid", event.Type)
	assert.Empty(t, event.ClientReferenceID)
}

func TestParseWebhookEvent_Rejections(t *testing.T) {
	payload, header := signedPayload(t, completedEvent("42"), testWebhookSecret)
	_, wrongHeader := signedPayload(t, completedEvent("42"), "whsec_other")
	tampered := append([]byte(nil), payload[:len(payload)-1]...)
	tampered = append(tampered, []byte(" }")...)

	tests := []struct {
		name    string
		secret  string
		payload []byte
		header  string
		want    error
	}{
		{name: "missing header", secret: testWebhookSecret, payload: payload, header: "", want: service.ErrMissingSignature},
		{name: "missing secret", secret: "", payload: payload, header: header, want: service.ErrMissingSignature},
		{name: "wrong secret", secret: testWebhookSecret, payload: payload, header: wrongHeader, want: service.ErrSignatureMismatch},
		{name: "garbage header", secret: testWebhookSecret, payload: payload, header: "t=1,v1=deadbeef", want: service.ErrSignatureMismatch},
		{name: "tampered body", secret: testWebhookSecret, payload: tampered, header: header, want: service.ErrSignatureMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Stripe.WebhookSecret = tt.secret
			gw := NewGateway(cfg, discardLogger())

			_, err := gw.ParseWebhookEvent(tt.payload, tt.header)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want))
		})
	}
}
