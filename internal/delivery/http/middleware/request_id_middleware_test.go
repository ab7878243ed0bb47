package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "vidvault/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	var logs bytes.Buffer
	m := NewRequestIDMiddleware(slog.New(slog.NewJSONHandler(&logs, nil)))

	handler := m.Process(func(c echo.Context) error {
		ctx := c.Request().Context()
		deliverycontext.GetLogger(ctx).Info("inside")

		return c.String(http.StatusOK, deliverycontext.GetRequestIDFromContext(ctx))
	})

	t.Run("propagates client id", func(t *testing.T) {
		logs.Reset()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
		c, rec := newTestContext(req)

		require.NoError(t, handler(c))
		assert.Equal(t, "client-id", rec.Body.String())
		assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Contains(t, logs.String(), `"request_id":"client-id"`)
	})

	t.Run("generates id", func(t *testing.T) {
		c, rec := newTestContext(httptest.NewRequest(http.MethodGet, "/", nil))

		require.NoError(t, handler(c))
		assert.Len(t, rec.Body.String(), 36)
		assert.Equal(t, rec.Body.String(), rec.Header().Get(deliverycontext.HeaderXRequestID))
	})
}
