package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "vidvault/internal/delivery/context"
	"vidvault/internal/domain/entity"
	domainerrors "vidvault/internal/domain/errors"
	mockusecase "vidvault/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func withIdentity(req *http.Request, identity *entity.Identity) *http.Request {
	return req.WithContext(deliverycontext.WithIdentity(req.Context(), identity))
}

// identityEcho replies 200 with the resolved identity so tests can see what the middleware stored.
func identityEcho(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c.Request().Context())
	if !ok {
		return c.NoContent(http.StatusTeapot)
	}

	return c.JSON(http.StatusOK, identity)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	alice := &entity.Identity{UserID: 7, Role: entity.RoleUser}

	tests := []struct {
		name        string
		header      string
		cookie      string
		setupMock   func(m *mockusecase.MockSessionUsecase)
		expectedErr error
	}{
		{
			name:   "bearer header",
			header: "Bearer header-token",
			setupMock: func(m *mockusecase.MockSessionUsecase) {
				m.EXPECT().Resolve(mock.Anything, "header-token").Return(alice, nil).Once()
			},
		},
		{
			name:   "cookie only",
			cookie: "cookie-token",
			setupMock: func(m *mockusecase.MockSessionUsecase) {
				m.EXPECT().Resolve(mock.Anything, "cookie-token").Return(alice, nil).Once()
			},
		},
		{
			name:   "header wins over cookie",
			header: "Bearer header-token",
			cookie: "cookie-token",
			setupMock: func(m *mockusecase.MockSessionUsecase) {
				m.EXPECT().Resolve(mock.Anything, "header-token").Return(alice, nil).Once()
			},
		},
		{
			name:   "non bearer header falls back to cookie",
			header: "Basic dXNlcjpwYXNz",
			cookie: "cookie-token",
			setupMock: func(m *mockusecase.MockSessionUsecase) {
				m.EXPECT().Resolve(mock.Anything, "cookie-token").Return(alice, nil).Once()
			},
		},
		{
			name:        "no token",
			setupMock:   func(m *mockusecase.MockSessionUsecase) {},
			expectedErr: domainerrors.ErrUnauthorized,
		},
		{
			name:        "empty bearer",
			header:      "Bearer ",
			setupMock:   func(m *mockusecase.MockSessionUsecase) {},
			expectedErr: domainerrors.ErrUnauthorized,
		},
		{
			name:   "resolver rejects",
			header: "Bearer stale",
			setupMock: func(m *mockusecase.MockSessionUsecase) {
				m.EXPECT().Resolve(mock.Anything, "stale").Return(nil, domainerrors.ErrUnauthorized).Once()
			},
			expectedErr: domainerrors.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := mockusecase.NewMockSessionUsecase(t)
			tt.setupMock(session)
			m := NewAuthMiddleware(session, mockusecase.NewMockEntitlementUsecase(t))

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: deliverycontext.CookieSessionToken, Value: tt.cookie})
			}
			c, rec := newTestContext(req)

			err := m.Authenticate(identityEcho)(c)

			if tt.expectedErr != nil {
				assert.True(t, errors.Is(err, tt.expectedErr))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"UserID":7,"Role":"USER"}`, rec.Body.String())
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockusecase.NewMockSessionUsecase(t), mockusecase.NewMockEntitlementUsecase(t))
	gate := m.RequireRole(entity.RoleAdmin)(identityEcho)

	t.Run("no identity is 401 before any role check", func(t *testing.T) {
		c, _ := newTestContext(httptest.NewRequest(http.MethodGet, "/admin", nil))
		assert.True(t, errors.Is(gate(c), domainerrors.ErrUnauthorized))
	})

	t.Run("other role is 403", func(t *testing.T) {
		req := withIdentity(httptest.NewRequest(http.MethodGet, "/admin", nil), &entity.Identity{UserID: 1, Role: entity.RoleUser})
		c, _ := newTestContext(req)
		assert.True(t, errors.Is(gate(c), domainerrors.ErrForbidden))
	})

	t.Run("matching role passes", func(t *testing.T) {
		req := withIdentity(httptest.NewRequest(http.MethodGet, "/admin", nil), &entity.Identity{UserID: 1, Role: entity.RoleAdmin})
		c, rec := newTestContext(req)
		require.NoError(t, gate(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAuthMiddleware_RequireActive(t *testing.T) {
	identity := &entity.Identity{UserID: 3, Role: entity.RoleUser}

	tests := []struct {
		name        string
		identity    *entity.Identity
		setupMock   func(m *mockusecase.MockEntitlementUsecase)
		expectedErr error
	}{
		{
			name:        "no identity",
			setupMock:   func(m *mockusecase.MockEntitlementUsecase) {},
			expectedErr: domainerrors.ErrUnauthorized,
		},
		{
			name:     "inactive",
			identity: identity,
			setupMock: func(m *mockusecase.MockEntitlementUsecase) {
				m.EXPECT().IsActive(mock.Anything, int64(3)).Return(false, nil).Once()
			},
			expectedErr: domainerrors.ErrPaymentRequired,
		},
		{
			name:     "active",
			identity: identity,
			setupMock: func(m *mockusecase.MockEntitlementUsecase) {
				m.EXPECT().IsActive(mock.Anything, int64(3)).Return(true, nil).Once()
			},
		},
		{
			name:     "store failure propagates",
			identity: identity,
			setupMock: func(m *mockusecase.MockEntitlementUsecase) {
				m.EXPECT().IsActive(mock.Anything, int64(3)).
					Return(false, domainerrors.NewDatabaseExecuteError(context.DeadlineExceeded, "find user")).Once()
			},
			expectedErr: context.DeadlineExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entitlement := mockusecase.NewMockEntitlementUsecase(t)
			tt.setupMock(entitlement)
			m := NewAuthMiddleware(mockusecase.NewMockSessionUsecase(t), entitlement)

			req := httptest.NewRequest(http.MethodGet, "/videos", nil)
			if tt.identity != nil {
				req = withIdentity(req, tt.identity)
			}
			c, rec := newTestContext(req)

			err := m.RequireActive(identityEcho)(c)

			if tt.expectedErr != nil {
				assert.True(t, errors.Is(err, tt.expectedErr))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}
