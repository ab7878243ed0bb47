package middleware

import (
	"strings"

	deliverycontext "vidvault/internal/delivery/context"
	"vidvault/internal/domain/entity"
	domainerrors "vidvault/internal/domain/errors"
	"vidvault/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the caller from a session token and gates routes
// on authentication, role and subscription state.
type AuthMiddleware struct {
	session     usecase.SessionUsecase
	entitlement usecase.EntitlementUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(session usecase.SessionUsecase, entitlement usecase.EntitlementUsecase) *AuthMiddleware {
	return &AuthMiddleware{session: session, entitlement: entitlement}
}

// Authenticate resolves the session token and stores the identity on the request context.
// The Authorization header wins over the session cookie.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := extractToken(c)
		if token == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("no session token presented")
		}

		identity, err := m.session.Resolve(c.Request().Context(), token)
		if err != nil {
			return errors.WithStack(err)
		}

		ctx := deliverycontext.WithIdentity(c.Request().Context(), identity)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole allows only callers whose role equals the given one.
// It must be used AFTER Authenticate; a missing identity is 401, a different role is 403.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := deliverycontext.GetIdentity(c.Request().Context())
			if !ok {
				return errors.WithStack(domainerrors.ErrUnauthorized)
			}

			if identity.Role != role {
				return domainerrors.ErrForbidden.WrapMessage("require role " + role.String())
			}

			return next(c)
		}
	}
}

// RequireActive allows only callers with an active subscription.
// The flag is read from the store on every request, never from the token.
func (m *AuthMiddleware) RequireActive(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, ok := deliverycontext.GetIdentity(c.Request().Context())
		if !ok {
			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		active, err := m.entitlement.IsActive(c.Request().Context(), identity.UserID)
		if err != nil {
			return errors.WithStack(err)
		}

		if !active {
			return errors.WithStack(domainerrors.ErrPaymentRequired)
		}

		return next(c)
	}
}

func extractToken(c echo.Context) string {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(header, bearerPrefix) {
		if token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)); token != "" {
			return token
		}
	}

	if cookie, err := c.Cookie(deliverycontext.CookieSessionToken); err == nil {
		return cookie.Value
	}

	return ""
}
