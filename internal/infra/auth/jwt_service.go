// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"log/slog"
	"time"

	"vidvault/config"
	"vidvault/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// devSecret is only ever used outside production when no secret is configured.
const devSecret = "dev-secret"

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService builds the token service from configuration.
// Production refuses to start without secretKey.access; other environments fall back
// to a well-known development secret and say so in the log.
func NewJWTService(cfg *config.Config, logger *slog.Logger) (service.TokenService, error) {
	secret := cfg.SecretKey.Access
	if secret == "" {
		if cfg.IsProduction() {
			return nil, errors.New("secretKey.access must be set in production")
		}
		logger.Warn("secretKey.access is empty, signing sessions with the development secret",
			slog.String("env", cfg.Env.Env),
		)
		secret = devSecret
	}

	ttl := 7 * 24 * time.Hour
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return newJWTService(secret, ttl, time.Now), nil
}

func newJWTService(secret string, ttl time.Duration, now func() time.Time) *jwtService {
	return &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
	}
}

// Issue signs {userId, iat, exp} for the user.
func (s *jwtService) Issue(userID int64) (string, error) {
	issuedAt := s.now()
	claims := &service.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks the signature and expiry and returns the user ID carried by the token.
func (s *jwtService) Verify(tokenString string) (int64, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return 0, errors.Wrap(service.ErrInvalidToken, err.Error())
	}
	if !token.Valid || claims.UserID <= 0 {
		return 0, errors.Wrap(service.ErrInvalidToken, "missing user id")
	}

	return claims.UserID, nil
}

// TTL returns the validity window of issued tokens.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}
