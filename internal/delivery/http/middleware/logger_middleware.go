package middleware

import (
	"log/slog"

	"vidvault/config"

	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
)

// LoggerMiddleware writes one access log line per request.
// Successful requests are logged at debug level unless env.debug is set.
type LoggerMiddleware struct {
	handler echo.MiddlewareFunc
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	defaultLevel := slog.LevelDebug
	if cfg.Env.Debug {
		defaultLevel = slog.LevelInfo
	}

	return &LoggerMiddleware{
		handler: slogecho.NewWithConfig(logger, slogecho.Config{
			DefaultLevel:     defaultLevel,
			ClientErrorLevel: slog.LevelWarn,
			ServerErrorLevel: slog.LevelError,
			WithUserAgent:    cfg.Env.Debug,
			WithRequestID:    true,
			Filters:          []slogecho.Filter{slogecho.IgnorePath("/health")},
		}),
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return m.handler(next)
}
