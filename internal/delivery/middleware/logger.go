package middleware

import (
	"log/slog"

	"carpool/config"

	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
)

// LoggerMiddleware writes one access log line per request through slog-echo.
type LoggerMiddleware struct {
	handler echo.MiddlewareFunc
}

// NewLoggerMiddleware creates a new logger middleware. Probes and scrapes are not logged,
// and debug mode adds request and response headers.
func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	logCfg := slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithUserAgent:    true,
		WithRequestID:    true,
		Filters: []slogecho.Filter{
			slogecho.IgnorePath("/health", cfg.MetricsPath()),
		},
	}
	// Header logging is a develop-only aid.
	if cfg.Env.Debug && !cfg.IsProduction() {
		logCfg.WithRequestHeader = true
		logCfg.WithResponseHeader = true
	}

	return &LoggerMiddleware{
		handler: slogecho.NewWithConfig(logger, logCfg),
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return m.handler(next)
}
