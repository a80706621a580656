package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestAttach(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	Attach(c, "req-1", logger)

	assert.Equal(t, "req-1", GetRequestID(c))
	assert.Equal(t, "req-1", c.Response().Header().Get(HeaderXRequestID))
	assert.Equal(t, "req-1", GetRequestIDFromContext(c.Request().Context()))
	assert.Same(t, logger, GetLoggerOrDefault(c.Request().Context(), nil))
}

func TestGetRequestID_WithoutMiddleware(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Empty(t, GetRequestID(c))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))

	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
}
