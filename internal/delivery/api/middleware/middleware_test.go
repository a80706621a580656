package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"carpool/internal/delivery/api/response"
	"carpool/internal/domain/entity"
	domainerrors "carpool/internal/domain/errors"
	"carpool/internal/domain/service"
	mockService "carpool/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setup      func(m *mockService.MockTokenService)
		wantStatus int
		wantCode   string
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized, wantCode: "MISSING_TOKEN"},
		{name: "not bearer", header: "Basic abc", wantStatus: http.StatusUnauthorized, wantCode: "INVALID_TOKEN"},
		{name: "empty bearer", header: "Bearer ", wantStatus: http.StatusUnauthorized, wantCode: "INVALID_TOKEN"},
		{
			name:   "rejected token",
			header: "Bearer expired",
			setup: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID, Session: entity.SessionUser}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockService.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}
			m := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokenSvc, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})

			req := httptest.NewRequest(http.MethodGet, "/roles", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			c, rec := newTestContext(req)

			err := m.Authenticate(func(c echo.Context) error {
				gotUser, ok := GetUserID(c)
				assert.True(t, ok)
				assert.Equal(t, userID, gotUser)

				session, ok := GetSession(c)
				assert.True(t, ok)
				assert.Equal(t, entity.SessionUser, session)

				return c.NoContent(http.StatusOK)
			})(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestAuthMiddleware_RequireWritableSession(t *testing.T) {
	m := NewAuthMiddleware(AuthMiddlewareParams{})
	next := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	for session, want := range map[entity.SessionKind]int{
		entity.SessionUser:  http.StatusNoContent,
		entity.SessionGuest: http.StatusForbidden,
	} {
		c, rec := newTestContext(httptest.NewRequest(http.MethodPost, "/roles", nil))
		c.Set(contextKeySession, session)

		require.NoError(t, m.RequireWritableSession(next)(c))
		assert.Equal(t, want, rec.Code, session)
	}

	// No session at all is treated as read-only.
	c, rec := newTestContext(httptest.NewRequest(http.MethodPost, "/roles", nil))
	require.NoError(t, m.RequireWritableSession(next)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	handler := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantHidden string
	}{
		{
			name:       "validation error",
			err:        errors.Wrap(domainerrors.NewValidationError("nationality", ""), "failed to activate role"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "not found",
			err:        domainerrors.ErrRoleNotFound.WrapMessage("no driver role for this user"),
			wantStatus: http.StatusNotFound,
			wantCode:   "ROLE_NOT_FOUND",
		},
		{
			name:       "database failure",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("pq: deadlock detected"), "activate role"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "DATABASE_EXECUTE_FAILED",
			wantHidden: "deadlock",
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("dial tcp: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantHidden: "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext(httptest.NewRequest(http.MethodPost, "/roles", nil))

			handler.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			if tt.wantHidden != "" {
				assert.NotContains(t, rec.Body.String(), tt.wantHidden)
			}
		})
	}
}
