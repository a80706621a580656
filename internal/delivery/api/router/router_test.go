package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"carpool/config"
	"carpool/internal/delivery/api/middleware"
	"carpool/internal/delivery/api/router/handler"
	"carpool/internal/delivery/api/validator"
	deliverymiddleware "carpool/internal/delivery/middleware"
	"carpool/internal/domain/entity"
	domainerrors "carpool/internal/domain/errors"
	"carpool/internal/domain/service"
	"carpool/internal/infra/metrics"
	mockService "carpool/internal/mocks/service"
	mockUsecase "carpool/internal/mocks/usecase"
	"carpool/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	userToken  = "user-token"
	guestToken = "guest-token"
)

type routerFixtures struct {
	echo    *echo.Echo
	userID  uuid.UUID
	roleUC  *mockUsecase.MockRoleUsecase
	queryUC *mockUsecase.MockRoleQueryUsecase
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func createTestRouter(t *testing.T) routerFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	userID := uuid.New()

	roleUC := mockUsecase.NewMockRoleUsecase(t)
	queryUC := mockUsecase.NewMockRoleQueryUsecase(t)
	tokenSvc := mockService.NewMockTokenService(t)

	tokenSvc.EXPECT().ValidateToken(userToken).
		Return(&service.Claims{UserID: userID, Session: entity.SessionUser}, nil).Maybe()
	tokenSvc.EXPECT().ValidateToken(guestToken).
		Return(&service.Claims{UserID: userID, Session: entity.SessionGuest}, nil).Maybe()
	tokenSvc.EXPECT().ValidateToken(mock.Anything).
		Return(nil, errors.New("token is expired")).Maybe()

	e := echo.New()
	e.Use(deliverymiddleware.NewRequestIDMiddleware(logger).Process)
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		RoleHandler: handler.NewRoleHandler(handler.RoleHandlerParams{
			RoleUC:  roleUC,
			QueryUC: queryUC,
			Logger:  logger,
		}),
		ProfileHandler: handler.NewProfileHandler(handler.ProfileHandlerParams{
			QueryUC: queryUC,
			Logger:  logger,
		}),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{
			TokenService: tokenSvc,
			Logger:       logger,
		}),
		Metrics: metrics.New(),
		Config:  &config.Config{Metrics: &config.MetricsConfig{Enabled: true}},
	})
	r.RegisterRoutes(e)

	return routerFixtures{
		echo:    e,
		userID:  userID,
		roleUC:  roleUC,
		queryUC: queryUC,
	}
}

func (f routerFixtures) do(t *testing.T, method, target, token, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

const driverBody = `{
	"kind": "driver",
	"data": {
		"address": "Av. Corrientes 1234",
		"neighborhood": "Almagro",
		"photo_ref": "photos/driver.jpg",
		"vehicle": {"make": "Toyota", "model": "Corolla", "color": "Gray", "plate": "AB123CD", "seat_count": 4, "photo_ref": "photos/car.jpg"}
	}
}`

func TestRouter_Health(t *testing.T) {
	f := createTestRouter(t)

	rec, env := f.do(t, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
}

func TestRouter_Metrics(t *testing.T) {
	f := createTestRouter(t)

	rec, _ := f.do(t, http.MethodGet, "/metrics", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestRouter_Authentication(t *testing.T) {
	f := createTestRouter(t)

	t.Run("missing header", func(t *testing.T) {
		rec, env := f.do(t, http.MethodGet, "/roles", "", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "MISSING_TOKEN", env.Error.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		rec, env := f.do(t, http.MethodGet, "/roles", "garbage", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_TOKEN", env.Error.Code)
	})

	t.Run("guest cannot mutate", func(t *testing.T) {
		for _, tc := range []struct{ method, target, body string }{
			{http.MethodPost, "/roles", driverBody},
			{http.MethodDelete, "/roles/driver", ""},
			{http.MethodPost, "/roles/driver/deactivate", ""},
		} {
			rec, env := f.do(t, tc.method, tc.target, guestToken, tc.body)

			assert.Equal(t, http.StatusForbidden, rec.Code, tc.target)
			assert.Equal(t, "FORBIDDEN", env.Error.Code)
		}
	})

	t.Run("guest can read", func(t *testing.T) {
		f.queryUC.EXPECT().ListRoles(mock.Anything, f.userID).Return([]*entity.Role{}, nil).Once()

		rec, _ := f.do(t, http.MethodGet, "/roles", guestToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRouter_ActivateRole(t *testing.T) {
	f := createTestRouter(t)
	roleID := uuid.New()

	f.roleUC.EXPECT().
		ActivateRole(mock.Anything, f.userID, mock.MatchedBy(func(in *usecase.ActivateRoleInput) bool {
			return in.Kind == entity.RoleDriver &&
				*in.Data.Address == "Av. Corrientes 1234" &&
				*in.Data.Vehicle.SeatCount == 4 &&
				in.Data.Routes == nil
		})).
		Return(&usecase.ActivateRoleOutput{RoleID: roleID, Kind: entity.RoleDriver, FirstActivation: true}, nil)

	rec, env := f.do(t, http.MethodPost, "/roles", userToken, driverBody)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Role activated","roleId":"`+roleID.String()+`"}`, string(env.Data))
	assert.NotEmpty(t, env.Meta.RequestID)
}

func TestRouter_ActivateRole_RouteLists(t *testing.T) {
	f := createTestRouter(t)

	body := `{"kind":"passenger","data":{"routes":[]}}`
	f.roleUC.EXPECT().
		ActivateRole(mock.Anything, f.userID, mock.MatchedBy(func(in *usecase.ActivateRoleInput) bool {
			return in.Data.Routes != nil && len(in.Data.Routes) == 0
		})).
		Return(&usecase.ActivateRoleOutput{RoleID: uuid.New(), Kind: entity.RolePassenger}, nil)

	rec, _ := f.do(t, http.MethodPost, "/roles", userToken, body)
	assert.Equal(t, http.StatusOK, rec.Code)

	passengerRef := uuid.New()
	body = `{"kind":"driver","data":{"routes":[{"origin":"A","destination":"B","days":"Mon","depart_time":"07:30",
		"stops":[{"passenger_ref":"` + passengerRef.String() + `","address":"Stop 1"},{"address":"Stop 2"}]}]}}`
	f.roleUC.EXPECT().
		ActivateRole(mock.Anything, f.userID, mock.MatchedBy(func(in *usecase.ActivateRoleInput) bool {
			if len(in.Data.Routes) != 1 || len(in.Data.Routes[0].Stops) != 2 {
				return false
			}
			stops := in.Data.Routes[0].Stops

			return *in.Data.Routes[0].DepartTime == "07:30" &&
				*stops[0].PassengerRef == passengerRef &&
				stops[1].PassengerRef == nil
		})).
		Return(&usecase.ActivateRoleOutput{RoleID: uuid.New(), Kind: entity.RoleDriver}, nil)

	rec, _ = f.do(t, http.MethodPost, "/roles", userToken, body)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ActivateRole_BadRequests(t *testing.T) {
	f := createTestRouter(t)

	tests := []struct {
		name      string
		body      string
		wantCode  string
		wantField string
	}{
		{name: "malformed json", body: `{"kind":`, wantCode: "INVALID_INPUT"},
		{name: "unknown kind", body: `{"kind":"admin","data":{}}`, wantCode: "VALIDATION_FAILED", wantField: "kind"},
		{name: "bad time", body: `{"kind":"driver","data":{"routes":[{"origin":"A","destination":"B","depart_time":"7am"}]}}`, wantCode: "VALIDATION_FAILED", wantField: "data.routes[0].depart_time"},
		{name: "route without origin", body: `{"kind":"driver","data":{"routes":[{"days":"Mon"}]}}`, wantCode: "VALIDATION_FAILED", wantField: "data.routes[0].origin"},
		{name: "route without destination", body: `{"kind":"passenger","data":{"routes":[{"origin":"A"}]}}`, wantCode: "VALIDATION_FAILED", wantField: "data.routes[0].destination"},
		{name: "malformed passenger ref", body: `{"kind":"driver","data":{"routes":[{"origin":"A","destination":"B","stops":[{"passenger_ref":"juan","address":"x"}]}]}}`, wantCode: "VALIDATION_FAILED", wantField: "data.routes[0].stops[0].passenger_ref"},
		{name: "zero seats", body: `{"kind":"driver","data":{"vehicle":{"seat_count":0}}}`, wantCode: "VALIDATION_FAILED", wantField: "data.vehicle.seat_count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := f.do(t, http.MethodPost, "/roles", userToken, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			if tt.wantField != "" {
				assert.Equal(t, tt.wantField, env.Error.Details["field"])
			}
		})
	}
}

func TestRouter_ActivateRole_UsecaseErrors(t *testing.T) {
	f := createTestRouter(t)

	f.roleUC.EXPECT().ActivateRole(mock.Anything, f.userID, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.NewValidationError("vehicle.plate", ""), "failed to activate role")).Once()

	rec, env := f.do(t, http.MethodPost, "/roles", userToken, driverBody)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "vehicle.plate", env.Error.Details["field"])
	assert.Equal(t, "missing required field: vehicle.plate", env.Error.Message)

	f.roleUC.EXPECT().ActivateRole(mock.Anything, f.userID, mock.Anything).
		Return(nil, errors.New("connection reset by peer")).Once()

	rec, env = f.do(t, http.MethodPost, "/roles", userToken, driverBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestRouter_RevokeAndDeactivate(t *testing.T) {
	f := createTestRouter(t)

	f.roleUC.EXPECT().RevokeRole(mock.Anything, f.userID, entity.RoleDriver).Return(nil).Once()
	rec, env := f.do(t, http.MethodDelete, "/roles/driver", userToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Role revoked"}`, string(env.Data))

	f.roleUC.EXPECT().RevokeRole(mock.Anything, f.userID, entity.RolePassenger).
		Return(domainerrors.ErrRoleNotFound.WrapMessage("no passenger role for this user")).Once()
	rec, env = f.do(t, http.MethodDelete, "/roles/passenger", userToken, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ROLE_NOT_FOUND", env.Error.Code)

	f.roleUC.EXPECT().DeactivateRole(mock.Anything, f.userID, entity.RolePassenger).Return(nil).Once()
	rec, env = f.do(t, http.MethodPost, "/roles/passenger/deactivate", userToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Role deactivated"}`, string(env.Data))
}

func TestRouter_ReadProjections(t *testing.T) {
	f := createTestRouter(t)

	t.Run("driver profile", func(t *testing.T) {
		roleID := uuid.New()
		address := "Av. Corrientes 1234"
		f.queryUC.EXPECT().GetDriverProfile(mock.Anything, roleID).
			Return(&entity.DriverProfile{ID: uuid.New(), RoleID: roleID, DriverProfileFields: entity.DriverProfileFields{Address: &address}}, nil).Once()

		rec, env := f.do(t, http.MethodGet, "/driver-profiles/"+roleID.String(), userToken, "")

		require.Equal(t, http.StatusOK, rec.Code)
		var profile map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &profile))
		assert.Equal(t, address, profile["address"])
		assert.Nil(t, profile["phone"])
	})

	t.Run("malformed role id", func(t *testing.T) {
		rec, env := f.do(t, http.MethodGet, "/passenger-profiles/not-a-uuid", userToken, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "roleId", env.Error.Details["field"])
	})

	t.Run("missing vehicle", func(t *testing.T) {
		profileID := uuid.New()
		f.queryUC.EXPECT().GetVehicleByProfile(mock.Anything, profileID).Return(nil, domainerrors.ErrVehicleNotFound).Once()

		rec, env := f.do(t, http.MethodGet, "/vehicles/by-profile/"+profileID.String(), userToken, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "VEHICLE_NOT_FOUND", env.Error.Code)
	})

	t.Run("driver routes require chofer_id", func(t *testing.T) {
		rec, env := f.do(t, http.MethodGet, "/routes", userToken, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "chofer_id", env.Error.Details["field"])
	})

	t.Run("driver routes", func(t *testing.T) {
		driverID := uuid.New()
		f.queryUC.EXPECT().ListDriverRoutes(mock.Anything, driverID).Return([]*entity.DriverRoute{
			{ID: uuid.New(), DriverUserID: driverID, Position: 0, Schedule: entity.Schedule{Origin: "A"}},
			{ID: uuid.New(), DriverUserID: driverID, Position: 1, Schedule: entity.Schedule{Origin: "B"}},
		}, nil).Once()

		rec, env := f.do(t, http.MethodGet, "/routes?chofer_id="+driverID.String(), userToken, "")

		require.Equal(t, http.StatusOK, rec.Code)
		var routes []map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &routes))
		require.Len(t, routes, 2)
		assert.Equal(t, "A", routes[0]["origin"])
		assert.Equal(t, "B", routes[1]["origin"])
	})

	t.Run("my passenger routes", func(t *testing.T) {
		f.queryUC.EXPECT().GetMyPassengerRoutes(mock.Anything, f.userID).Return([]*entity.PassengerRoute{}, nil).Once()

		rec, env := f.do(t, http.MethodGet, "/route-passengers/mis-rutas", userToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, string(env.Data))
	})
}
