package handler

import (
	"log/slog"
	"net/http"

	"carpool/internal/delivery/api/middleware"
	"carpool/internal/delivery/api/response"
	domainerrors "carpool/internal/domain/errors"
	"carpool/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	QueryUC usecase.RoleQueryUsecase
	Logger  *slog.Logger
}

// ProfileHandler serves profiles, vehicles and routes.
type ProfileHandler struct {
	queryUC usecase.RoleQueryUsecase
	logger  *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		queryUC: params.QueryUC,
		logger:  params.Logger,
	}
}

// GetDriverProfile handles GET /driver-profiles/:roleId
func (h *ProfileHandler) GetDriverProfile(c echo.Context) error {
	roleID, err := parseUUID(c.Param("roleId"), "roleId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.queryUC.GetDriverProfile(c.Request().Context(), roleID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// GetPassengerProfile handles GET /passenger-profiles/:roleId
func (h *ProfileHandler) GetPassengerProfile(c echo.Context) error {
	roleID, err := parseUUID(c.Param("roleId"), "roleId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.queryUC.GetPassengerProfile(c.Request().Context(), roleID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// GetVehicleByProfile handles GET /vehicles/by-profile/:id
func (h *ProfileHandler) GetVehicleByProfile(c echo.Context) error {
	profileID, err := parseUUID(c.Param("id"), "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	vehicle, err := h.queryUC.GetVehicleByProfile(c.Request().Context(), profileID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vehicle)
}

// ListDriverRoutes handles GET /routes?chofer_id=
func (h *ProfileHandler) ListDriverRoutes(c echo.Context) error {
	driverID, err := parseUUID(c.QueryParam("chofer_id"), "chofer_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	routes, err := h.queryUC.ListDriverRoutes(c.Request().Context(), driverID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, routes)
}

// GetMyPassengerRoutes handles GET /route-passengers/mis-rutas
func (h *ProfileHandler) GetMyPassengerRoutes(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	routes, err := h.queryUC.GetMyPassengerRoutes(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, routes)
}

func parseUUID(raw, field string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, domainerrors.NewValidationError(field, "")
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError(field, "must be a UUID")
	}

	return id, nil
}
