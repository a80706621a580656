// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"carpool/internal/delivery/api/middleware"
	"carpool/internal/delivery/api/response"
	"carpool/internal/domain/entity"
	"carpool/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RoleHandlerParams holds dependencies for RoleHandler, injected by Fx.
type RoleHandlerParams struct {
	fx.In

	RoleUC  usecase.RoleUsecase
	QueryUC usecase.RoleQueryUsecase
	Logger  *slog.Logger
}

// RoleHandler holds dependencies for role lifecycle handlers
type RoleHandler struct {
	roleUC  usecase.RoleUsecase
	queryUC usecase.RoleQueryUsecase
	logger  *slog.Logger
}

// NewRoleHandler is the constructor for RoleHandler
func NewRoleHandler(params RoleHandlerParams) *RoleHandler {
	return &RoleHandler{
		roleUC:  params.RoleUC,
		queryUC: params.QueryUC,
		logger:  params.Logger,
	}
}

// ActivateRole creates or edits the caller's role of the given kind.
func (h *RoleHandler) ActivateRole(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ActivateRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid role input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.roleUC.ActivateRole(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &response.MessageData{
		Message: "Role activated",
		RoleID:  output.RoleID.String(),
	})
}

// DeactivateRole keeps the caller's role data but marks the role inactive.
func (h *RoleHandler) DeactivateRole(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.roleUC.DeactivateRole(c.Request().Context(), userID, entity.RoleKind(c.Param("kind"))); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &response.MessageData{Message: "Role deactivated"})
}

// RevokeRole deletes the caller's role and everything attached to it.
func (h *RoleHandler) RevokeRole(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.roleUC.RevokeRole(c.Request().Context(), userID, entity.RoleKind(c.Param("kind"))); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &response.MessageData{Message: "Role revoked"})
}

// ListRoles returns the caller's roles, active or not.
func (h *RoleHandler) ListRoles(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	roles, err := h.queryUC.ListRoles(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, roles)
}
