// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"carpool/config"
	"carpool/internal/delivery/api/middleware"
	"carpool/internal/delivery/api/router/handler"
	"carpool/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RoleHandler    *handler.RoleHandler
	ProfileHandler *handler.ProfileHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Registry
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	roleHandler    *handler.RoleHandler
	profileHandler *handler.ProfileHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Registry
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		roleHandler:    params.RoleHandler,
		profileHandler: params.ProfileHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.config.MetricsEnabled() && r.metrics != nil {
		e.GET(r.config.MetricsPath(), echo.WrapHandler(r.metrics.Handler()))
	}

	authenticate := r.authMiddleware.Authenticate
	writable := r.authMiddleware.RequireWritableSession

	// Role lifecycle; mutations are refused to read-only sessions
	rolesGroup := e.Group("/roles", authenticate)
	{
		rolesGroup.GET("", r.roleHandler.ListRoles)
		rolesGroup.POST("", r.roleHandler.ActivateRole, writable)
		rolesGroup.DELETE("/:kind", r.roleHandler.RevokeRole, writable)
		rolesGroup.POST("/:kind/deactivate", r.roleHandler.DeactivateRole, writable)
	}

	// Read projections
	e.GET("/driver-profiles/:roleId", r.profileHandler.GetDriverProfile, authenticate)
	e.GET("/passenger-profiles/:roleId", r.profileHandler.GetPassengerProfile, authenticate)
	e.GET("/vehicles/by-profile/:id", r.profileHandler.GetVehicleByProfile, authenticate)
	e.GET("/routes", r.profileHandler.ListDriverRoutes, authenticate)
	e.GET("/route-passengers/mis-rutas", r.profileHandler.GetMyPassengerRoutes, authenticate)
}
