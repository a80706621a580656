// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"carpool/internal/domain/entity"

	"github.com/google/uuid"
)

// RoleUsecase coordinates the role, profile, vehicle and route stores.
// Each mutating call runs in a single transaction.
type RoleUsecase interface {
	// ActivateRole creates or reactivates the role and overwrites its dependent data.
	ActivateRole(ctx context.Context, userID uuid.UUID, input *ActivateRoleInput) (*ActivateRoleOutput, error)

	// DeactivateRole keeps the role's data but marks it inactive.
	DeactivateRole(ctx context.Context, userID uuid.UUID, kind entity.RoleKind) error

	// RevokeRole deletes the role and everything it owns.
	RevokeRole(ctx context.Context, userID uuid.UUID, kind entity.RoleKind) error
}

// RoleQueryUsecase serves the read side: roles, profiles, vehicles and routes.
type RoleQueryUsecase interface {
	ListRoles(ctx context.Context, userID uuid.UUID) ([]*entity.Role, error)
	GetDriverProfile(ctx context.Context, roleID uuid.UUID) (*entity.DriverProfile, error)
	GetVehicleByProfile(ctx context.Context, driverProfileID uuid.UUID) (*entity.Vehicle, error)
	GetPassengerProfile(ctx context.Context, roleID uuid.UUID) (*entity.PassengerProfile, error)
	ListDriverRoutes(ctx context.Context, driverUserID uuid.UUID) ([]*entity.DriverRoute, error)
	GetMyPassengerRoutes(ctx context.Context, userID uuid.UUID) ([]*entity.PassengerRoute, error)
}

// --- Input DTOs ---

// ActivateRoleInput is the role to activate plus the data that goes with it.
type ActivateRoleInput struct {
	Kind entity.RoleKind
	Data RolePayload
}

// RolePayload carries the profile fields of either kind. Fields of the other kind are ignored.
type RolePayload struct {
	// Shared profile fields
	Neighborhood *string
	PhotoRef     *string
	Phone        *string
	Rating       *float64

	// Driver only
	Address *string
	Vehicle *entity.VehicleFields // nil leaves the vehicle untouched

	// Passenger only
	Nationality *string

	// Routes replace the stored set. nil leaves routes untouched; an empty slice clears them.
	Routes []entity.RouteInput
}

// DriverProfile extracts the driver profile columns.
func (p *RolePayload) DriverProfile() entity.DriverProfileFields {
	return entity.DriverProfileFields{
		Address:      p.Address,
		Neighborhood: p.Neighborhood,
		PhotoRef:     p.PhotoRef,
		Phone:        p.Phone,
		Rating:       p.Rating,
	}
}

// PassengerProfile extracts the passenger profile columns.
func (p *RolePayload) PassengerProfile() entity.PassengerProfileFields {
	return entity.PassengerProfileFields{
		Nationality:  p.Nationality,
		Neighborhood: p.Neighborhood,
		PhotoRef:     p.PhotoRef,
		Phone:        p.Phone,
		Rating:       p.Rating,
	}
}

// --- Output DTOs ---

// ActivateRoleOutput reports the activated role.
type ActivateRoleOutput struct {
	RoleID          uuid.UUID       `json:"role_id"`
	Kind            entity.RoleKind `json:"kind"`
	FirstActivation bool            `json:"first_activation"`
}
