package repository

import (
	"context"

	"carpool/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProfileNotFound is returned when a role has no profile.
var ErrProfileNotFound = errors.New("profile not found")

// DriverProfileRepository owns the 1:1 relationship between a driver role and its profile.
type DriverProfileRepository interface {
	// Upsert overwrites every column of the role's profile, inserting it if absent.
	Upsert(ctx context.Context, roleID uuid.UUID, fields entity.DriverProfileFields) (uuid.UUID, error)

	// FindByRoleID returns ErrProfileNotFound if the role has no profile.
	FindByRoleID(ctx context.Context, roleID uuid.UUID) (*entity.DriverProfile, error)

	// DeleteByRoleID is a no-op when the profile does not exist.
	DeleteByRoleID(ctx context.Context, roleID uuid.UUID) error
}

// PassengerProfileRepository owns the 1:1 relationship between a passenger role and its profile.
type PassengerProfileRepository interface {
	// Upsert overwrites every column of the role's profile, inserting it if absent.
	Upsert(ctx context.Context, roleID uuid.UUID, fields entity.PassengerProfileFields) (uuid.UUID, error)

	// FindByRoleID returns ErrProfileNotFound if the role has no profile.
	FindByRoleID(ctx context.Context, roleID uuid.UUID) (*entity.PassengerProfile, error)

	// DeleteByRoleID is a no-op when the profile does not exist.
	DeleteByRoleID(ctx context.Context, roleID uuid.UUID) error
}
