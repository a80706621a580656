package repository

import (
	"context"

	"carpool/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrVehicleNotFound is returned when a driver profile has no vehicle.
var ErrVehicleNotFound = errors.New("vehicle not found")

// VehicleRepository owns the 1:1 relationship between a driver profile and a vehicle.
type VehicleRepository interface {
	// Upsert overwrites every column of the profile's vehicle, inserting it if absent.
	Upsert(ctx context.Context, driverProfileID uuid.UUID, fields entity.VehicleFields) (uuid.UUID, error)

	// FindByDriverProfileID returns ErrVehicleNotFound if the profile has no vehicle.
	FindByDriverProfileID(ctx context.Context, driverProfileID uuid.UUID) (*entity.Vehicle, error)

	// DeleteByDriverProfileID is a no-op when the vehicle does not exist.
	DeleteByDriverProfileID(ctx context.Context, driverProfileID uuid.UUID) error
}
