package repository

import (
	"context"

	"carpool/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRouteNotFound is returned when a passenger has not declared a route.
var ErrRouteNotFound = errors.New("route not found")

// DriverRouteRepository owns the 1:N relationship between a driver and the routes they offer.
type DriverRouteRepository interface {
	// ReplaceAll deletes every route of the driver and inserts routes in order.
	// An empty slice leaves the driver with no routes.
	ReplaceAll(ctx context.Context, driverUserID uuid.UUID, routes []entity.RouteInput) error

	// FindByDriverUserID returns the driver's routes ordered by position.
	FindByDriverUserID(ctx context.Context, driverUserID uuid.UUID) ([]*entity.DriverRoute, error)

	// DeleteAllByDriverUserID removes every route of the driver.
	DeleteAllByDriverUserID(ctx context.Context, driverUserID uuid.UUID) error
}

// PassengerRouteRepository owns the single commute route of a passenger.
type PassengerRouteRepository interface {
	// UpsertSingle updates the passenger's route in place, inserting it if absent.
	UpsertSingle(ctx context.Context, passengerUserID uuid.UUID, route entity.Schedule) (uuid.UUID, error)

	// FindByPassengerUserID returns ErrRouteNotFound if the passenger has no route.
	FindByPassengerUserID(ctx context.Context, passengerUserID uuid.UUID) (*entity.PassengerRoute, error)

	// DeleteByPassengerUserID is a no-op when the passenger has no route.
	DeleteByPassengerUserID(ctx context.Context, passengerUserID uuid.UUID) error
}
