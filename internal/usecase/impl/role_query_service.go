package impl

import (
	"context"
	"log/slog"

	deliverycontext "carpool/internal/delivery/context"
	"carpool/internal/domain/entity"
	domainerrors "carpool/internal/domain/errors"
	"carpool/internal/domain/repository"
	"carpool/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// roleQueryService implements the RoleQueryUsecase interface.
// Reads go through the non-transactional repositories.
type roleQueryService struct {
	roleRepo             repository.RoleRepository
	driverProfileRepo    repository.DriverProfileRepository
	passengerProfileRepo repository.PassengerProfileRepository
	vehicleRepo          repository.VehicleRepository
	driverRouteRepo      repository.DriverRouteRepository
	passengerRouteRepo   repository.PassengerRouteRepository
	logger               *slog.Logger
}

// RoleQueryServiceParams holds dependencies for RoleQueryService, injected by Fx.
type RoleQueryServiceParams struct {
	fx.In

	RoleRepo             repository.RoleRepository
	DriverProfileRepo    repository.DriverProfileRepository
	PassengerProfileRepo repository.PassengerProfileRepository
	VehicleRepo          repository.VehicleRepository
	DriverRouteRepo      repository.DriverRouteRepository
	PassengerRouteRepo   repository.PassengerRouteRepository
	Logger               *slog.Logger
}

// NewRoleQueryService is the constructor for roleQueryService.
func NewRoleQueryService(params RoleQueryServiceParams) usecase.RoleQueryUsecase {
	return &roleQueryService{
		roleRepo:             params.RoleRepo,
		driverProfileRepo:    params.DriverProfileRepo,
		passengerProfileRepo: params.PassengerProfileRepo,
		vehicleRepo:          params.VehicleRepo,
		driverRouteRepo:      params.DriverRouteRepo,
		passengerRouteRepo:   params.PassengerRouteRepo,
		logger:               params.Logger,
	}
}

// ListRoles returns every role of the user, active or not.
func (srv *roleQueryService) ListRoles(ctx context.Context, userID uuid.UUID) ([]*entity.Role, error) {
	roles, err := srv.roleRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list roles")
	}

	return roles, nil
}

func (srv *roleQueryService) GetDriverProfile(ctx context.Context, roleID uuid.UUID) (*entity.DriverProfile, error) {
	profile, err := srv.driverProfileRepo.FindByRoleID(ctx, roleID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrDriverProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to get driver profile")
	}

	return profile, nil
}

func (srv *roleQueryService) GetVehicleByProfile(ctx context.Context, driverProfileID uuid.UUID) (*entity.Vehicle, error) {
	vehicle, err := srv.vehicleRepo.FindByDriverProfileID(ctx, driverProfileID)
	if err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return nil, domainerrors.ErrVehicleNotFound
		}

		return nil, errors.Wrap(err, "failed to get vehicle")
	}

	return vehicle, nil
}

func (srv *roleQueryService) GetPassengerProfile(ctx context.Context, roleID uuid.UUID) (*entity.PassengerProfile, error) {
	profile, err := srv.passengerProfileRepo.FindByRoleID(ctx, roleID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrPassengerProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to get passenger profile")
	}

	return profile, nil
}

// ListDriverRoutes returns the driver's routes in submission order. A driver without routes gets an empty list.
func (srv *roleQueryService) ListDriverRoutes(ctx context.Context, driverUserID uuid.UUID) ([]*entity.DriverRoute, error) {
	routes, err := srv.driverRouteRepo.FindByDriverUserID(ctx, driverUserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list driver routes")
	}

	return routes, nil
}

// GetMyPassengerRoutes returns zero or one route.
func (srv *roleQueryService) GetMyPassengerRoutes(ctx context.Context, userID uuid.UUID) ([]*entity.PassengerRoute, error) {
	route, err := srv.passengerRouteRepo.FindByPassengerUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrRouteNotFound) {
			deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Passenger has no route", slog.String("userID", userID.String()))

			return []*entity.PassengerRoute{}, nil
		}

		return nil, errors.Wrap(err, "failed to get passenger route")
	}

	return []*entity.PassengerRoute{route}, nil
}
