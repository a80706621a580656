package postgres

import (
	"context"

	"carpool/internal/domain/entity"
	domainerrors "carpool/internal/domain/errors"
	"carpool/internal/domain/repository"
	"carpool/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var passengerRouteColumns = []string{
	"origin", "destination", "days",
	"depart_time", "arrive_time", "return_depart_time", "return_arrive_time",
	"updated_at",
}

// driverRouteRepository implements the repository.DriverRouteRepository interface.
type driverRouteRepository struct {
	db *gorm.DB
}

// NewDriverRouteRepository is the constructor for driverRouteRepository.
func NewDriverRouteRepository(db *gorm.DB) repository.DriverRouteRepository {
	return &driverRouteRepository{
		db: db,
	}
}

// ReplaceAll swaps the driver's route set for routes. Must run inside a transaction
// so readers never see the set half replaced.
func (repo *driverRouteRepository) ReplaceAll(ctx context.Context, driverUserID uuid.UUID, routes []entity.RouteInput) error {
	if err := repo.DeleteAllByDriverUserID(ctx, driverUserID); err != nil {
		return err
	}

	if len(routes) == 0 {
		return nil
	}

	routeModels := make([]*model.DriverRouteModel, 0, len(routes))
	for i, route := range routes {
		routeModels = append(routeModels, fromDriverRouteInput(driverUserID, i, route))
	}

	if err := repo.db.WithContext(ctx).Create(&routeModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to insert driver routes")
	}

	return nil
}

// FindByDriverUserID retrieves the driver's routes in submission order.
func (repo *driverRouteRepository) FindByDriverUserID(ctx context.Context, driverUserID uuid.UUID) ([]*entity.DriverRoute, error) {
	var routeModels []*model.DriverRouteModel

	if err := repo.db.WithContext(ctx).
		Where("driver_user_id = ?", driverUserID).
		Order("position ASC").
		Find(&routeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find driver routes")
	}

	routes := make([]*entity.DriverRoute, 0, len(routeModels))
	for _, routeM := range routeModels {
		routes = append(routes, toDriverRouteDomain(routeM))
	}

	return routes, nil
}

// DeleteAllByDriverUserID removes every route of the driver.
func (repo *driverRouteRepository) DeleteAllByDriverUserID(ctx context.Context, driverUserID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("driver_user_id = ?", driverUserID).
		Delete(&model.DriverRouteModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete driver routes")
	}

	return nil
}

// passengerRouteRepository implements the repository.PassengerRouteRepository interface.
type passengerRouteRepository struct {
	db *gorm.DB
}

// NewPassengerRouteRepository is the constructor for passengerRouteRepository.
func NewPassengerRouteRepository(db *gorm.DB) repository.PassengerRouteRepository {
	return &passengerRouteRepository{
		db: db,
	}
}

// UpsertSingle keeps the passenger's route ID stable across edits.
func (repo *passengerRouteRepository) UpsertSingle(ctx context.Context, passengerUserID uuid.UUID, route entity.Schedule) (uuid.UUID, error) {
	routeM := &model.PassengerRouteModel{
		PassengerUserID:  passengerUserID,
		Origin:           route.Origin,
		Destination:      route.Destination,
		Days:             route.Days,
		DepartTime:       route.DepartTime,
		ArriveTime:       route.ArriveTime,
		ReturnDepartTime: route.ReturnDepartTime,
		ReturnArriveTime: route.ReturnArriveTime,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "passenger_user_id"}},
			DoUpdates: clause.AssignmentColumns(passengerRouteColumns),
		}).
		Create(routeM).Error; err != nil {
		return uuid.Nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert passenger route")
	}

	// On conflict the generated ID was discarded, so read back the stored one.
	var stored model.PassengerRouteModel
	if err := repo.db.WithContext(ctx).
		Select("id").
		Where("passenger_user_id = ?", passengerUserID).
		Take(&stored).Error; err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to read passenger route id")
	}

	return stored.ID, nil
}

// FindByPassengerUserID retrieves the passenger's route.
func (repo *passengerRouteRepository) FindByPassengerUserID(ctx context.Context, passengerUserID uuid.UUID) (*entity.PassengerRoute, error) {
	var routeM model.PassengerRouteModel

	if err := repo.db.WithContext(ctx).
		Where("passenger_user_id = ?", passengerUserID).
		First(&routeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRouteNotFound
		}

		return nil, errors.Wrap(err, "failed to find passenger route")
	}

	return toPassengerRouteDomain(&routeM), nil
}

// DeleteByPassengerUserID removes the passenger's route, if any.
func (repo *passengerRouteRepository) DeleteByPassengerUserID(ctx context.Context, passengerUserID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("passenger_user_id = ?", passengerUserID).
		Delete(&model.PassengerRouteModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete passenger route")
	}

	return nil
}

// --- Mapper Functions ---

func fromDriverRouteInput(driverUserID uuid.UUID, position int, route entity.RouteInput) *model.DriverRouteModel {
	stops := make([]model.RouteStop, 0, len(route.Stops))
	for _, stop := range route.Stops {
		stops = append(stops, model.RouteStop{
			PassengerRef: stop.PassengerRef,
			Address:      stop.Address,
		})
	}

	return &model.DriverRouteModel{
		DriverUserID:     driverUserID,
		Position:         position,
		Origin:           route.Origin,
		Destination:      route.Destination,
		Days:             route.Days,
		DepartTime:       route.DepartTime,
		ArriveTime:       route.ArriveTime,
		ReturnDepartTime: route.ReturnDepartTime,
		ReturnArriveTime: route.ReturnArriveTime,
		Stops:            stops,
	}
}

func toDriverRouteDomain(data *model.DriverRouteModel) *entity.DriverRoute {
	if data == nil {
		return nil
	}

	stops := make([]entity.Stop, 0, len(data.Stops))
	for _, stop := range data.Stops {
		stops = append(stops, entity.Stop{
			PassengerRef: stop.PassengerRef,
			Address:      stop.Address,
		})
	}

	return &entity.DriverRoute{
		ID:           data.ID,
		DriverUserID: data.DriverUserID,
		Position:     data.Position,
		Schedule: entity.Schedule{
			Origin:           data.Origin,
			Destination:      data.Destination,
			Days:             data.Days,
			DepartTime:       data.DepartTime,
			ArriveTime:       data.ArriveTime,
			ReturnDepartTime: data.ReturnDepartTime,
			ReturnArriveTime: data.ReturnArriveTime,
		},
		Stops:     stops,
		CreatedAt: data.CreatedAt,
	}
}

func toPassengerRouteDomain(data *model.PassengerRouteModel) *entity.PassengerRoute {
	if data == nil {
		return nil
	}

	return &entity.PassengerRoute{
		ID:              data.ID,
		PassengerUserID: data.PassengerUserID,
		Schedule: entity.Schedule{
			Origin:           data.Origin,
			Destination:      data.Destination,
			Days:             data.Days,
			DepartTime:       data.DepartTime,
			ArriveTime:       data.ArriveTime,
			ReturnDepartTime: data.ReturnDepartTime,
			ReturnArriveTime: data.ReturnArriveTime,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
