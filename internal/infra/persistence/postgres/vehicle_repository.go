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

var vehicleColumns = []string{"make", "model", "color", "plate", "seat_count", "photo_ref", "updated_at"}

// vehicleRepository implements the repository.VehicleRepository interface.
type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository is the constructor for vehicleRepository.
func NewVehicleRepository(db *gorm.DB) repository.VehicleRepository {
	return &vehicleRepository{
		db: db,
	}
}

// Upsert overwrites the vehicle of the driver profile, inserting it if absent.
func (repo *vehicleRepository) Upsert(ctx context.Context, driverProfileID uuid.UUID, fields entity.VehicleFields) (uuid.UUID, error) {
	vehicleM := &model.VehicleModel{
		DriverProfileID: driverProfileID,
		Make:            fields.Make,
		Model:           fields.Model,
		Color:           fields.Color,
		Plate:           fields.Plate,
		SeatCount:       fields.SeatCount,
		PhotoRef:        fields.PhotoRef,
	}

	if err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "driver_profile_id"}},
			DoUpdates: clause.AssignmentColumns(vehicleColumns),
		}).
		Create(vehicleM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return uuid.Nil, repository.ErrProfileNotFound
		}

		return uuid.Nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert vehicle")
	}

	// On conflict the generated ID was discarded, so read back the stored one.
	var stored model.VehicleModel
	if err := repo.db.WithContext(ctx).
		Select("id").
		Where("driver_profile_id = ?", driverProfileID).
		Take(&stored).Error; err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to read vehicle id")
	}

	return stored.ID, nil
}

// FindByDriverProfileID retrieves the vehicle attached to the driver profile.
func (repo *vehicleRepository) FindByDriverProfileID(ctx context.Context, driverProfileID uuid.UUID) (*entity.Vehicle, error) {
	var vehicleM model.VehicleModel

	if err := repo.db.WithContext(ctx).
		Where("driver_profile_id = ?", driverProfileID).
		First(&vehicleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVehicleNotFound
		}

		return nil, errors.Wrap(err, "failed to find vehicle by driver profile")
	}

	return toVehicleDomain(&vehicleM), nil
}

// DeleteByDriverProfileID removes the vehicle of the driver profile, if any.
func (repo *vehicleRepository) DeleteByDriverProfileID(ctx context.Context, driverProfileID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("driver_profile_id = ?", driverProfileID).
		Delete(&model.VehicleModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete vehicle")
	}

	return nil
}

// --- Mapper Functions ---

func toVehicleDomain(data *model.VehicleModel) *entity.Vehicle {
	if data == nil {
		return nil
	}

	return &entity.Vehicle{
		ID:              data.ID,
		DriverProfileID: data.DriverProfileID,
		VehicleFields: entity.VehicleFields{
			Make:      data.Make,
			Model:     data.Model,
			Color:     data.Color,
			Plate:     data.Plate,
			SeatCount: data.SeatCount,
			PhotoRef:  data.PhotoRef,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
