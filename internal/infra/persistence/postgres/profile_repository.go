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

// Every descriptive column is rewritten on upsert. A nil field becomes NULL.
var (
	driverProfileColumns = []string{"address", "neighborhood", "photo_ref", "phone", "rating", "updated_at"}

	passengerProfileColumns = []string{"nationality", "neighborhood", "photo_ref", "phone", "rating", "updated_at"}
)

// driverProfileRepository implements the repository.DriverProfileRepository interface.
type driverProfileRepository struct {
	db *gorm.DB
}

// NewDriverProfileRepository is the constructor for driverProfileRepository.
func NewDriverProfileRepository(db *gorm.DB) repository.DriverProfileRepository {
	return &driverProfileRepository{
		db: db,
	}
}

// Upsert overwrites the driver profile of the role, inserting it on first activation.
func (repo *driverProfileRepository) Upsert(ctx context.Context, roleID uuid.UUID, fields entity.DriverProfileFields) (uuid.UUID, error) {
	profileM := &model.DriverProfileModel{
		RoleID:       roleID,
		Address:      fields.Address,
		Neighborhood: fields.Neighborhood,
		PhotoRef:     fields.PhotoRef,
		Phone:        fields.Phone,
		Rating:       fields.Rating,
	}

	if err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "role_id"}},
			DoUpdates: clause.AssignmentColumns(driverProfileColumns),
		}).
		Create(profileM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return uuid.Nil, repository.ErrRoleNotFound
		}

		return uuid.Nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert driver profile")
	}

	// On conflict the generated ID was discarded, so read back the stored one.
	var stored model.DriverProfileModel
	if err := repo.db.WithContext(ctx).
		Select("id").
		Where("role_id = ?", roleID).
		Take(&stored).Error; err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to read driver profile id")
	}

	return stored.ID, nil
}

// FindByRoleID retrieves the driver profile owned by the role.
func (repo *driverProfileRepository) FindByRoleID(ctx context.Context, roleID uuid.UUID) (*entity.DriverProfile, error) {
	var profileM model.DriverProfileModel

	if err := repo.db.WithContext(ctx).
		Where("role_id = ?", roleID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find driver profile by role")
	}

	return toDriverProfileDomain(&profileM), nil
}

// DeleteByRoleID removes the driver profile of the role, if any.
func (repo *driverProfileRepository) DeleteByRoleID(ctx context.Context, roleID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("role_id = ?", roleID).
		Delete(&model.DriverProfileModel{}).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "driver profile still has a vehicle")
		}

		return errors.Wrap(err, "failed to delete driver profile")
	}

	return nil
}

// passengerProfileRepository implements the repository.PassengerProfileRepository interface.
type passengerProfileRepository struct {
	db *gorm.DB
}

// NewPassengerProfileRepository is the constructor for passengerProfileRepository.
func NewPassengerProfileRepository(db *gorm.DB) repository.PassengerProfileRepository {
	return &passengerProfileRepository{
		db: db,
	}
}

// Upsert overwrites the passenger profile of the role, inserting it on first activation.
func (repo *passengerProfileRepository) Upsert(ctx context.Context, roleID uuid.UUID, fields entity.PassengerProfileFields) (uuid.UUID, error) {
	profileM := &model.PassengerProfileModel{
		RoleID:       roleID,
		Nationality:  fields.Nationality,
		Neighborhood: fields.Neighborhood,
		PhotoRef:     fields.PhotoRef,
		Phone:        fields.Phone,
		Rating:       fields.Rating,
	}

	if err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "role_id"}},
			DoUpdates: clause.AssignmentColumns(passengerProfileColumns),
		}).
		Create(profileM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return uuid.Nil, repository.ErrRoleNotFound
		}

		return uuid.Nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert passenger profile")
	}

	// On conflict the generated ID was discarded, so read back the stored one.
	var stored model.PassengerProfileModel
	if err := repo.db.WithContext(ctx).
		Select("id").
		Where("role_id = ?", roleID).
		Take(&stored).Error; err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to read passenger profile id")
	}

	return stored.ID, nil
}

// FindByRoleID retrieves the passenger profile owned by the role.
func (repo *passengerProfileRepository) FindByRoleID(ctx context.Context, roleID uuid.UUID) (*entity.PassengerProfile, error) {
	var profileM model.PassengerProfileModel

	if err := repo.db.WithContext(ctx).
		Where("role_id = ?", roleID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find passenger profile by role")
	}

	return toPassengerProfileDomain(&profileM), nil
}

// DeleteByRoleID removes the passenger profile of the role, if any.
func (repo *passengerProfileRepository) DeleteByRoleID(ctx context.Context, roleID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("role_id = ?", roleID).
		Delete(&model.PassengerProfileModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete passenger profile")
	}

	return nil
}

// --- Mapper Functions ---

func toDriverProfileDomain(data *model.DriverProfileModel) *entity.DriverProfile {
	if data == nil {
		return nil
	}

	return &entity.DriverProfile{
		ID:     data.ID,
		RoleID: data.RoleID,
		DriverProfileFields: entity.DriverProfileFields{
			Address:      data.Address,
			Neighborhood: data.Neighborhood,
			PhotoRef:     data.PhotoRef,
			Phone:        data.Phone,
			Rating:       data.Rating,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toPassengerProfileDomain(data *model.PassengerProfileModel) *entity.PassengerProfile {
	if data == nil {
		return nil
	}

	return &entity.PassengerProfile{
		ID:     data.ID,
		RoleID: data.RoleID,
		PassengerProfileFields: entity.PassengerProfileFields{
			Nationality:  data.Nationality,
			Neighborhood: data.Neighborhood,
			PhotoRef:     data.PhotoRef,
			Phone:        data.Phone,
			Rating:       data.Rating,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
