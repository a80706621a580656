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

// roleRepository implements the repository.RoleRepository interface.
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{
		db: db,
	}
}

// Activate inserts the (user, kind) role or flips an existing one back to active.
// The conflict target is the unique (user_id, kind) index, so concurrent first
// activations converge on one row instead of failing.
func (repo *roleRepository) Activate(ctx context.Context, userID uuid.UUID, kind entity.RoleKind) (uuid.UUID, error) {
	roleM := &model.RoleModel{
		UserID: userID,
		Kind:   kind.String(),
		Active: true,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "kind"}},
			DoUpdates: clause.AssignmentColumns([]string{"active", "updated_at"}),
		}).
		Create(roleM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return uuid.Nil, domainerrors.NewValidationError("kind", "unsupported role kind")
		}

		return uuid.Nil, domainerrors.NewDatabaseExecuteError(err, "failed to activate role")
	}

	// On conflict the generated ID was discarded, so read back the stored one.
	role, err := repo.FindForUpdate(ctx, userID, kind)
	if err != nil {
		return uuid.Nil, err
	}

	return role.ID, nil
}

// Deactivate keeps the role row and its dependents but marks it inactive.
func (repo *roleRepository) Deactivate(ctx context.Context, userID uuid.UUID, kind entity.RoleKind) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RoleModel{}).
		Where("user_id = ? AND kind = ?", userID, kind.String()).
		Update("active", false)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate role")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRoleNotFound
	}

	return nil
}

// FindByUserAndKind retrieves the role without taking a lock.
func (repo *roleRepository) FindByUserAndKind(ctx context.Context, userID uuid.UUID, kind entity.RoleKind) (*entity.Role, error) {
	return repo.find(repo.db.WithContext(ctx), userID, kind)
}

// FindForUpdate retrieves the role with SELECT ... FOR UPDATE.
func (repo *roleRepository) FindForUpdate(ctx context.Context, userID uuid.UUID, kind entity.RoleKind) (*entity.Role, error) {
	return repo.find(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), userID, kind)
}

func (repo *roleRepository) find(db *gorm.DB, userID uuid.UUID, kind entity.RoleKind) (*entity.Role, error) {
	var roleM model.RoleModel

	if err := db.
		Where("user_id = ? AND kind = ?", userID, kind.String()).
		First(&roleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find role")
	}

	return toRoleDomain(&roleM), nil
}

// ListByUser retrieves every role of the user, oldest first.
func (repo *roleRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Role, error) {
	var roleModels []*model.RoleModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&roleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list roles by user")
	}

	roles := make([]*entity.Role, 0, len(roleModels))
	for _, roleM := range roleModels {
		roles = append(roles, toRoleDomain(roleM))
	}

	return roles, nil
}

// Delete removes the role row.
func (repo *roleRepository) Delete(ctx context.Context, roleID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", roleID).
		Delete(&model.RoleModel{})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.NewDatabaseExecuteError(result.Error, "role still has dependent rows")
		}

		return errors.Wrap(result.Error, "failed to delete role")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRoleNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toRoleDomain converts a GORM RoleModel to a domain Role entity.
func toRoleDomain(data *model.RoleModel) *entity.Role {
	if data == nil {
		return nil
	}

	return &entity.Role{
		ID:        data.ID,
		UserID:    data.UserID,
		Kind:      entity.RoleKind(data.Kind),
		Active:    data.Active,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
