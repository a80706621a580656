package postgres

import (
	"context"

	"carpool/internal/errors"
	"carpool/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the role, profile, vehicle and route tables.
// Tables are created parents first so foreign keys resolve.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate role schema")
	}

	return nil
}
