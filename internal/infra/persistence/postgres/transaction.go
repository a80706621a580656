// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"fmt"

	"carpool/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object (*gorm.Tx) and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object *gorm.Tx is also a *gorm.DB
}

// NewRoleRepository creates a new role repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewRoleRepository() repository.RoleRepository {
	return NewRoleRepository(f.tx)
}

// NewDriverProfileRepository creates a new driver profile repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewDriverProfileRepository() repository.DriverProfileRepository {
	return NewDriverProfileRepository(f.tx)
}

// NewPassengerProfileRepository creates a new passenger profile repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewPassengerProfileRepository() repository.PassengerProfileRepository {
	return NewPassengerProfileRepository(f.tx)
}

// NewVehicleRepository creates a new vehicle repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewVehicleRepository() repository.VehicleRepository {
	return NewVehicleRepository(f.tx)
}

// NewDriverRouteRepository creates a new driver route repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewDriverRouteRepository() repository.DriverRouteRepository {
	return NewDriverRouteRepository(f.tx)
}

// NewPassengerRouteRepository creates a new passenger route repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewPassengerRouteRepository() repository.PassengerRouteRepository {
	return NewPassengerRouteRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
// Transactions always run on the primary, never on a read replica.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Clauses(dbresolver.Write).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// A panic inside fn must not leave the transaction open.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// The business error stays the one callers match on.
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
