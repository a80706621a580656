// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"carpool/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRoleNotFound is returned when no role exists for the requested user and kind.
var ErrRoleNotFound = errors.New("role not found")

// RoleRepository owns the (user_id, kind) uniqueness invariant and the active flag.
type RoleRepository interface {
	// Activate reactivates the (userID, kind) role or inserts it. It never creates a second row for the pair.
	Activate(ctx context.Context, userID uuid.UUID, kind entity.RoleKind) (uuid.UUID, error)

	// Deactivate flips the active flag off. Returns ErrRoleNotFound if the role does not exist.
	Deactivate(ctx context.Context, userID uuid.UUID, kind entity.RoleKind) error

	// FindByUserAndKind retrieves the role without locking it.
	FindByUserAndKind(ctx context.Context, userID uuid.UUID, kind entity.RoleKind) (*entity.Role, error)

	// FindForUpdate retrieves the role and holds a row lock until the transaction ends.
	FindForUpdate(ctx context.Context, userID uuid.UUID, kind entity.RoleKind) (*entity.Role, error)

	// ListByUser retrieves every role of the user, active or not.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Role, error)

	// Delete removes the role row. Dependent rows must already be gone.
	Delete(ctx context.Context, roleID uuid.UUID) error
}
