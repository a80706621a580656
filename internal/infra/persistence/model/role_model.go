package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleModel is the GORM-specific struct for the 'roles' table.
// The unique index on (user_id, kind) is what makes activation idempotent.
type RoleModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_roles_user_kind"`
	Kind      string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_roles_user_kind;check:chk_roles_kind,kind IN ('driver','passenger')"`
	Active    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}

// BeforeCreate assigns a UUIDv7 primary key.
func (m *RoleModel) BeforeCreate(_ *gorm.DB) error {
	return newID(&m.ID)
}
