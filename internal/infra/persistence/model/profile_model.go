package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DriverProfileModel is the GORM-specific struct for the 'driver_profiles' table.
type DriverProfileModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RoleID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_driver_profiles_role"`
	Role         *RoleModel `gorm:"foreignKey:RoleID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Address      *string    `gorm:"type:text"`
	Neighborhood *string    `gorm:"type:varchar(255)"`
	PhotoRef     *string    `gorm:"type:text"`
	Phone        *string    `gorm:"type:varchar(50)"`
	Rating       *float64   `gorm:"type:decimal(3,2)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (DriverProfileModel) TableName() string {
	return "driver_profiles"
}

// BeforeCreate assigns a UUIDv7 primary key.
func (m *DriverProfileModel) BeforeCreate(_ *gorm.DB) error {
	return newID(&m.ID)
}

// PassengerProfileModel is the GORM-specific struct for the 'passenger_profiles' table.
type PassengerProfileModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RoleID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_passenger_profiles_role"`
	Role         *RoleModel `gorm:"foreignKey:RoleID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Nationality  *string    `gorm:"type:varchar(100)"`
	Neighborhood *string    `gorm:"type:varchar(255)"`
	PhotoRef     *string    `gorm:"type:text"`
	Phone        *string    `gorm:"type:varchar(50)"`
	Rating       *float64   `gorm:"type:decimal(3,2)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PassengerProfileModel) TableName() string {
	return "passenger_profiles"
}

// BeforeCreate assigns a UUIDv7 primary key.
func (m *PassengerProfileModel) BeforeCreate(_ *gorm.DB) error {
	return newID(&m.ID)
}
