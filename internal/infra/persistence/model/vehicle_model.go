package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VehicleModel is the GORM-specific struct for the 'vehicles' table.
// A vehicle must be removed before its driver profile.
type VehicleModel struct {
	ID              uuid.UUID           `gorm:"type:uuid;primaryKey"`
	DriverProfileID uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:idx_vehicles_driver_profile"`
	DriverProfile   *DriverProfileModel `gorm:"foreignKey:DriverProfileID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Make            *string             `gorm:"type:varchar(100)"`
	Model           *string             `gorm:"type:varchar(100)"`
	Color           *string             `gorm:"type:varchar(50)"`
	Plate           *string             `gorm:"type:varchar(20)"`
	SeatCount       *int                `gorm:"type:smallint"`
	PhotoRef        *string             `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (VehicleModel) TableName() string {
	return "vehicles"
}

// BeforeCreate assigns a UUIDv7 primary key.
func (m *VehicleModel) BeforeCreate(_ *gorm.DB) error {
	return newID(&m.ID)
}
