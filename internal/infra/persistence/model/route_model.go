package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RouteStop is one pickup point, stored inside the driver route's JSONB column.
type RouteStop struct {
	PassengerRef *uuid.UUID `json:"passenger_ref,omitempty"`
	Address      string     `json:"address"`
}

// DriverRouteModel is the GORM-specific struct for the 'driver_routes' table.
type DriverRouteModel struct {
	ID               uuid.UUID   `gorm:"type:uuid;primaryKey"`
	DriverUserID     uuid.UUID   `gorm:"type:uuid;not null;index:idx_driver_routes_driver_position"`
	Position         int         `gorm:"not null;index:idx_driver_routes_driver_position"`
	Origin           string      `gorm:"type:text;not null"`
	Destination      string      `gorm:"type:text;not null"`
	Days             string      `gorm:"type:varchar(100);not null"`
	DepartTime       *string     `gorm:"type:varchar(5)"`
	ArriveTime       *string     `gorm:"type:varchar(5)"`
	ReturnDepartTime *string     `gorm:"type:varchar(5)"`
	ReturnArriveTime *string     `gorm:"type:varchar(5)"`
	Stops            []RouteStop `gorm:"type:jsonb;serializer:json;not null"`
	CreatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (DriverRouteModel) TableName() string {
	return "driver_routes"
}

// BeforeCreate assigns a UUIDv7 primary key.
func (m *DriverRouteModel) BeforeCreate(_ *gorm.DB) error {
	return newID(&m.ID)
}

// PassengerRouteModel is the GORM-specific struct for the 'passenger_routes' table.
type PassengerRouteModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	PassengerUserID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_passenger_routes_passenger"`
	Origin           string    `gorm:"type:text;not null"`
	Destination      string    `gorm:"type:text;not null"`
	Days             string    `gorm:"type:varchar(100);not null"`
	DepartTime       *string   `gorm:"type:varchar(5)"`
	ArriveTime       *string   `gorm:"type:varchar(5)"`
	ReturnDepartTime *string   `gorm:"type:varchar(5)"`
	ReturnArriveTime *string   `gorm:"type:varchar(5)"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (PassengerRouteModel) TableName() string {
	return "passenger_routes"
}

// BeforeCreate assigns a UUIDv7 primary key.
func (m *PassengerRouteModel) BeforeCreate(_ *gorm.DB) error {
	return newID(&m.ID)
}
