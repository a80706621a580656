package entity

import (
	"time"

	"github.com/google/uuid"
)

// VehicleFields is the vehicle data a driver submits. Same overwrite contract as profiles.
type VehicleFields struct {
	Make      *string `json:"make"`
	Model     *string `json:"model"`
	Color     *string `json:"color"`
	Plate     *string `json:"plate"`
	SeatCount *int    `json:"seat_count"`
	PhotoRef  *string `json:"photo_ref"`
}

// Vehicle is the car attached 1:1 to a driver profile.
type Vehicle struct {
	ID              uuid.UUID `json:"id"`
	DriverProfileID uuid.UUID `json:"driver_profile_id"` // Foreign Key to the DriverProfile.
	VehicleFields
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
