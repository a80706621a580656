package entity

import (
	"time"

	"github.com/google/uuid"
)

// DriverProfileFields is the descriptive data a driver submits.
// A nil field is stored as NULL: profiles are overwritten, never merged.
type DriverProfileFields struct {
	Address      *string  `json:"address"`
	Neighborhood *string  `json:"neighborhood"`
	PhotoRef     *string  `json:"photo_ref"`
	Phone        *string  `json:"phone"`
	Rating       *float64 `json:"rating"`
}

// DriverProfile holds data specific to the driver role, 1:1 with the Role.
type DriverProfile struct {
	ID     uuid.UUID `json:"id"`
	RoleID uuid.UUID `json:"role_id"` // Foreign Key to the owning driver Role.
	DriverProfileFields
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PassengerProfileFields is the descriptive data a passenger submits.
type PassengerProfileFields struct {
	Nationality  *string  `json:"nationality"`
	Neighborhood *string  `json:"neighborhood"`
	PhotoRef     *string  `json:"photo_ref"`
	Phone        *string  `json:"phone"`
	Rating       *float64 `json:"rating"`
}

// PassengerProfile holds data specific to the passenger role, 1:1 with the Role.
type PassengerProfile struct {
	ID     uuid.UUID `json:"id"`
	RoleID uuid.UUID `json:"role_id"` // Foreign Key to the owning passenger Role.
	PassengerProfileFields
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
