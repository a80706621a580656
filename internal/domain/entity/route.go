package entity

import (
	"time"

	"github.com/google/uuid"
)

// Stop is a pickup point on a driver route.
type Stop struct {
	PassengerRef *uuid.UUID `json:"passenger_ref,omitempty"` // The passenger picked up here, if known.
	Address      string     `json:"address"`
}

// Schedule is the commute metadata shared by driver and passenger routes.
// Times are "HH:MM" strings; nil means not declared.
type Schedule struct {
	Origin           string  `json:"origin"`
	Destination      string  `json:"destination"`
	Days             string  `json:"days"` // Free text, e.g. "Mon,Tue,Wed".
	DepartTime       *string `json:"depart_time"`
	ArriveTime       *string `json:"arrive_time"`
	ReturnDepartTime *string `json:"return_depart_time"`
	ReturnArriveTime *string `json:"return_arrive_time"`
}

// RouteInput is one route as submitted by the caller. Stops only apply to drivers.
type RouteInput struct {
	Schedule
	Stops []Stop
}

// DriverRoute is one of the routes a driver offers. A driver may offer many.
type DriverRoute struct {
	ID           uuid.UUID `json:"id"`
	DriverUserID uuid.UUID `json:"driver_user_id"`
	Position     int       `json:"position"` // Index in the submitted route list.
	Schedule
	Stops     []Stop    `json:"stops"`
	CreatedAt time.Time `json:"created_at"`
}

// PassengerRoute is the single commute a passenger requests.
type PassengerRoute struct {
	ID              uuid.UUID `json:"id"`
	PassengerUserID uuid.UUID `json:"passenger_user_id"`
	Schedule
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
