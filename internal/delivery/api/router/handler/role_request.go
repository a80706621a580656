package handler

import (
	"carpool/internal/domain/entity"
	"carpool/internal/usecase"

	"github.com/google/uuid"
)

// ActivateRoleRequest is the body of POST /roles.
type ActivateRoleRequest struct {
	Kind string          `json:"kind" validate:"required,oneof=driver passenger"`
	Data RoleDataRequest `json:"data"`
}

// RoleDataRequest carries the profile of either kind. Keys of the other kind are ignored.
type RoleDataRequest struct {
	Address      *string  `json:"address"`
	Nationality  *string  `json:"nationality"`
	Neighborhood *string  `json:"neighborhood"`
	PhotoRef     *string  `json:"photo_ref"`
	Phone        *string  `json:"phone"`
	Rating       *float64 `json:"rating" validate:"omitempty,min=0,max=5"`

	Vehicle *VehicleRequest `json:"vehicle"`

	// Absent or null leaves routes untouched; [] clears them.
	Routes []RouteRequest `json:"routes" validate:"omitempty,dive"`
}

// VehicleRequest is the vehicle section of a driver activation.
type VehicleRequest struct {
	Make      *string `json:"make"`
	Model     *string `json:"model"`
	Color     *string `json:"color"`
	Plate     *string `json:"plate"`
	SeatCount *int    `json:"seat_count" validate:"omitempty,min=1"`
	PhotoRef  *string `json:"photo_ref"`
}

// RouteRequest is one commute route.
type RouteRequest struct {
	Origin           string        `json:"origin" validate:"required"`
	Destination      string        `json:"destination" validate:"required"`
	Days             string        `json:"days"`
	DepartTime       *string       `json:"depart_time" validate:"omitempty,hhmm"`
	ArriveTime       *string       `json:"arrive_time" validate:"omitempty,hhmm"`
	ReturnDepartTime *string       `json:"return_depart_time" validate:"omitempty,hhmm"`
	ReturnArriveTime *string       `json:"return_arrive_time" validate:"omitempty,hhmm"`
	Stops            []StopRequest `json:"stops" validate:"omitempty,dive"`
}

// StopRequest is a pickup point on a driver route.
// PassengerRef is the passenger's user id, kept as a string so a malformed value is reported by field name.
type StopRequest struct {
	PassengerRef *string `json:"passenger_ref" validate:"omitempty,uuid"`
	Address      string  `json:"address"`
}

// toInput maps the request onto the use case input, keeping nil and empty route lists apart.
func (r *ActivateRoleRequest) toInput() *usecase.ActivateRoleInput {
	data := usecase.RolePayload{
		Address:      r.Data.Address,
		Nationality:  r.Data.Nationality,
		Neighborhood: r.Data.Neighborhood,
		PhotoRef:     r.Data.PhotoRef,
		Phone:        r.Data.Phone,
		Rating:       r.Data.Rating,
	}

	if v := r.Data.Vehicle; v != nil {
		data.Vehicle = &entity.VehicleFields{
			Make:      v.Make,
			Model:     v.Model,
			Color:     v.Color,
			Plate:     v.Plate,
			SeatCount: v.SeatCount,
			PhotoRef:  v.PhotoRef,
		}
	}

	if r.Data.Routes != nil {
		data.Routes = make([]entity.RouteInput, 0, len(r.Data.Routes))
		for _, route := range r.Data.Routes {
			data.Routes = append(data.Routes, route.toInput())
		}
	}

	return &usecase.ActivateRoleInput{
		Kind: entity.RoleKind(r.Kind),
		Data: data,
	}
}

func (r *RouteRequest) toInput() entity.RouteInput {
	input := entity.RouteInput{
		Schedule: entity.Schedule{
			Origin:           r.Origin,
			Destination:      r.Destination,
			Days:             r.Days,
			DepartTime:       r.DepartTime,
			ArriveTime:       r.ArriveTime,
			ReturnDepartTime: r.ReturnDepartTime,
			ReturnArriveTime: r.ReturnArriveTime,
		},
	}

	for _, stop := range r.Stops {
		input.Stops = append(input.Stops, entity.Stop{
			PassengerRef: stop.passengerID(),
			Address:      stop.Address,
		})
	}

	return input
}

// passengerID parses the already validated reference; blank means no passenger is attached yet.
func (s *StopRequest) passengerID() *uuid.UUID {
	if s.PassengerRef == nil || *s.PassengerRef == "" {
		return nil
	}

	id, err := uuid.Parse(*s.PassengerRef)
	if err != nil {
		return nil
	}

	return &id
}
