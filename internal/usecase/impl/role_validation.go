package impl

import (
	"strings"

	"carpool/internal/domain/entity"
	domainerrors "carpool/internal/domain/errors"
	"carpool/internal/usecase"
)

// requiredField is one check of the activation gate. Checks run in slice order and the
// first failure is reported.
type requiredField struct {
	name    string
	missing func(p *usecase.RolePayload) bool
}

var driverRequiredFields = []requiredField{
	{name: "address", missing: func(p *usecase.RolePayload) bool { return isBlank(p.Address) }},
	{name: "neighborhood", missing: func(p *usecase.RolePayload) bool { return isBlank(p.Neighborhood) }},
	{name: "photo_ref", missing: func(p *usecase.RolePayload) bool { return isBlank(p.PhotoRef) }},
	{name: "vehicle.make", missing: func(p *usecase.RolePayload) bool { return p.Vehicle == nil || isBlank(p.Vehicle.Make) }},
	{name: "vehicle.model", missing: func(p *usecase.RolePayload) bool { return p.Vehicle == nil || isBlank(p.Vehicle.Model) }},
	{name: "vehicle.color", missing: func(p *usecase.RolePayload) bool { return p.Vehicle == nil || isBlank(p.Vehicle.Color) }},
	{name: "vehicle.plate", missing: func(p *usecase.RolePayload) bool { return p.Vehicle == nil || isBlank(p.Vehicle.Plate) }},
	{name: "vehicle.seat_count", missing: func(p *usecase.RolePayload) bool { return p.Vehicle == nil || p.Vehicle.SeatCount == nil }},
	{name: "vehicle.photo_ref", missing: func(p *usecase.RolePayload) bool { return p.Vehicle == nil || isBlank(p.Vehicle.PhotoRef) }},
}

var passengerRequiredFields = []requiredField{
	{name: "nationality", missing: func(p *usecase.RolePayload) bool { return isBlank(p.Nationality) }},
	{name: "neighborhood", missing: func(p *usecase.RolePayload) bool { return isBlank(p.Neighborhood) }},
	{name: "photo_ref", missing: func(p *usecase.RolePayload) bool { return isBlank(p.PhotoRef) }},
}

// validateRequiredFields returns a ValidationError naming the first missing field.
func validateRequiredFields(kind entity.RoleKind, payload *usecase.RolePayload) error {
	var fields []requiredField

	switch kind {
	case entity.RoleDriver:
		fields = driverRequiredFields
	case entity.RolePassenger:
		fields = passengerRequiredFields
	default:
		return domainerrors.NewValidationError("kind", "must be driver or passenger")
	}

	for _, field := range fields {
		if field.missing(payload) {
			return domainerrors.NewValidationError(field.name, "")
		}
	}

	return nil
}

// isBlank treats whitespace-only strings as missing.
func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
