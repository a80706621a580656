// Package model holds the GORM table structs. They never leave the persistence layer.
package model

import "github.com/google/uuid"

// newID assigns a time-ordered UUID when the caller left the primary key empty.
func newID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	generated, err := uuid.NewV7()
	if err != nil {
		return err
	}
	*id = generated

	return nil
}

// All returns every table model in dependency order, for migrations.
func All() []any {
	return []any{
		&RoleModel{},
		&DriverProfileModel{},
		&PassengerProfileModel{},
		&VehicleModel{},
		&DriverRouteModel{},
		&PassengerRouteModel{},
	}
}
