// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// RoleKind represents the capability a user can activate in the marketplace.
type RoleKind string

const (
	// RoleDriver indicates the user offers rides with their own vehicle.
	RoleDriver RoleKind = "driver"
	// RolePassenger indicates the user requests a seat on a commute route.
	RolePassenger RoleKind = "passenger"
)

// String returns the string representation of the RoleKind.
func (k RoleKind) String() string {
	return string(k)
}

// IsValid checks if the RoleKind is a valid value.
func (k RoleKind) IsValid() bool {
	switch k {
	case RoleDriver, RolePassenger:
		return true
	default:
		return false
	}
}

// Role is a capability a user has activated, independent of account-level identity.
// There is at most one Role per (UserID, Kind).
type Role struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the role.
	UserID    uuid.UUID `json:"user_id"`    // The user who owns this role.
	Kind      RoleKind  `json:"kind"`       // driver or passenger.
	Active    bool      `json:"active"`     // False once the role has been deactivated.
	CreatedAt time.Time `json:"created_at"` // Timestamp of the first activation.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last activation or deactivation.
}

// Roles is a slice of Role for convenience.
type Roles []*Role

// Kinds returns the kinds of the active roles, in order.
func (rs Roles) Kinds() []RoleKind {
	kinds := make([]RoleKind, 0, len(rs))
	for _, r := range rs {
		if r.Active {
			kinds = append(kinds, r.Kind)
		}
	}

	return kinds
}

// HasActive checks if the roles slice contains an active role of the given kind.
func (rs Roles) HasActive(kind RoleKind) bool {
	return slices.Contains(rs.Kinds(), kind)
}
