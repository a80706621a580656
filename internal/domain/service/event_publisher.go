package service

import (
	"context"
	"time"
)

// Role lifecycle event types.
const (
	EventRoleActivated   = "role.activated"
	EventRoleDeactivated = "role.deactivated"
	EventRoleRevoked     = "role.revoked"
)

// RoleEvent is emitted after a role lifecycle transaction commits.
type RoleEvent struct {
	Type       string    `json:"type"`
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	UserID     string    `json:"user_id"`
	RoleID     string    `json:"role_id"`
	Kind       string    `json:"kind"`
	OccurredAt time.Time `json:"occurred_at"`
}

// RoleEventPublisher defines the interface for publishing role events to a message queue
type RoleEventPublisher interface {
	// PublishRoleEvent publishes a committed role lifecycle change
	PublishRoleEvent(ctx context.Context, event *RoleEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
