// Package service declares the domain services implemented by the infrastructure layer.
package service

import (
	"time"

	"carpool/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the access token.
type Claims struct {
	UserID  uuid.UUID          `json:"-"`
	Session entity.SessionKind `json:"session"`
	Type    string             `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// Token issuance for real accounts lives in the identity service; GenerateAccessToken serves local tooling.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for the user and session kind.
	GenerateAccessToken(userID uuid.UUID, session entity.SessionKind, ttl time.Duration) (string, error)

	// ValidateToken checks the signature, expiry and type of an access token.
	ValidateToken(tokenString string) (*Claims, error)
}
