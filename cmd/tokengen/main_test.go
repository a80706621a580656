package main

import (
	"testing"
	"time"

	"carpool/config"
	"carpool/internal/domain/entity"
	"carpool/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_IssuesVerifiableToken(t *testing.T) {
	userID := uuid.New()

	token, gotUser, err := run(userID.String(), "guest", "test-secret", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, userID, gotUser)

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	claims, err := tokenSvc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, entity.SessionGuest, claims.Session)
}

func TestRun_RejectsBadFlags(t *testing.T) {
	_, _, err := run("not-a-uuid", "user", "s", time.Minute)
	assert.Error(t, err)

	_, _, err = run("", "admin", "s", time.Minute)
	assert.Error(t, err)

	_, _, err = run("", "user", "s", 0)
	assert.Error(t, err)
}
