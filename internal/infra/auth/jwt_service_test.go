package auth

import (
	"testing"
	"time"

	"carpool/config"
	"carpool/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	userID := uuid.New()

	for _, session := range []entity.SessionKind{entity.SessionUser, entity.SessionGuest} {
		t.Run(string(session), func(t *testing.T) {
			token, err := jwtService.GenerateAccessToken(userID, session, time.Minute)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := jwtService.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, userID, claims.UserID)
			assert.Equal(t, session, claims.Session)
			assert.Equal(t, "access", claims.Type)
		})
	}
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	_, err = jwtService.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("issuer_secret_key_very_long_for_testing"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("another_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	token, err := issuer.GenerateAccessToken(uuid.New(), entity.SessionUser, time.Minute)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	token, err := jwtService.GenerateAccessToken(uuid.New(), entity.SessionUser, -time.Minute)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsForeignTokenShapes(t *testing.T) {
	secret := "test_access_secret_key_very_long_for_testing"
	jwtService, err := NewJWTService(newTestConfig(secret))
	require.NoError(t, err)

	sign := func(claims jwt.MapClaims) string {
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)

		return signed
	}
	exp := time.Now().Add(time.Minute).Unix()

	t.Run("refresh type", func(t *testing.T) {
		_, err := jwtService.ValidateToken(sign(jwt.MapClaims{"sub": uuid.NewString(), "type": "refresh", "exp": exp}))
		assert.Error(t, err)
	})

	t.Run("non uuid subject", func(t *testing.T) {
		_, err := jwtService.ValidateToken(sign(jwt.MapClaims{"sub": "alice", "type": "access", "exp": exp}))
		assert.Error(t, err)
	})

	t.Run("no expiry", func(t *testing.T) {
		_, err := jwtService.ValidateToken(sign(jwt.MapClaims{"sub": uuid.NewString(), "type": "access"}))
		assert.Error(t, err)
	})

	t.Run("missing session defaults to user", func(t *testing.T) {
		claims, err := jwtService.ValidateToken(sign(jwt.MapClaims{"sub": uuid.NewString(), "type": "access", "exp": exp}))
		require.NoError(t, err)
		assert.Equal(t, entity.SessionUser, claims.Session)
	})
}
