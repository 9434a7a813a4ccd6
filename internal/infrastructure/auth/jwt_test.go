package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wanderplan/backend/internal/infrastructure/config"
)

func newTestJWTService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests-only",
		Expiration: 168 * time.Hour,
		Issuer:     "wanderplan-test",
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService()
	userID := uuid.New()

	issued, err := svc.Generate(userID, "alice@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, issued.Token)
	assert.WithinDuration(t, time.Now().Add(168*time.Hour), issued.ExpiresAt, time.Minute)

	claims, err := svc.Validate(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_Validate_Errors(t *testing.T) {
	svc := newTestJWTService()

	t.Run("rejects garbage token", func(t *testing.T) {
		_, err := svc.Validate("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects token signed with another secret", func(t *testing.T) {
		other := NewJWTService(config.JWTConfig{
			Secret:     "a-completely-different-secret-key",
			Expiration: time.Hour,
			Issuer:     "wanderplan-test",
		})
		issued, err := other.Generate(uuid.New(), "bob@example.com")
		require.NoError(t, err)

		_, err = svc.Validate(issued.Token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expired := NewJWTService(config.JWTConfig{
			Secret:     "test-secret-key-for-unit-tests-only",
			Expiration: -time.Hour,
			Issuer:     "wanderplan-test",
		})
		issued, err := expired.Generate(uuid.New(), "bob@example.com")
		require.NoError(t, err)

		_, err = svc.Validate(issued.Token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}
