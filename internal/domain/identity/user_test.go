package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates user successfully", func(t *testing.T) {
		user, err := NewUser("alice", "Alice@Example.com", "s3cretpass")

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotEqual(t, "s3cretpass", user.PasswordHash)
	})

	t.Run("fails with missing fields", func(t *testing.T) {
		for _, tc := range []struct{ username, email, password string }{
			{"", "a@example.com", "pass1234"},
			{"alice", "", "pass1234"},
			{"alice", "a@example.com", ""},
		} {
			user, err := NewUser(tc.username, tc.email, tc.password)
			assert.Error(t, err)
			assert.Nil(t, user)
			assert.Contains(t, err.Error(), "Missing fields")
		}
	})

	t.Run("fails with invalid email", func(t *testing.T) {
		user, err := NewUser("alice", "not-an-email", "pass1234")

		assert.Error(t, err)
		assert.Nil(t, user)
	})
}

func TestUser_VerifyPassword(t *testing.T) {
	user, err := NewUser("alice", "alice@example.com", "s3cretpass")
	require.NoError(t, err)

	assert.True(t, user.VerifyPassword("s3cretpass"))
	assert.False(t, user.VerifyPassword("wrongpass"))
	assert.False(t, user.VerifyPassword(""))
}
