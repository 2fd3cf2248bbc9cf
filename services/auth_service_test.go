package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterUserRejectsDuplicates(t *testing.T) {
	setupTestDB(t)

	user, err := RegisterUser("parent", "parent@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "parent", user.Username)
	assert.NotEqual(t, "secret123", user.Password) // stored hashed
	assert.Equal(t, "light", user.Theme)

	_, err = RegisterUser("parent", "other@example.com", "secret123")
	assert.ErrorIs(t, err, ErrUserExists)

	_, err = RegisterUser("other", "parent@example.com", "secret123")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestAuthenticateUser(t *testing.T) {
	setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := RegisterUser("parent", "parent@example.com", "secret123")
	require.NoError(t, err)

	token, user, err := AuthenticateUser("parent", "secret123", false)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "parent", user.Username)

	_, _, err = AuthenticateUser("parent", "wrong", false)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = AuthenticateUser("nobody", "secret123", false)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
