package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser_HashesOnConstruction(t *testing.T) {
	user, err := NewUser("u1", "alice", "hunter2")

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotContains(t, string(user.PasswordHash), "hunter2")

	assert.True(t, user.VerifyPassword("hunter2"))
	assert.False(t, user.VerifyPassword("hunter3"))
}

func TestNewUser_PasswordTooLong(t *testing.T) {
	_, err := NewUser("u1", "alice", strings.Repeat("a", 73))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNewUser_RequiredFields(t *testing.T) {
	_, err := NewUser("u1", "", "pass")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewUser("u1", "alice", "")
	assert.ErrorIs(t, err, ErrValidation)
}
