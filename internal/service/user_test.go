package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GeorgeWhittington/cinema-booking-app/internal/domain"
	"github.com/GeorgeWhittington/cinema-booking-app/internal/service/ports/mocks"
)

func TestUserService_Create_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().GetByUsername(mock.Anything, "alice").Return(nil, domain.ErrUserNotFound)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{
		Username: "alice",
		Password: "s3cret",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEmpty(t, user.PasswordHash)
	assert.True(t, user.VerifyPassword("s3cret"))
	assert.False(t, user.VerifyPassword("wrong"))
}

func TestUserService_Create_UsernameTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	existing := &domain.User{ID: "u1", Username: "alice"}
	repo.EXPECT().GetByUsername(mock.Anything, "alice").Return(existing, nil)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		Username: "alice",
		Password: "s3cret",
	})

	require.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestUserService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input domain.CreateUserInput
	}{
		{"missing username", domain.CreateUserInput{Password: "s3cret"}},
		{"missing password", domain.CreateUserInput{Username: "alice"}},
		{"password too long", domain.CreateUserInput{
			Username: "alice",
			Password: strings.Repeat("a", 73),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockUserRepo(t)
			svc := NewUserService(repo)

			_, err := svc.Create(context.Background(), tt.input)

			require.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestUserService_GetByID(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	user := &domain.User{ID: "u1", Username: "alice"}
	repo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)

	got, err := svc.GetByID(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
}
