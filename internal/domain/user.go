package domain

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt truncates anything beyond 72 bytes, so longer passwords are
// rejected rather than silently shortened.
const maxPasswordBytes = 72

// User is an employee. Only the bcrypt hash of the password is kept.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewUser hashes the password on construction; a User never exists with a
// plaintext password.
func NewUser(id, username, password string) (*User, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrValidation)
	}
	if len(password) > maxPasswordBytes {
		return nil, fmt.Errorf("%w: password is longer than %d bytes", ErrValidation, maxPasswordBytes)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return &User{
		ID:           id,
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)) == nil
}

type CreateUserInput struct {
	Username string
	Password string
}
