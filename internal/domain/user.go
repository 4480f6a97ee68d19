package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account of the booking application.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Password       string    `json:"-"` // Plaintext password, only set during registration
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewUser creates a new User with the given email, plaintext password and
// display name. It generates a new UUID and sets the creation/update
// timestamps. The caller's store is responsible for hashing the password.
func NewUser(email, password, name string) *User {
	now := time.Now().UTC()
	return &User{
		ID:        uuid.New(),
		Email:     email,
		Name:      name,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Sanitized returns a copy of the user with both password fields cleared.
func (u *User) Sanitized() *User {
	c := *u
	c.Password = ""
	c.HashedPassword = ""
	return &c
}
