package model

import (
	"errors"
	"time"
)

// User represents an account in the system
type User struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"` // never serialized
	Bio          string    `db:"bio" json:"bio"`
	IsPrivate    bool      `db:"is_private" json:"isPrivate"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// UserSummary is the author shape embedded in post responses.
type UserSummary struct {
	ID       int64  `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
}

// RegisterRequest carries the registration form fields.
// Username is trimmed and email lower-cased before validation.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,contains=@"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest carries the login form fields.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SettingsRequest carries the profile settings form fields.
type SettingsRequest struct {
	Bio       string `json:"bio"`
	IsPrivate bool   `json:"isPrivate"`
}

var (
	// ErrUserNotFound is returned when a user cannot be found
	ErrUserNotFound = errors.New("user not found")

	// ErrUserExists is returned when the username or email is already taken.
	// Also produced when a concurrent registration wins the race and the
	// insert hits the unique constraint.
	ErrUserExists = errors.New("username or email already taken")

	// ErrInvalidCredentials is returned when login credentials are incorrect
	ErrInvalidCredentials = errors.New("invalid credentials")
)
