package domain

import (
	"errors"
	"time"
)

var ErrInvalidInput = errors.New("missing or invalid fields")
var ErrPasswordMismatch = errors.New("passwords do not match")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")

// User models a registered account. PasswordHash never leaves the process
// boundary: it is excluded from JSON and only ever compared through bcrypt.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	DateOfBirth  time.Time `json:"date_of_birth"`
	Bio          string    `json:"bio,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
