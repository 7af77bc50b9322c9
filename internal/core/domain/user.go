package domain

import (
	"errors"
	"fmt"
	"time"
)

// Role is the closed set of roles a user can hold. Keeping it a dedicated
// type rather than a free string lets the access policy table stay exhaustive.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// ParseRole converts an untrusted string (request payload, token claim) into
// a Role, rejecting anything outside the closed set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleUser:
		return RoleUser, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

var (
	// ErrInvalidCredentials covers both "no such user" and "wrong password".
	// The two cases stay indistinguishable so usernames cannot be enumerated
	// through the login endpoint.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrTooManyAttempts    = errors.New("too many login attempts")
	ErrForbidden          = errors.New("access forbidden")
)

// User models an authenticated actor in the system. Username uniqueness is
// enforced by the identity store, not here.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
