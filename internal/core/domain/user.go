package domain

import (
	"errors"
	"time"
)

// Role is the closed set of roles a user can hold.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole validates a role string at the creation boundary. An empty
// string defaults to RoleUser; anything outside the enum is rejected.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case "":
		return RoleUser, nil
	case RoleUser, RoleAdmin:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

// User models a registered author. Name is the unique identifier and is
// immutable once created.
type User struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid name or password")
	ErrInvalidRole        = errors.New("unrecognized role")
)

// Failures raised while resolving the caller's identity from a request.
var (
	ErrCredentialAbsent = errors.New("authentication required")
	ErrTokenExpired     = errors.New("token expired")
	ErrTokenMalformed   = errors.New("malformed token")
	ErrIdentityNotFound = errors.New("identity not found")
)
