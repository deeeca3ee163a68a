package domain

import (
	"errors"
	"time"
)

// Role is the closed set of capabilities an authenticated actor can hold.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// CanManageInventory reports whether the role may create, update, delete or
// restock sweets. Regular users may only list and purchase.
func (r Role) CanManageInventory() bool {
	return r == RoleAdmin
}

var ErrUserExists = errors.New("user already exists")
var ErrMissingFields = errors.New("all fields are required")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")

// User models an authenticated actor in the system.
// PasswordHash is never serialized to JSON.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
