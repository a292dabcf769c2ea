// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a single storefront account.
// The free-form Address field mirrors the signup form; structured shipping
// addresses live in the Address entity.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Name         string    // The user's display name.
	Email        string    // The login identifier, unique across all users.
	PasswordHash string    // The bcrypt hash of the user's password. Never serialized outward.
	Role         Role      // ADMIN or CUSTOMER. Fixed after creation.
	Phone        string    // Contact phone number.
	Address      string    // Free-form address captured at signup.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
