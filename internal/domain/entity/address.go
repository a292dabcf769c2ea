// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a shipping address in a user's address book.
// At most one address per user carries IsDefault at any observed time.
type Address struct {
	ID          uuid.UUID // The unique identifier for the address.
	UserID      uuid.UUID // The owning user.
	Name        string    // Recipient name.
	AddressLine string    // Street address line.
	City        string    // City.
	State       string    // State or province.
	Pincode     string    // Postal code.
	Phone       string    // Contact phone for delivery.
	IsDefault   bool      // Marks the address pre-filled at checkout.
	CreatedAt   time.Time // Timestamp of when this address was created.
	UpdatedAt   time.Time // Timestamp of the last modification.
}
