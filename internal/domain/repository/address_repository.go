// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"revcart/internal/domain/entity"
	"revcart/internal/errors"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the interface for address-book database operations.
type AddressRepository interface {
	// Create persists a new address for a user.
	Create(ctx context.Context, address *entity.Address) error

	// FindByID retrieves an address by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindByUser retrieves all addresses for a user, default first then
	// newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)

	// Update updates an existing address record.
	Update(ctx context.Context, address *entity.Address) error

	// ClearDefaultForUser unsets the default flag on every address owned by
	// the user. Used together with Update inside one transaction so the
	// single-default invariant holds at every observable point.
	ClearDefaultForUser(ctx context.Context, userID uuid.UUID) error

	// Delete removes an address by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByUser returns the number of addresses the user owns.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
