// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"revcart/internal/domain/entity"
	"revcart/internal/errors"

	"github.com/google/uuid"
)

// ErrWishlistNotFound is returned when a user has no wishlist yet.
var ErrWishlistNotFound = errors.New("wishlist not found")

// WishlistRepository defines the interface for wishlist persistence.
// A wishlist is a per-user product set; item operations have set semantics.
type WishlistRepository interface {
	// FindByUser retrieves the user's wishlist with its products loaded.
	// Returns ErrWishlistNotFound if the user has none.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Wishlist, error)

	// GetOrCreate returns the user's wishlist, creating an empty one if
	// absent. Implemented as a single upsert so concurrent first accesses
	// cannot produce duplicate rows.
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.Wishlist, error)

	// AddItem inserts a product into the wishlist's set.
	// Adding a product already present is a silent no-op.
	AddItem(ctx context.Context, wishlistID, productID uuid.UUID) error

	// RemoveItem removes a product from the wishlist's set.
	// Removing a product not present is a silent no-op.
	RemoveItem(ctx context.Context, wishlistID, productID uuid.UUID) error
}
