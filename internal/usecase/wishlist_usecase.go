// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"revcart/internal/domain/entity"

	"github.com/google/uuid"
)

// WishlistUsecase defines the interface for a user's saved-product set.
// Every operation is scoped to the authenticated principal; there is no
// cross-user wishlist access.
type WishlistUsecase interface {
	// GetWishlist returns the user's wishlist, creating an empty one on
	// first access. Idempotent.
	GetWishlist(ctx context.Context, userID uuid.UUID) (*entity.Wishlist, error)

	// AddProduct saves a product into the user's wishlist. Fails if the user
	// or product does not exist; adding a product already saved is a no-op.
	AddProduct(ctx context.Context, userID, productID uuid.UUID) error

	// RemoveProduct removes a product from the user's wishlist. Fails if the
	// wishlist does not exist; removing an absent product is a no-op.
	RemoveProduct(ctx context.Context, userID, productID uuid.UUID) error
}
