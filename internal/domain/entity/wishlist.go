// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Wishlist is a user's saved-product set. It is created lazily on first
// access and holds each product at most once.
type Wishlist struct {
	ID        uuid.UUID  // The unique identifier for the wishlist.
	UserID    uuid.UUID  // The owning user; one wishlist per user.
	Products  []*Product // The saved products, no duplicates.
	CreatedAt time.Time  // Timestamp of when this wishlist was created.
	UpdatedAt time.Time  // Timestamp of the last modification.
}

// Contains reports whether the wishlist already holds the given product.
func (w *Wishlist) Contains(productID uuid.UUID) bool {
	return slices.ContainsFunc(w.Products, func(p *Product) bool {
		return p.ID == productID
	})
}
