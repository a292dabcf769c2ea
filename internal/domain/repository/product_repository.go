// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"revcart/internal/domain/entity"
	"revcart/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for catalog persistence.
// The catalog is read-mostly; writes come from the seed loader and admins.
type ProductRepository interface {
	// FindByID retrieves a product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByName retrieves a product by its display name.
	// Used by the seed loader's natural-key existence check.
	FindByName(ctx context.Context, name string) (*entity.Product, error)

	// FindAll retrieves every product, optionally filtered by category.
	// An empty category means no filter.
	FindAll(ctx context.Context, category string) ([]*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error
}
