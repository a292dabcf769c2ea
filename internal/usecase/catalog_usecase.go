// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"revcart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductInput defines the data required to add a catalog item.
type CreateProductInput struct {
	Name        string          `json:"name" validate:"required"`
	Category    string          `json:"category" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit" validate:"required"`
	ImageURL    string          `json:"imageUrl"`
	Description string          `json:"description"`
}

// CatalogUsecase defines the interface for catalog browsing and admin writes.
type CatalogUsecase interface {
	// ListProducts returns the catalog, optionally filtered by category.
	ListProducts(ctx context.Context, category string) ([]*entity.Product, error)

	// GetProduct returns a single catalog item.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// CreateProduct adds a catalog item. Admin only; prices must not be negative.
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
}
