// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog item. Products are created by the seed loader or an
// admin and are treated as immutable afterwards.
type Product struct {
	ID          uuid.UUID       // The unique identifier for the product.
	Name        string          // Display name, unique within the demo catalog.
	Category    string          // Catalog category slug, e.g. "fruits", "electronics".
	Price       decimal.Decimal // Unit price in store currency. Never negative.
	Unit        string          // Selling unit, e.g. "1kg", "1 piece".
	ImageURL    string          // URL of the product image.
	Description string          // Short marketing description.
	CreatedAt   time.Time       // Timestamp of when this product was created.
	UpdatedAt   time.Time       // Timestamp of the last modification.
}
