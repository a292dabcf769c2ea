// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"revcart/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAddressInput defines the data required to add a shipping address.
type CreateAddressInput struct {
	Name        string `json:"name" validate:"required"`
	AddressLine string `json:"addressLine" validate:"required"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
	Phone       string `json:"phone"`
	IsDefault   bool   `json:"isDefault"`
}

// UpdateAddressInput carries partial updates for an existing address.
type UpdateAddressInput struct {
	Name        *string `json:"name,omitempty"`
	AddressLine *string `json:"addressLine,omitempty"`
	City        *string `json:"city,omitempty"`
	State       *string `json:"state,omitempty"`
	Pincode     *string `json:"pincode,omitempty"`
	Phone       *string `json:"phone,omitempty"`
}

// AddressUsecase defines the interface for a user's address book.
// All operations are scoped to the authenticated principal.
type AddressUsecase interface {
	// ListAddresses returns every address the user owns, default first.
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)

	// CreateAddress adds an address. The user's first address becomes the
	// default automatically.
	CreateAddress(ctx context.Context, userID uuid.UUID, input *CreateAddressInput) (*entity.Address, error)

	// UpdateAddress modifies an address the user owns.
	UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input *UpdateAddressInput) (*entity.Address, error)

	// SetDefault marks one address as the default, clearing the flag from
	// every other address the user owns in the same transaction.
	SetDefault(ctx context.Context, userID, addressID uuid.UUID) error

	// DeleteAddress removes an address the user owns. If the default is
	// deleted and others remain, the most recently created one is promoted.
	DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error
}
