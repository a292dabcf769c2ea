// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"revcart/internal/domain/entity"
	"revcart/internal/errors"
)

// Domain-specific errors for coupon persistence.
var (
	// ErrCouponNotFound is returned when a coupon code is unknown.
	ErrCouponNotFound = errors.New("coupon not found")
	// ErrCouponExhausted is returned when a redemption finds no remaining uses.
	ErrCouponExhausted = errors.New("coupon usage limit reached")
)

// CouponRepository defines the interface for the promotional-code ledger.
type CouponRepository interface {
	// FindByCode retrieves a coupon by its unique code.
	FindByCode(ctx context.Context, code string) (*entity.Coupon, error)

	// FindAll retrieves every coupon.
	FindAll(ctx context.Context) ([]*entity.Coupon, error)

	// Create persists a new coupon.
	Create(ctx context.Context, coupon *entity.Coupon) error

	// Redeem increments the coupon's used count by one, guarded by the usage
	// cap in a single conditional statement. Concurrent redemptions of the
	// last remaining use cannot both succeed: the loser gets
	// ErrCouponExhausted (or ErrCouponNotFound for unknown/inactive codes).
	Redeem(ctx context.Context, code string) error

	// Deactivate turns a coupon off so it can no longer be validated or
	// redeemed.
	Deactivate(ctx context.Context, code string) error
}
