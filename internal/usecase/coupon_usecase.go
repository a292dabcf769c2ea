// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"revcart/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// ValidateCouponInput carries a coupon code and the order subtotal it should
// apply to.
type ValidateCouponInput struct {
	Code        string          `json:"code" validate:"required"`
	OrderAmount decimal.Decimal `json:"orderAmount"`
}

// ValidateCouponOutput returns the discount to apply and the resulting amount.
type ValidateCouponOutput struct {
	Code               string          `json:"code"`
	DiscountPercentage int             `json:"discountPercentage"`
	FinalAmount        decimal.Decimal `json:"finalAmount"`
}

// CreateCouponInput defines the data required to create a promotional code.
type CreateCouponInput struct {
	Code               string          `json:"code" validate:"required"`
	DiscountPercentage int             `json:"discountPercentage" validate:"gte=0,lte=100"`
	MinOrderAmount     decimal.Decimal `json:"minOrderAmount"`
	MaxUses            int             `json:"maxUses" validate:"gt=0"`
}

// CouponUsecase defines the interface for the promotional-code ledger.
type CouponUsecase interface {
	// Validate checks a code against an order amount and computes the final
	// amount after discount, rounded to the store's currency precision.
	Validate(ctx context.Context, input *ValidateCouponInput) (*ValidateCouponOutput, error)

	// Redeem consumes one use of the coupon. At most MaxUses redemptions
	// ever succeed, even under concurrent attempts.
	Redeem(ctx context.Context, code string) error

	// CreateCoupon adds a promotional code. Admin only.
	CreateCoupon(ctx context.Context, input *CreateCouponInput) (*entity.Coupon, error)

	// DeactivateCoupon turns a code off. Admin only.
	DeactivateCoupon(ctx context.Context, code string) error

	// ListCoupons returns every coupon. Admin only.
	ListCoupons(ctx context.Context) ([]*entity.Coupon, error)
}
