// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// currencyPlaces is the store's currency precision for discount rounding.
const currencyPlaces = 2

// Coupon is a promotional code with a usage cap and a minimum-order
// threshold. UsedCount only ever increases and never exceeds MaxUses.
type Coupon struct {
	ID                 uuid.UUID       // The unique identifier for the coupon.
	Code               string          // The redeemable code, unique across all coupons.
	DiscountPercentage int             // Percentage off the order subtotal, 0-100.
	MinOrderAmount     decimal.Decimal // Smallest order subtotal the coupon applies to.
	MaxUses            int             // Cap on total redemptions.
	UsedCount          int             // Redemptions so far.
	Active             bool            // False once deactivated or exhausted.
	CreatedAt          time.Time       // Timestamp of when this coupon was created.
	UpdatedAt          time.Time       // Timestamp of the last modification.
}

// Exhausted reports whether the coupon has reached its usage cap.
func (c *Coupon) Exhausted() bool {
	return c.UsedCount >= c.MaxUses
}

// Redeemable reports whether the coupon can still be applied to an order.
func (c *Coupon) Redeemable() bool {
	return c.Active && !c.Exhausted()
}

// Apply returns the final amount after the coupon's percentage discount,
// rounded to the store's currency precision. The discount applies to the
// order subtotal before delivery charges.
func (c *Coupon) Apply(orderAmount decimal.Decimal) decimal.Decimal {
	pct := decimal.NewFromInt(int64(c.DiscountPercentage)).Div(decimal.NewFromInt(100))
	factor := decimal.NewFromInt(1).Sub(pct)

	return orderAmount.Mul(factor).Round(currencyPlaces)
}
