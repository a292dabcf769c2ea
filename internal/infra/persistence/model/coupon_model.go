package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CouponModel mirrors the 'coupons' table. The used_count column is only
// advanced through a guarded UPDATE so max_uses can never be exceeded.
type CouponModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Code               string          `gorm:"type:varchar(64);uniqueIndex;not null"`
	DiscountPercentage int             `gorm:"not null"`
	MinOrderAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	MaxUses            int             `gorm:"not null"`
	UsedCount          int             `gorm:"not null;default:0"`
	Active             bool            `gorm:"not null;default:true"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (CouponModel) TableName() string {
	return "coupons"
}
