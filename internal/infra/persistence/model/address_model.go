package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
// The partial unique index on (user_id) WHERE is_default backs the
// single-default invariant at the storage level.
type AddressModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index;index:uniq_addresses_default,unique,where:is_default"`
	Name        string    `gorm:"type:varchar(100);not null"`
	AddressLine string    `gorm:"type:text;not null"`
	City        string    `gorm:"type:varchar(100)"`
	State       string    `gorm:"type:varchar(100)"`
	Pincode     string    `gorm:"type:varchar(20)"`
	Phone       string    `gorm:"type:varchar(20)"`
	IsDefault   bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
