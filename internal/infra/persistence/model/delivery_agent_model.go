package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryAgentModel mirrors the 'delivery_agents' table.
type DeliveryAgentModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Phone        string    `gorm:"type:varchar(32)"`
	Status       string    `gorm:"type:varchar(16);not null;default:'AVAILABLE'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryAgentModel) TableName() string {
	return "delivery_agents"
}
