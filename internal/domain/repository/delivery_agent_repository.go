// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"revcart/internal/domain/entity"
	"revcart/internal/errors"

	"github.com/google/uuid"
)

// ErrAgentNotFound is returned when a delivery agent is not found.
var ErrAgentNotFound = errors.New("delivery agent not found")

// DeliveryAgentRepository defines the interface for the courier roster.
type DeliveryAgentRepository interface {
	// FindByID retrieves an agent by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DeliveryAgent, error)

	// FindByEmail retrieves an agent by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.DeliveryAgent, error)

	// FindAll retrieves every agent.
	FindAll(ctx context.Context) ([]*entity.DeliveryAgent, error)

	// Create persists a new agent.
	Create(ctx context.Context, agent *entity.DeliveryAgent) error

	// UpdateStatus sets the agent's availability status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AgentStatus) error
}
