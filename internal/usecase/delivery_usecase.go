// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"revcart/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterAgentInput defines the data required to add a delivery agent.
type RegisterAgentInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone"`
}

// UpdateAgentStatusInput carries a status change for an agent.
type UpdateAgentStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// DeliveryUsecase defines the interface for the courier roster.
// All operations are admin-scoped.
type DeliveryUsecase interface {
	// ListAgents returns every registered agent.
	ListAgents(ctx context.Context) ([]*entity.DeliveryAgent, error)

	// RegisterAgent adds a new agent with an AVAILABLE status.
	RegisterAgent(ctx context.Context, input *RegisterAgentInput) (*entity.DeliveryAgent, error)

	// UpdateAgentStatus moves an agent between AVAILABLE, BUSY and OFFLINE.
	UpdateAgentStatus(ctx context.Context, agentID uuid.UUID, input *UpdateAgentStatusInput) error
}
