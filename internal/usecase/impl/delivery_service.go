// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "revcart/internal/delivery/context"
	"revcart/internal/domain/entity"
	domainerrors "revcart/internal/domain/errors"
	"revcart/internal/domain/repository"
	"revcart/internal/domain/service"
	"revcart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// deliveryService implements the DeliveryUsecase interface.
type deliveryService struct {
	agentRepo repository.DeliveryAgentRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// DeliveryServiceParams holds dependencies for deliveryService, injected by Fx.
type DeliveryServiceParams struct {
	fx.In

	AgentRepo repository.DeliveryAgentRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewDeliveryService is the constructor for deliveryService.
func NewDeliveryService(params DeliveryServiceParams) usecase.DeliveryUsecase {
	return &deliveryService{
		agentRepo: params.AgentRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *deliveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAgents returns every registered agent.
func (srv *deliveryService) ListAgents(ctx context.Context) ([]*entity.DeliveryAgent, error) {
	agents, err := srv.agentRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list agents")
	}

	return agents, nil
}

// RegisterAgent adds a new agent. New agents start AVAILABLE.
func (srv *deliveryService) RegisterAgent(ctx context.Context, input *usecase.RegisterAgentInput) (*entity.DeliveryAgent, error) {
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash agent password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	agent := &entity.DeliveryAgent{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Phone:        input.Phone,
		Status:       entity.AgentAvailable,
	}

	if err := srv.agentRepo.Create(ctx, agent); err != nil {
		srv.log(ctx).Warn("Failed to register agent", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Delivery agent registered", slog.Any("agentID", agent.ID), slog.String("email", agent.Email))

	return agent, nil
}

// UpdateAgentStatus moves an agent between AVAILABLE, BUSY and OFFLINE.
func (srv *deliveryService) UpdateAgentStatus(ctx context.Context, agentID uuid.UUID, input *usecase.UpdateAgentStatusInput) error {
	status := entity.AgentStatus(input.Status)
	if !status.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown agent status")
	}

	if err := srv.agentRepo.UpdateStatus(ctx, agentID, status); err != nil {
		if errors.Is(err, repository.ErrAgentNotFound) {
			return domainerrors.ErrAgentNotFound
		}

		return errors.Wrap(err, "failed to update agent status")
	}

	srv.log(ctx).Info("Agent status updated", slog.Any("agentID", agentID), slog.String("status", status.String()))

	return nil
}
