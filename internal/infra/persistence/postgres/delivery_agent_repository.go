// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"revcart/internal/domain/entity"
	domainerrors "revcart/internal/domain/errors"
	"revcart/internal/domain/repository"
	"revcart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deliveryAgentRepository implements the repository.DeliveryAgentRepository interface.
type deliveryAgentRepository struct {
	db *gorm.DB
}

// NewDeliveryAgentRepository is the constructor for deliveryAgentRepository.
func NewDeliveryAgentRepository(db *gorm.DB) repository.DeliveryAgentRepository {
	return &deliveryAgentRepository{
		db: db,
	}
}

// FindByID retrieves an agent by their unique ID.
func (repo *deliveryAgentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DeliveryAgent, error) {
	var agentM model.DeliveryAgentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&agentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAgentNotFound
		}

		return nil, errors.Wrap(err, "failed to find agent by ID")
	}

	return toAgentDomain(&agentM), nil
}

// FindByEmail retrieves an agent by their email address.
func (repo *deliveryAgentRepository) FindByEmail(ctx context.Context, email string) (*entity.DeliveryAgent, error) {
	var agentM model.DeliveryAgentModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&agentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAgentNotFound
		}

		return nil, errors.Wrap(err, "failed to find agent by email")
	}

	return toAgentDomain(&agentM), nil
}

// FindAll retrieves every agent.
func (repo *deliveryAgentRepository) FindAll(ctx context.Context) ([]*entity.DeliveryAgent, error) {
	var agentModels []*model.DeliveryAgentModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&agentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list agents")
	}

	agents := make([]*entity.DeliveryAgent, 0, len(agentModels))
	for _, agentM := range agentModels {
		agents = append(agents, toAgentDomain(agentM))
	}

	return agents, nil
}

// Create persists a new agent.
func (repo *deliveryAgentRepository) Create(ctx context.Context, agent *entity.DeliveryAgent) error {
	agentM := fromAgentDomain(agent)

	if err := repo.db.WithContext(ctx).Create(agentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAgentExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required agent information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create agent")
	}

	agent.ID = agentM.ID
	agent.CreatedAt = agentM.CreatedAt
	agent.UpdatedAt = agentM.UpdatedAt

	return nil
}

// UpdateStatus sets the agent's availability status.
func (repo *deliveryAgentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AgentStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryAgentModel{}).
		Where("id = ?", id).
		Update("status", status.String())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update agent status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAgentNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAgentDomain converts a GORM DeliveryAgentModel to a domain DeliveryAgent entity.
func toAgentDomain(data *model.DeliveryAgentModel) *entity.DeliveryAgent {
	if data == nil {
		return nil
	}

	return &entity.DeliveryAgent{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Phone:        data.Phone,
		Status:       entity.AgentStatus(data.Status),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromAgentDomain converts a domain DeliveryAgent entity to a GORM DeliveryAgentModel.
func fromAgentDomain(data *entity.DeliveryAgent) *model.DeliveryAgentModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryAgentModel{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Phone:        data.Phone,
		Status:       data.Status.String(),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
