package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"revcart/internal/domain/entity"
	domainerrors "revcart/internal/domain/errors"
	"revcart/internal/domain/repository"
	mockRepo "revcart/internal/mocks/repository"
	mockService "revcart/internal/mocks/service"
	"revcart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deliveryServiceFixtures holds all test dependencies for delivery service tests.
type deliveryServiceFixtures struct {
	service   usecase.DeliveryUsecase
	agentRepo *mockRepo.MockDeliveryAgentRepository
	hasher    *mockService.MockPasswordHasher
}

func createTestDeliveryService(t *testing.T) deliveryServiceFixtures {
	agentRepo := mockRepo.NewMockDeliveryAgentRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewDeliveryService(DeliveryServiceParams{
		AgentRepo: agentRepo,
		Hasher:    hasher,
		Logger:    logger,
	})

	return deliveryServiceFixtures{
		service:   service,
		agentRepo: agentRepo,
		hasher:    hasher,
	}
}

func TestDeliveryService_ListAgents_Success(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	expected := []*entity.DeliveryAgent{
		{ID: uuid.New(), Name: "John Delivery", Status: entity.AgentAvailable},
		{ID: uuid.New(), Name: "Jane Courier", Status: entity.AgentBusy},
	}

	fx.agentRepo.EXPECT().FindAll(ctx).Return(expected, nil)

	agents, err := fx.service.ListAgents(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, agents)
}

func TestDeliveryService_RegisterAgent_Success(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	input := &usecase.RegisterAgentInput{
		Name:     "John Delivery",
		Email:    "john@example.com",
		Password: "agent123",
		Phone:    "9876543211",
	}

	fx.hasher.EXPECT().Hash("agent123").Return("hashed-password", nil)
	fx.agentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.DeliveryAgent")).
		Run(func(ctx context.Context, agent *entity.DeliveryAgent) {
			agent.ID = uuid.New()
		}).
		Return(nil)

	agent, err := fx.service.RegisterAgent(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, agent.ID)
	assert.Equal(t, "hashed-password", agent.PasswordHash)
	assert.Equal(t, entity.AgentAvailable, agent.Status)
}

func TestDeliveryService_RegisterAgent_HashError(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	input := &usecase.RegisterAgentInput{
		Name:     "John Delivery",
		Email:    "john@example.com",
		Password: "agent123",
	}

	fx.hasher.EXPECT().Hash("agent123").Return("", errors.New("bcrypt error"))

	agent, err := fx.service.RegisterAgent(ctx, input)

	assert.Nil(t, agent)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestDeliveryService_RegisterAgent_DuplicateEmail(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	input := &usecase.RegisterAgentInput{
		Name:     "John Delivery",
		Email:    "john@example.com",
		Password: "agent123",
	}

	fx.hasher.EXPECT().Hash("agent123").Return("hashed-password", nil)
	fx.agentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.DeliveryAgent")).
		Return(domainerrors.ErrAgentExists)

	agent, err := fx.service.RegisterAgent(ctx, input)

	assert.Nil(t, agent)
	assert.True(t, errors.Is(err, domainerrors.ErrAgentExists))
}

func TestDeliveryService_UpdateAgentStatus_Success(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	agentID := uuid.New()

	fx.agentRepo.EXPECT().UpdateStatus(ctx, agentID, entity.AgentBusy).Return(nil)

	err := fx.service.UpdateAgentStatus(ctx, agentID, &usecase.UpdateAgentStatusInput{Status: "BUSY"})

	require.NoError(t, err)
}

func TestDeliveryService_UpdateAgentStatus_InvalidStatus(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	agentID := uuid.New()

	err := fx.service.UpdateAgentStatus(ctx, agentID, &usecase.UpdateAgentStatusInput{Status: "NAPPING"})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestDeliveryService_UpdateAgentStatus_NotFound(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	agentID := uuid.New()

	fx.agentRepo.EXPECT().UpdateStatus(ctx, agentID, entity.AgentOffline).Return(repository.ErrAgentNotFound)

	err := fx.service.UpdateAgentStatus(ctx, agentID, &usecase.UpdateAgentStatusInput{Status: "OFFLINE"})

	assert.True(t, errors.Is(err, domainerrors.ErrAgentNotFound))
}
