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
	"revcart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// addressServiceFixtures holds all test dependencies for address service tests.
type addressServiceFixtures struct {
	t           *testing.T
	service     usecase.AddressUsecase
	txManager   *mockRepo.MockTransactionManager
	addressRepo *mockRepo.MockAddressRepository
}

func createTestAddressService(t *testing.T) addressServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAddressService(AddressServiceParams{
		TxManager:   txManager,
		AddressRepo: addressRepo,
		Logger:      logger,
	})

	return addressServiceFixtures{
		t:           t,
		service:     service,
		txManager:   txManager,
		addressRepo: addressRepo,
	}
}

// onExecute stubs the transaction manager with a factory wired by setup and
// makes Execute return result.
func (fx addressServiceFixtures) onExecute(ctx context.Context, result error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(mockFactory)

			_ = fn(mockFactory)
		}).
		Return(result)
}

func TestAddressService_ListAddresses_Success(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.Address{
		{ID: uuid.New(), UserID: userID, IsDefault: true},
		{ID: uuid.New(), UserID: userID},
	}

	fx.addressRepo.EXPECT().FindByUser(ctx, userID).Return(expected, nil)

	addresses, err := fx.service.ListAddresses(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, addresses)
}

func TestAddressService_CreateAddress_FirstBecomesDefault(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.CreateAddressInput{
		Name:        "Home",
		AddressLine: "12 Main St",
		City:        "Chennai",
		IsDefault:   false,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(mockAddressRepo)

		mockAddressRepo.EXPECT().CountByUser(ctx, userID).Return(int64(0), nil)
		mockAddressRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Address")).
			Run(func(ctx context.Context, address *entity.Address) {
				assert.True(t, address.IsDefault)
				address.ID = uuid.New()
			}).
			Return(nil)
	})

	address, err := fx.service.CreateAddress(ctx, userID, input)

	require.NoError(t, err)
	assert.True(t, address.IsDefault)
	assert.Equal(t, userID, address.UserID)
}

func TestAddressService_CreateAddress_ExplicitDefaultDemotesCurrent(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.CreateAddressInput{
		Name:        "Office",
		AddressLine: "88 Work Rd",
		IsDefault:   true,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(mockAddressRepo)

		mockAddressRepo.EXPECT().CountByUser(ctx, userID).Return(int64(2), nil)
		mockAddressRepo.EXPECT().ClearDefaultForUser(ctx, userID).Return(nil)
		mockAddressRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Address")).
			Run(func(ctx context.Context, address *entity.Address) {
				address.ID = uuid.New()
			}).
			Return(nil)
	})

	address, err := fx.service.CreateAddress(ctx, userID, input)

	require.NoError(t, err)
	assert.True(t, address.IsDefault)
}

func TestAddressService_CreateAddress_NonDefaultKeepsCurrent(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.CreateAddressInput{
		Name:        "Office",
		AddressLine: "88 Work Rd",
		IsDefault:   false,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(mockAddressRepo)

		mockAddressRepo.EXPECT().CountByUser(ctx, userID).Return(int64(1), nil)
		mockAddressRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Address")).
			Run(func(ctx context.Context, address *entity.Address) {
				assert.False(t, address.IsDefault)
				address.ID = uuid.New()
			}).
			Return(nil)
	})

	address, err := fx.service.CreateAddress(ctx, userID, input)

	require.NoError(t, err)
	assert.False(t, address.IsDefault)
}

func TestAddressService_UpdateAddress_PartialFields(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	newName := "New Recipient"
	newCity := "Mumbai"
	input := &usecase.UpdateAddressInput{
		Name: &newName,
		City: &newCity,
	}

	existing := &entity.Address{
		ID:          addressID,
		UserID:      userID,
		Name:        "Old Recipient",
		AddressLine: "12 Main St",
		City:        "Chennai",
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(mockAddressRepo)

		mockAddressRepo.EXPECT().FindByID(ctx, addressID).Return(existing, nil)
		mockAddressRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Address")).Return(nil)
	})

	updated, err := fx.service.UpdateAddress(ctx, userID, addressID, input)

	require.NoError(t, err)
	assert.Equal(t, "New Recipient", updated.Name)
	assert.Equal(t, "Mumbai", updated.City)
	assert.Equal(t, "12 Main St", updated.AddressLine)
}

func TestAddressService_UpdateAddress_ForeignAddress(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()

	foreign := &entity.Address{
		ID:     addressID,
		UserID: uuid.New(), // owned by someone else
	}

	fx.onExecute(ctx, domainerrors.ErrAddressNotFound, func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(mockAddressRepo)

		mockAddressRepo.EXPECT().FindByID(ctx, addressID).Return(foreign, nil)
	})

	updated, err := fx.service.UpdateAddress(ctx, userID, addressID, &usecase.UpdateAddressInput{})

	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
}

func TestAddressService_SetDefault_Success(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()

	existing := &entity.Address{
		ID:        addressID,
		UserID:    userID,
		IsDefault: false,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(mockAddressRepo)

		mockAddressRepo.EXPECT().FindByID(ctx, addressID).Return(existing, nil)
		mockAddressRepo.EXPECT().ClearDefaultForUser(ctx, userID).Return(nil)
		mockAddressRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.Address")).
			Run(func(ctx context.Context, address *entity.Address) {
				assert.True(t, address.IsDefault)
			}).
			Return(nil)
	})

	err := fx.service.SetDefault(ctx, userID, addressID)

	require.NoError(t, err)
}

func TestAddressService_SetDefault_AlreadyDefault(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()

	existing := &entity.Address{
		ID:        addressID,
		UserID:    userID,
		IsDefault: true,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(mockAddressRepo)

		mockAddressRepo.EXPECT().FindByID(ctx, addressID).Return(existing, nil)
	})

	err := fx.service.SetDefault(ctx, userID, addressID)

	require.NoError(t, err)
}

func TestAddressService_SetDefault_NotFound(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()

	fx.onExecute(ctx, domainerrors.ErrAddressNotFound, func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(mockAddressRepo)

		mockAddressRepo.EXPECT().FindByID(ctx, addressID).Return(nil, repository.ErrAddressNotFound)
	})

	err := fx.service.SetDefault(ctx, userID, addressID)

	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
}

func TestAddressService_DeleteAddress_PromotesSuccessor(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()

	deleted := &entity.Address{
		ID:        addressID,
		UserID:    userID,
		IsDefault: true,
	}
	successor := &entity.Address{
		ID:     uuid.New(),
		UserID: userID,
	}
	older := &entity.Address{
		ID:     uuid.New(),
		UserID: userID,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(mockAddressRepo)

		mockAddressRepo.EXPECT().FindByID(ctx, addressID).Return(deleted, nil)
		mockAddressRepo.EXPECT().Delete(ctx, addressID).Return(nil)
		mockAddressRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.Address{successor, older}, nil)
		mockAddressRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.Address")).
			Run(func(ctx context.Context, address *entity.Address) {
				assert.Equal(t, successor.ID, address.ID)
				assert.True(t, address.IsDefault)
			}).
			Return(nil)
	})

	err := fx.service.DeleteAddress(ctx, userID, addressID)

	require.NoError(t, err)
}

func TestAddressService_DeleteAddress_NonDefaultNoPromotion(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()

	existing := &entity.Address{
		ID:        addressID,
		UserID:    userID,
		IsDefault: false,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(mockAddressRepo)

		mockAddressRepo.EXPECT().FindByID(ctx, addressID).Return(existing, nil)
		mockAddressRepo.EXPECT().Delete(ctx, addressID).Return(nil)
	})

	err := fx.service.DeleteAddress(ctx, userID, addressID)

	require.NoError(t, err)
}

func TestAddressService_DeleteAddress_LastAddress(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()

	existing := &entity.Address{
		ID:        addressID,
		UserID:    userID,
		IsDefault: true,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(mockAddressRepo)

		mockAddressRepo.EXPECT().FindByID(ctx, addressID).Return(existing, nil)
		mockAddressRepo.EXPECT().Delete(ctx, addressID).Return(nil)
		mockAddressRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.Address{}, nil)
	})

	err := fx.service.DeleteAddress(ctx, userID, addressID)

	require.NoError(t, err)
}

func TestAddressService_DeleteAddress_NotFound(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()

	fx.onExecute(ctx, domainerrors.ErrAddressNotFound, func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(mockAddressRepo)

		mockAddressRepo.EXPECT().FindByID(ctx, addressID).Return(nil, repository.ErrAddressNotFound)
	})

	err := fx.service.DeleteAddress(ctx, userID, addressID)

	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
}
