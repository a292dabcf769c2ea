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

// wishlistServiceFixtures holds all test dependencies for wishlist service tests.
type wishlistServiceFixtures struct {
	t            *testing.T
	service      usecase.WishlistUsecase
	txManager    *mockRepo.MockTransactionManager
	wishlistRepo *mockRepo.MockWishlistRepository
}

func createTestWishlistService(t *testing.T) wishlistServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	wishlistRepo := mockRepo.NewMockWishlistRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewWishlistService(WishlistServiceParams{
		TxManager:    txManager,
		WishlistRepo: wishlistRepo,
		Logger:       logger,
	})

	return wishlistServiceFixtures{
		t:            t,
		service:      service,
		txManager:    txManager,
		wishlistRepo: wishlistRepo,
	}
}

// onExecute stubs the transaction manager with a factory wired by setup and
// makes Execute return result.
func (fx wishlistServiceFixtures) onExecute(ctx context.Context, result error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(mockFactory)

			_ = fn(mockFactory)
		}).
		Return(result)
}

func TestWishlistService_GetWishlist_Success(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := &entity.Wishlist{
		ID:     uuid.New(),
		UserID: userID,
		Products: []*entity.Product{
			{ID: uuid.New(), Name: "Apple"},
		},
	}

	fx.wishlistRepo.EXPECT().GetOrCreate(ctx, userID).Return(expected, nil)

	wishlist, err := fx.service.GetWishlist(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, wishlist)
}

func TestWishlistService_GetWishlist_FirstAccessCreatesEmpty(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	userID := uuid.New()
	created := &entity.Wishlist{
		ID:       uuid.New(),
		UserID:   userID,
		Products: []*entity.Product{},
	}

	fx.wishlistRepo.EXPECT().GetOrCreate(ctx, userID).Return(created, nil)

	wishlist, err := fx.service.GetWishlist(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, wishlist.Products)
}

func TestWishlistService_AddProduct_Success(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	wishlistID := uuid.New()

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		mockWishlistRepo := mockRepo.NewMockWishlistRepository(t)

		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		factory.EXPECT().WishlistRepo().Return(mockWishlistRepo)

		mockProductRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
		mockWishlistRepo.EXPECT().GetOrCreate(ctx, userID).Return(&entity.Wishlist{ID: wishlistID, UserID: userID}, nil)
		mockWishlistRepo.EXPECT().AddItem(ctx, wishlistID, productID).Return(nil)
	})

	err := fx.service.AddProduct(ctx, userID, productID)

	require.NoError(t, err)
}

func TestWishlistService_AddProduct_ProductNotFound(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.onExecute(ctx, domainerrors.ErrProductNotFound, func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		mockProductRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)
	})

	err := fx.service.AddProduct(ctx, userID, productID)

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestWishlistService_AddProduct_AddItemError(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	wishlistID := uuid.New()

	fx.onExecute(ctx, errors.Wrap(errors.New("db error"), "failed to add wishlist item"), func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		mockWishlistRepo := mockRepo.NewMockWishlistRepository(t)

		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		factory.EXPECT().WishlistRepo().Return(mockWishlistRepo)

		mockProductRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
		mockWishlistRepo.EXPECT().GetOrCreate(ctx, userID).Return(&entity.Wishlist{ID: wishlistID, UserID: userID}, nil)
		mockWishlistRepo.EXPECT().AddItem(ctx, wishlistID, productID).Return(errors.New("db error"))
	})

	err := fx.service.AddProduct(ctx, userID, productID)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to add wishlist item")
}

func TestWishlistService_RemoveProduct_Success(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	wishlistID := uuid.New()

	fx.wishlistRepo.EXPECT().FindByUser(ctx, userID).Return(&entity.Wishlist{ID: wishlistID, UserID: userID}, nil)
	fx.wishlistRepo.EXPECT().RemoveItem(ctx, wishlistID, productID).Return(nil)

	err := fx.service.RemoveProduct(ctx, userID, productID)

	require.NoError(t, err)
}

func TestWishlistService_RemoveProduct_NoWishlist(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.wishlistRepo.EXPECT().FindByUser(ctx, userID).Return(nil, repository.ErrWishlistNotFound)

	err := fx.service.RemoveProduct(ctx, userID, productID)

	assert.True(t, errors.Is(err, domainerrors.ErrWishlistNotFound))
}
