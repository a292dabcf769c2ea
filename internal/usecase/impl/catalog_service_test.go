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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *mockRepo.MockProductRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCatalogService(CatalogServiceParams{
		ProductRepo: productRepo,
		Logger:      logger,
	})

	return catalogServiceFixtures{
		service:     service,
		productRepo: productRepo,
	}
}

func TestCatalogService_ListProducts_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	expected := []*entity.Product{
		{ID: uuid.New(), Name: "Apple", Category: "fruits"},
		{ID: uuid.New(), Name: "Banana", Category: "fruits"},
	}

	fx.productRepo.EXPECT().FindAll(ctx, "fruits").Return(expected, nil)

	products, err := fx.service.ListProducts(ctx, "fruits")

	require.NoError(t, err)
	assert.Equal(t, expected, products)
}

func TestCatalogService_ListProducts_NoFilter(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().FindAll(ctx, "").Return([]*entity.Product{}, nil)

	products, err := fx.service.ListProducts(ctx, "")

	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestCatalogService_GetProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()
	expected := &entity.Product{
		ID:    productID,
		Name:  "Apple",
		Price: decimal.NewFromInt(120),
	}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(expected, nil)

	product, err := fx.service.GetProduct(ctx, productID)

	require.NoError(t, err)
	assert.Equal(t, expected, product)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	product, err := fx.service.GetProduct(ctx, productID)

	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := &usecase.CreateProductInput{
		Name:     "Fresh Apples",
		Category: "fruits",
		Price:    decimal.NewFromInt(120),
		Unit:     "1 kg",
	}

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			product.ID = uuid.New()
		}).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.Equal(t, "Fresh Apples", product.Name)
	assert.True(t, product.Price.Equal(decimal.NewFromInt(120)))
}

func TestCatalogService_CreateProduct_NegativePrice(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := &usecase.CreateProductInput{
		Name:     "Broken",
		Category: "fruits",
		Price:    decimal.NewFromInt(-1),
	}

	product, err := fx.service.CreateProduct(ctx, input)

	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCatalogService_CreateProduct_DuplicateName(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := &usecase.CreateProductInput{
		Name:     "Fresh Apples",
		Category: "fruits",
		Price:    decimal.NewFromInt(120),
	}

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Return(domainerrors.ErrProductExists)

	product, err := fx.service.CreateProduct(ctx, input)

	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductExists))
}
