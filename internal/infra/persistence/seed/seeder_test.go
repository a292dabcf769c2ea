package seed

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"revcart/config"
	"revcart/internal/domain/entity"
	"revcart/internal/domain/repository"
	mockRepo "revcart/internal/mocks/repository"
	mockService "revcart/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// seederFixtures holds all test dependencies for seed loader tests.
type seederFixtures struct {
	t         *testing.T
	seeder    *Seeder
	txManager *mockRepo.MockTransactionManager
	hasher    *mockService.MockPasswordHasher
}

func createTestSeeder(t *testing.T, enabled bool) seederFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockService.NewMockPasswordHasher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	seeder := New(Params{
		TxManager: txManager,
		Hasher:    hasher,
		Config:    &config.Config{Seed: &config.SeedConfig{Enabled: enabled}},
		Logger:    logger,
	})

	return seederFixtures{
		t:         t,
		seeder:    seeder,
		txManager: txManager,
		hasher:    hasher,
	}
}

// onExecute stubs the transaction manager with a factory wired by setup and
// makes Execute return whatever the transactional function returns.
func (fx seederFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(mockFactory)

			return fn(mockFactory)
		})
}

func TestSeeder_Run_Disabled(t *testing.T) {
	fx := createTestSeeder(t, false)

	err := fx.seeder.Run(context.Background())

	require.NoError(t, err)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestSeeder_Run_FreshDatabase(t *testing.T) {
	fx := createTestSeeder(t, true)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash(adminPassword).Return("admin-hash", nil)
	fx.hasher.EXPECT().Hash(agentPassword).Return("agent-hash", nil)

	var createdProducts, createdCoupons int
	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(fx.t)
		userRepo.EXPECT().ExistsByEmail(ctx, adminEmail).Return(false, nil)
		userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
		factory.EXPECT().UserRepo().Return(userRepo)

		agentRepo := mockRepo.NewMockDeliveryAgentRepository(fx.t)
		agentRepo.EXPECT().FindByEmail(ctx, agentEmail).Return(nil, repository.ErrAgentNotFound)
		agentRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.DeliveryAgent")).Return(nil)
		factory.EXPECT().AgentRepo().Return(agentRepo)

		productRepo := mockRepo.NewMockProductRepository(fx.t)
		productRepo.EXPECT().FindByName(ctx, mock.AnythingOfType("string")).Return(nil, repository.ErrProductNotFound)
		productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).
			Run(func(ctx context.Context, product *entity.Product) {
				createdProducts++
			}).
			Return(nil)
		factory.EXPECT().ProductRepo().Return(productRepo)

		couponRepo := mockRepo.NewMockCouponRepository(fx.t)
		couponRepo.EXPECT().FindByCode(ctx, mock.AnythingOfType("string")).Return(nil, repository.ErrCouponNotFound)
		couponRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Coupon")).
			Run(func(ctx context.Context, coupon *entity.Coupon) {
				createdCoupons++
			}).
			Return(nil)
		factory.EXPECT().CouponRepo().Return(couponRepo)
	})

	err := fx.seeder.Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, len(catalogSeed), createdProducts)
	assert.Equal(t, len(couponSeed), createdCoupons)
}

func TestSeeder_Run_SecondRunCreatesNothing(t *testing.T) {
	fx := createTestSeeder(t, true)
	ctx := context.Background()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(fx.t)
		userRepo.EXPECT().ExistsByEmail(ctx, adminEmail).Return(true, nil)
		factory.EXPECT().UserRepo().Return(userRepo)

		agentRepo := mockRepo.NewMockDeliveryAgentRepository(fx.t)
		agentRepo.EXPECT().FindByEmail(ctx, agentEmail).
			Return(&entity.DeliveryAgent{Email: agentEmail}, nil)
		factory.EXPECT().AgentRepo().Return(agentRepo)

		productRepo := mockRepo.NewMockProductRepository(fx.t)
		productRepo.EXPECT().FindByName(ctx, mock.AnythingOfType("string")).
			RunAndReturn(func(ctx context.Context, name string) (*entity.Product, error) {
				return &entity.Product{Name: name}, nil
			})
		factory.EXPECT().ProductRepo().Return(productRepo)

		couponRepo := mockRepo.NewMockCouponRepository(fx.t)
		couponRepo.EXPECT().FindByCode(ctx, mock.AnythingOfType("string")).
			RunAndReturn(func(ctx context.Context, code string) (*entity.Coupon, error) {
				return &entity.Coupon{Code: code, Active: true}, nil
			})
		factory.EXPECT().CouponRepo().Return(couponRepo)
	})

	err := fx.seeder.Run(ctx)

	require.NoError(t, err)
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestSeeder_Run_RestoresMissingProduct(t *testing.T) {
	fx := createTestSeeder(t, true)
	ctx := context.Background()
	missing := catalogSeed[1].name

	var restored []string
	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(fx.t)
		userRepo.EXPECT().ExistsByEmail(ctx, adminEmail).Return(true, nil)
		factory.EXPECT().UserRepo().Return(userRepo)

		agentRepo := mockRepo.NewMockDeliveryAgentRepository(fx.t)
		agentRepo.EXPECT().FindByEmail(ctx, agentEmail).
			Return(&entity.DeliveryAgent{Email: agentEmail}, nil)
		factory.EXPECT().AgentRepo().Return(agentRepo)

		productRepo := mockRepo.NewMockProductRepository(fx.t)
		productRepo.EXPECT().FindByName(ctx, mock.AnythingOfType("string")).
			RunAndReturn(func(ctx context.Context, name string) (*entity.Product, error) {
				if name == missing {
					return nil, repository.ErrProductNotFound
				}

				return &entity.Product{Name: name}, nil
			})
		productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).
			Run(func(ctx context.Context, product *entity.Product) {
				restored = append(restored, product.Name)
			}).
			Return(nil)
		factory.EXPECT().ProductRepo().Return(productRepo)

		couponRepo := mockRepo.NewMockCouponRepository(fx.t)
		couponRepo.EXPECT().FindByCode(ctx, mock.AnythingOfType("string")).
			RunAndReturn(func(ctx context.Context, code string) (*entity.Coupon, error) {
				return &entity.Coupon{Code: code, Active: true}, nil
			})
		factory.EXPECT().CouponRepo().Return(couponRepo)
	})

	err := fx.seeder.Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{missing}, restored)
}

func TestSeeder_Run_LookupFailure(t *testing.T) {
	fx := createTestSeeder(t, true)
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(fx.t)
		userRepo.EXPECT().ExistsByEmail(ctx, adminEmail).Return(false, dbErr)
		factory.EXPECT().UserRepo().Return(userRepo)
	})

	err := fx.seeder.Run(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}
