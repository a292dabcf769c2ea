package postgres

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"revcart/internal/domain/entity"
	"revcart/internal/domain/repository"
	"revcart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDSNEnv points at a scratch PostgreSQL database, e.g.
// "host=localhost user=postgres password=postgres dbname=revcart_test".
const testDSNEnv = "REVCART_TEST_POSTGRES_DSN"

func createTestDB(t *testing.T) *gorm.DB {
	dsn := os.Getenv(testDSNEnv)
	if dsn == "" {
		t.Skipf("%s not set, skipping integration test", testDSNEnv)
	}

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.CouponModel{}))

	return db
}

func createTestCoupon(t *testing.T, repo repository.CouponRepository, db *gorm.DB, maxUses int) *entity.Coupon {
	coupon := &entity.Coupon{
		ID:                 uuid.New(),
		Code:               fmt.Sprintf("CAP%d", time.Now().UnixNano()),
		DiscountPercentage: 10,
		MinOrderAmount:     decimal.NewFromInt(0),
		MaxUses:            maxUses,
		Active:             true,
	}
	require.NoError(t, repo.Create(context.Background(), coupon))
	t.Cleanup(func() {
		db.Where("code = ?", coupon.Code).Delete(&model.CouponModel{})
	})

	return coupon
}

// The usage cap lives in the UPDATE's WHERE clause, so concurrent
// redemptions racing for the last uses must resolve to exactly MaxUses
// winners and the rest must see ErrCouponExhausted.
func TestCouponRepository_Redeem_ConcurrentCap(t *testing.T) {
	db := createTestDB(t)
	repo := NewCouponRepository(db)
	ctx := context.Background()

	const maxUses = 5
	const attempts = 20
	coupon := createTestCoupon(t, repo, db, maxUses)

	var redeemed, exhausted atomic.Int64
	var wg sync.WaitGroup
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()

			switch err := repo.Redeem(ctx, coupon.Code); {
			case err == nil:
				redeemed.Add(1)
			case errors.Is(err, repository.ErrCouponExhausted):
				exhausted.Add(1)
			default:
				t.Errorf("unexpected redeem error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, maxUses, redeemed.Load())
	assert.EqualValues(t, attempts-maxUses, exhausted.Load())

	stored, err := repo.FindByCode(ctx, coupon.Code)
	require.NoError(t, err)
	assert.Equal(t, maxUses, stored.UsedCount)
}

func TestCouponRepository_Redeem_ExhaustedAndUnknown(t *testing.T) {
	db := createTestDB(t)
	repo := NewCouponRepository(db)
	ctx := context.Background()

	coupon := createTestCoupon(t, repo, db, 1)

	require.NoError(t, repo.Redeem(ctx, coupon.Code))
	assert.ErrorIs(t, repo.Redeem(ctx, coupon.Code), repository.ErrCouponExhausted)

	assert.ErrorIs(t, repo.Redeem(ctx, "NO-SUCH-CODE"), repository.ErrCouponNotFound)

	require.NoError(t, repo.Deactivate(ctx, coupon.Code))
	assert.ErrorIs(t, repo.Redeem(ctx, coupon.Code), repository.ErrCouponNotFound)
}
