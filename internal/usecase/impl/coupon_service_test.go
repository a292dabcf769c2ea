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

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// couponServiceFixtures holds all test dependencies for coupon service tests.
type couponServiceFixtures struct {
	service    usecase.CouponUsecase
	couponRepo *mockRepo.MockCouponRepository
}

func createTestCouponService(t *testing.T) couponServiceFixtures {
	couponRepo := mockRepo.NewMockCouponRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCouponService(CouponServiceParams{
		CouponRepo: couponRepo,
		Logger:     logger,
	})

	return couponServiceFixtures{
		service:    service,
		couponRepo: couponRepo,
	}
}

func save10() *entity.Coupon {
	return &entity.Coupon{
		Code:               "SAVE10",
		DiscountPercentage: 10,
		MinOrderAmount:     decimal.NewFromInt(100),
		MaxUses:            100,
		UsedCount:          0,
		Active:             true,
	}
}

func TestCouponService_Validate_Success(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()

	fx.couponRepo.EXPECT().FindByCode(ctx, "SAVE10").Return(save10(), nil)

	output, err := fx.service.Validate(ctx, &usecase.ValidateCouponInput{
		Code:        "SAVE10",
		OrderAmount: decimal.NewFromInt(150),
	})

	require.NoError(t, err)
	assert.Equal(t, "SAVE10", output.Code)
	assert.Equal(t, 10, output.DiscountPercentage)
	assert.Equal(t, "135.00", output.FinalAmount.StringFixed(2))
}

func TestCouponService_Validate_NormalizesCode(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()

	fx.couponRepo.EXPECT().FindByCode(ctx, "SAVE10").Return(save10(), nil)

	output, err := fx.service.Validate(ctx, &usecase.ValidateCouponInput{
		Code:        "  save10 ",
		OrderAmount: decimal.NewFromInt(200),
	})

	require.NoError(t, err)
	assert.Equal(t, "SAVE10", output.Code)
}

func TestCouponService_Validate_BelowMinimum(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()

	fx.couponRepo.EXPECT().FindByCode(ctx, "SAVE10").Return(save10(), nil)

	output, err := fx.service.Validate(ctx, &usecase.ValidateCouponInput{
		Code:        "SAVE10",
		OrderAmount: decimal.NewFromInt(50),
	})

	assert.Nil(t, output)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrCouponBelowMinimum.ErrorCode(), appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "100.00")
}

func TestCouponService_Validate_Unknown(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()

	fx.couponRepo.EXPECT().FindByCode(ctx, "NOPE").Return(nil, repository.ErrCouponNotFound)

	output, err := fx.service.Validate(ctx, &usecase.ValidateCouponInput{
		Code:        "NOPE",
		OrderAmount: decimal.NewFromInt(500),
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCoupon))
}

func TestCouponService_Validate_Inactive(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	coupon := save10()
	coupon.Active = false

	fx.couponRepo.EXPECT().FindByCode(ctx, "SAVE10").Return(coupon, nil)

	output, err := fx.service.Validate(ctx, &usecase.ValidateCouponInput{
		Code:        "SAVE10",
		OrderAmount: decimal.NewFromInt(500),
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCoupon))
}

func TestCouponService_Validate_Exhausted(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	coupon := save10()
	coupon.UsedCount = coupon.MaxUses

	fx.couponRepo.EXPECT().FindByCode(ctx, "SAVE10").Return(coupon, nil)

	output, err := fx.service.Validate(ctx, &usecase.ValidateCouponInput{
		Code:        "SAVE10",
		OrderAmount: decimal.NewFromInt(500),
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCouponExhausted))
}

func TestCouponService_Redeem_Success(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()

	fx.couponRepo.EXPECT().Redeem(ctx, "SAVE10").Return(nil)

	err := fx.service.Redeem(ctx, "save10")

	require.NoError(t, err)
}

func TestCouponService_Redeem_Exhausted(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()

	fx.couponRepo.EXPECT().Redeem(ctx, "SAVE10").Return(repository.ErrCouponExhausted)

	err := fx.service.Redeem(ctx, "SAVE10")

	assert.True(t, errors.Is(err, domainerrors.ErrCouponExhausted))
}

func TestCouponService_Redeem_Unknown(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()

	fx.couponRepo.EXPECT().Redeem(ctx, "NOPE").Return(repository.ErrCouponNotFound)

	err := fx.service.Redeem(ctx, "NOPE")

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCoupon))
}

func TestCouponService_CreateCoupon_Success(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	input := &usecase.CreateCouponInput{
		Code:               "welcome20",
		DiscountPercentage: 20,
		MinOrderAmount:     decimal.NewFromInt(200),
		MaxUses:            50,
	}

	fx.couponRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Coupon")).
		Return(nil)

	coupon, err := fx.service.CreateCoupon(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "WELCOME20", coupon.Code)
	assert.True(t, coupon.Active)
	assert.Zero(t, coupon.UsedCount)
}

func TestCouponService_CreateCoupon_BadPercentage(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	input := &usecase.CreateCouponInput{
		Code:               "TOOMUCH",
		DiscountPercentage: 150,
		MaxUses:            10,
	}

	coupon, err := fx.service.CreateCoupon(ctx, input)

	assert.Nil(t, coupon)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCouponService_CreateCoupon_BadMaxUses(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	input := &usecase.CreateCouponInput{
		Code:               "NOUSES",
		DiscountPercentage: 10,
		MaxUses:            0,
	}

	coupon, err := fx.service.CreateCoupon(ctx, input)

	assert.Nil(t, coupon)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCouponService_DeactivateCoupon_Success(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()

	fx.couponRepo.EXPECT().Deactivate(ctx, "SAVE10").Return(nil)

	err := fx.service.DeactivateCoupon(ctx, "save10")

	require.NoError(t, err)
}

func TestCouponService_DeactivateCoupon_Unknown(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()

	fx.couponRepo.EXPECT().Deactivate(ctx, "NOPE").Return(repository.ErrCouponNotFound)

	err := fx.service.DeactivateCoupon(ctx, "NOPE")

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCoupon))
}

func TestCouponService_ListCoupons_Success(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	expected := []*entity.Coupon{save10()}

	fx.couponRepo.EXPECT().FindAll(ctx).Return(expected, nil)

	coupons, err := fx.service.ListCoupons(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, coupons)
}
