// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "revcart/internal/delivery/context"
	"revcart/internal/domain/entity"
	domainerrors "revcart/internal/domain/errors"
	"revcart/internal/domain/repository"
	"revcart/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// couponService implements the CouponUsecase interface.
type couponService struct {
	couponRepo repository.CouponRepository
	logger     *slog.Logger
}

// CouponServiceParams holds dependencies for couponService, injected by Fx.
type CouponServiceParams struct {
	fx.In

	CouponRepo repository.CouponRepository
	Logger     *slog.Logger
}

// NewCouponService is the constructor for couponService.
func NewCouponService(params CouponServiceParams) usecase.CouponUsecase {
	return &couponService{
		couponRepo: params.CouponRepo,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *couponService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// normalizeCode canonicalizes coupon codes for lookup. Codes are stored and
// matched uppercase.
func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Validate checks a code against an order amount and computes the final
// amount after discount. Validation never consumes a use.
func (srv *couponService) Validate(ctx context.Context, input *usecase.ValidateCouponInput) (*usecase.ValidateCouponOutput, error) {
	code := normalizeCode(input.Code)

	coupon, err := srv.couponRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return nil, domainerrors.ErrInvalidCoupon
		}

		return nil, errors.Wrap(err, "failed to load coupon for validation")
	}

	if !coupon.Active {
		return nil, domainerrors.ErrInvalidCoupon
	}
	if coupon.Exhausted() {
		return nil, domainerrors.ErrCouponExhausted
	}
	if input.OrderAmount.LessThan(coupon.MinOrderAmount) {
		return nil, domainerrors.ErrCouponBelowMinimum.WithDetails(
			"minimum order amount is " + coupon.MinOrderAmount.StringFixed(2))
	}

	return &usecase.ValidateCouponOutput{
		Code:               coupon.Code,
		DiscountPercentage: coupon.DiscountPercentage,
		FinalAmount:        coupon.Apply(input.OrderAmount),
	}, nil
}

// Redeem consumes one use of the coupon. The guarded UPDATE in the
// repository is what enforces the cap under concurrency.
func (srv *couponService) Redeem(ctx context.Context, code string) error {
	code = normalizeCode(code)

	if err := srv.couponRepo.Redeem(ctx, code); err != nil {
		switch {
		case errors.Is(err, repository.ErrCouponNotFound):
			return domainerrors.ErrInvalidCoupon
		case errors.Is(err, repository.ErrCouponExhausted):
			return domainerrors.ErrCouponExhausted
		default:
			return errors.Wrap(err, "failed to redeem coupon")
		}
	}

	srv.log(ctx).Info("Coupon redeemed", slog.String("code", code))

	return nil
}

// CreateCoupon adds a promotional code.
func (srv *couponService) CreateCoupon(ctx context.Context, input *usecase.CreateCouponInput) (*entity.Coupon, error) {
	if input.DiscountPercentage < 0 || input.DiscountPercentage > 100 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("discount percentage must be between 0 and 100")
	}
	if input.MaxUses <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("max uses must be positive")
	}
	if input.MinOrderAmount.LessThan(decimal.Zero) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("minimum order amount must not be negative")
	}

	coupon := &entity.Coupon{
		Code:               normalizeCode(input.Code),
		DiscountPercentage: input.DiscountPercentage,
		MinOrderAmount:     input.MinOrderAmount,
		MaxUses:            input.MaxUses,
		Active:             true,
	}

	if err := srv.couponRepo.Create(ctx, coupon); err != nil {
		srv.log(ctx).Warn("Failed to create coupon", slog.String("code", coupon.Code), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Coupon created", slog.String("code", coupon.Code), slog.Int("maxUses", coupon.MaxUses))

	return coupon, nil
}

// DeactivateCoupon turns a code off.
func (srv *couponService) DeactivateCoupon(ctx context.Context, code string) error {
	code = normalizeCode(code)

	if err := srv.couponRepo.Deactivate(ctx, code); err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return domainerrors.ErrInvalidCoupon
		}

		return errors.Wrap(err, "failed to deactivate coupon")
	}

	srv.log(ctx).Info("Coupon deactivated", slog.String("code", code))

	return nil
}

// ListCoupons returns every coupon.
func (srv *couponService) ListCoupons(ctx context.Context) ([]*entity.Coupon, error) {
	coupons, err := srv.couponRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list coupons")
	}

	return coupons, nil
}
