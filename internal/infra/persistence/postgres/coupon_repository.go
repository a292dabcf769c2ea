// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"revcart/internal/domain/entity"
	domainerrors "revcart/internal/domain/errors"
	"revcart/internal/domain/repository"
	"revcart/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// couponRepository implements the repository.CouponRepository interface.
type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository is the constructor for couponRepository.
func NewCouponRepository(db *gorm.DB) repository.CouponRepository {
	return &couponRepository{
		db: db,
	}
}

// FindByCode retrieves a coupon by its unique code.
func (repo *couponRepository) FindByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	var couponM model.CouponModel

	if err := repo.db.WithContext(ctx).
		Where("code = ?", code).
		First(&couponM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon by code")
	}

	return toCouponDomain(&couponM), nil
}

// FindAll retrieves every coupon.
func (repo *couponRepository) FindAll(ctx context.Context) ([]*entity.Coupon, error) {
	var couponModels []*model.CouponModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&couponModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list coupons")
	}

	coupons := make([]*entity.Coupon, 0, len(couponModels))
	for _, couponM := range couponModels {
		coupons = append(coupons, toCouponDomain(couponM))
	}

	return coupons, nil
}

// Create persists a new coupon.
func (repo *couponRepository) Create(ctx context.Context, coupon *entity.Coupon) error {
	couponM := fromCouponDomain(coupon)

	if err := repo.db.WithContext(ctx).Create(couponM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrCouponExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required coupon information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create coupon")
	}

	coupon.ID = couponM.ID
	coupon.CreatedAt = couponM.CreatedAt
	coupon.UpdatedAt = couponM.UpdatedAt

	return nil
}

// Redeem increments the coupon's used count by one. The usage cap sits in
// the WHERE clause, so two redemptions racing for the last use resolve at
// the database: exactly one UPDATE matches, the other sees zero rows.
func (repo *couponRepository) Redeem(ctx context.Context, code string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CouponModel{}).
		Where("code = ? AND active = ? AND used_count < max_uses", code, true).
		Update("used_count", gorm.Expr("used_count + 1"))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to redeem coupon")
	}

	if result.RowsAffected == 0 {
		// Zero rows means the code is unknown, inactive, or out of uses.
		// Distinguish for the caller with one more read.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.CouponModel{}).
			Where("code = ? AND active = ?", code, true).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to inspect coupon after redemption miss")
		}
		if count == 0 {
			return repository.ErrCouponNotFound
		}

		return repository.ErrCouponExhausted
	}

	return nil
}

// Deactivate turns a coupon off.
func (repo *couponRepository) Deactivate(ctx context.Context, code string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CouponModel{}).
		Where("code = ?", code).
		Update("active", false)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate coupon")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCouponNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCouponDomain converts a GORM CouponModel to a domain Coupon entity.
func toCouponDomain(data *model.CouponModel) *entity.Coupon {
	if data == nil {
		return nil
	}

	return &entity.Coupon{
		ID:                 data.ID,
		Code:               data.Code,
		DiscountPercentage: data.DiscountPercentage,
		MinOrderAmount:     data.MinOrderAmount,
		MaxUses:            data.MaxUses,
		UsedCount:          data.UsedCount,
		Active:             data.Active,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromCouponDomain converts a domain Coupon entity to a GORM CouponModel.
func fromCouponDomain(data *entity.Coupon) *model.CouponModel {
	if data == nil {
		return nil
	}

	return &model.CouponModel{
		ID:                 data.ID,
		Code:               data.Code,
		DiscountPercentage: data.DiscountPercentage,
		MinOrderAmount:     data.MinOrderAmount,
		MaxUses:            data.MaxUses,
		UsedCount:          data.UsedCount,
		Active:             data.Active,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
