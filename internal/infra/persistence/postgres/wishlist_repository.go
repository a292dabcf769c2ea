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
	"gorm.io/gorm/clause"
)

// wishlistRepository implements the repository.WishlistRepository interface.
type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository is the constructor for wishlistRepository.
func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepository{
		db: db,
	}
}

// FindByUser retrieves the user's wishlist with its products loaded.
func (repo *wishlistRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Wishlist, error) {
	var wishlistM model.WishlistModel

	if err := repo.db.WithContext(ctx).
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Order("products.name ASC")
		}).
		Where("user_id = ?", userID).
		First(&wishlistM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWishlistNotFound
		}

		return nil, errors.Wrap(err, "failed to find wishlist by user")
	}

	return toWishlistDomain(&wishlistM), nil
}

// GetOrCreate returns the user's wishlist, creating an empty one if absent.
// The insert runs as ON CONFLICT DO NOTHING on user_id so concurrent first
// accesses converge on a single row.
func (repo *wishlistRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.Wishlist, error) {
	wishlistM := &model.WishlistModel{UserID: userID}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(wishlistM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create wishlist")
	}

	// Re-read so the conflict path also returns the persisted row.
	return repo.FindByUser(ctx, userID)
}

// AddItem inserts a product into the wishlist's set. Inserting a product
// already present hits the composite primary key and is a silent no-op.
func (repo *wishlistRepository) AddItem(ctx context.Context, wishlistID, productID uuid.UUID) error {
	itemM := &model.WishlistItemModel{
		WishlistID: wishlistID,
		ProductID:  productID,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add wishlist item")
	}

	return nil
}

// RemoveItem removes a product from the wishlist's set. Removing a product
// not present is a silent no-op.
func (repo *wishlistRepository) RemoveItem(ctx context.Context, wishlistID, productID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("wishlist_id = ? AND product_id = ?", wishlistID, productID).
		Delete(&model.WishlistItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to remove wishlist item")
	}

	return nil
}

// --- Mapper Functions ---

// toWishlistDomain converts a GORM WishlistModel to a domain Wishlist entity.
func toWishlistDomain(data *model.WishlistModel) *entity.Wishlist {
	if data == nil {
		return nil
	}

	products := make([]*entity.Product, 0, len(data.Products))
	for i := range data.Products {
		products = append(products, toProductDomain(&data.Products[i]))
	}

	return &entity.Wishlist{
		ID:        data.ID,
		UserID:    data.UserID,
		Products:  products,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
