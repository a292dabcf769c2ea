// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "revcart/internal/delivery/context"
	"revcart/internal/domain/entity"
	domainerrors "revcart/internal/domain/errors"
	"revcart/internal/domain/repository"
	"revcart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// wishlistService implements the WishlistUsecase interface.
type wishlistService struct {
	txManager    repository.TransactionManager
	wishlistRepo repository.WishlistRepository
	logger       *slog.Logger
}

// WishlistServiceParams holds dependencies for wishlistService, injected by Fx.
type WishlistServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	WishlistRepo repository.WishlistRepository
	Logger       *slog.Logger
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(params WishlistServiceParams) usecase.WishlistUsecase {
	return &wishlistService{
		txManager:    params.TxManager,
		wishlistRepo: params.WishlistRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *wishlistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetWishlist returns the user's wishlist, creating an empty one on first access.
func (srv *wishlistService) GetWishlist(ctx context.Context, userID uuid.UUID) (*entity.Wishlist, error) {
	wishlist, err := srv.wishlistRepo.GetOrCreate(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load wishlist")
	}

	return wishlist, nil
}

// AddProduct saves a product into the user's wishlist. The lazy wishlist
// creation and the item insert share one transaction.
func (srv *wishlistService) AddProduct(ctx context.Context, userID, productID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.ProductRepo().FindByID(ctx, productID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to load product for wishlist add")
		}

		wishlistRepo := repoFactory.WishlistRepo()

		wishlist, err := wishlistRepo.GetOrCreate(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to load wishlist for add")
		}

		if err := wishlistRepo.AddItem(ctx, wishlist.ID, productID); err != nil {
			return errors.Wrap(err, "failed to add wishlist item")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to add product to wishlist",
			slog.Any("userID", userID), slog.Any("productID", productID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Debug("Product added to wishlist", slog.Any("userID", userID), slog.Any("productID", productID))

	return nil
}

// RemoveProduct removes a product from the user's wishlist.
func (srv *wishlistService) RemoveProduct(ctx context.Context, userID, productID uuid.UUID) error {
	wishlist, err := srv.wishlistRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrWishlistNotFound) {
			return domainerrors.ErrWishlistNotFound
		}

		return errors.Wrap(err, "failed to load wishlist for remove")
	}

	if err := srv.wishlistRepo.RemoveItem(ctx, wishlist.ID, productID); err != nil {
		return errors.Wrap(err, "failed to remove wishlist item")
	}

	srv.log(ctx).Debug("Product removed from wishlist", slog.Any("userID", userID), slog.Any("productID", productID))

	return nil
}
