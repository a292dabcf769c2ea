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

// addressService implements the AddressUsecase interface.
type addressService struct {
	txManager   repository.TransactionManager
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// AddressServiceParams holds dependencies for addressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AddressRepo repository.AddressRepository
	Logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		txManager:   params.TxManager,
		addressRepo: params.AddressRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// loadOwnedAddress fetches an address and checks the caller owns it.
// Foreign addresses surface as not-found so IDs cannot be probed.
func loadOwnedAddress(ctx context.Context, addressRepo repository.AddressRepository, userID, addressID uuid.UUID) (*entity.Address, error) {
	address, err := addressRepo.FindByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to load address")
	}

	if address.UserID != userID {
		return nil, domainerrors.ErrAddressNotFound
	}

	return address, nil
}

// ListAddresses returns every address the user owns, default first.
func (srv *addressService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	addresses, err := srv.addressRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// CreateAddress adds an address. The user's first address becomes the default
// automatically; an explicit default demotes the current one in the same
// transaction.
func (srv *addressService) CreateAddress(ctx context.Context, userID uuid.UUID, input *usecase.CreateAddressInput) (*entity.Address, error) {
	var created *entity.Address
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		count, err := addressRepo.CountByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count addresses")
		}

		makeDefault := input.IsDefault || count == 0
		if makeDefault && count > 0 {
			if err := addressRepo.ClearDefaultForUser(ctx, userID); err != nil {
				return errors.Wrap(err, "failed to demote current default address")
			}
		}

		address := &entity.Address{
			UserID:      userID,
			Name:        input.Name,
			AddressLine: input.AddressLine,
			City:        input.City,
			State:       input.State,
			Pincode:     input.Pincode,
			Phone:       input.Phone,
			IsDefault:   makeDefault,
		}

		if err := addressRepo.Create(ctx, address); err != nil {
			return errors.Wrap(err, "failed to create address")
		}

		created = address

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create address", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Address created", slog.Any("userID", userID), slog.Any("addressID", created.ID))

	return created, nil
}

// UpdateAddress modifies an address the user owns. Absent fields keep their
// current values.
func (srv *addressService) UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input *usecase.UpdateAddressInput) (*entity.Address, error) {
	var updated *entity.Address
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		address, err := loadOwnedAddress(ctx, addressRepo, userID, addressID)
		if err != nil {
			return err
		}

		if input.Name != nil {
			address.Name = *input.Name
		}
		if input.AddressLine != nil {
			address.AddressLine = *input.AddressLine
		}
		if input.City != nil {
			address.City = *input.City
		}
		if input.State != nil {
			address.State = *input.State
		}
		if input.Pincode != nil {
			address.Pincode = *input.Pincode
		}
		if input.Phone != nil {
			address.Phone = *input.Phone
		}

		if err := addressRepo.Update(ctx, address); err != nil {
			return errors.Wrap(err, "failed to update address")
		}

		updated = address

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// SetDefault marks one address as the default. Clearing the flag from the
// rest happens in the same transaction, so the single-default invariant
// holds at every observable point. Already-default is a no-op.
func (srv *addressService) SetDefault(ctx context.Context, userID, addressID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		address, err := loadOwnedAddress(ctx, addressRepo, userID, addressID)
		if err != nil {
			return err
		}

		if address.IsDefault {
			return nil
		}

		if err := addressRepo.ClearDefaultForUser(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to clear current default address")
		}

		address.IsDefault = true
		if err := addressRepo.Update(ctx, address); err != nil {
			return errors.Wrap(err, "failed to promote default address")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to set default address",
			slog.Any("userID", userID), slog.Any("addressID", addressID), slog.Any("error", err))

		return err
	}

	return nil
}

// DeleteAddress removes an address the user owns. Deleting the default
// promotes the most recently created survivor so a non-empty address book
// always has a default.
func (srv *addressService) DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		address, err := loadOwnedAddress(ctx, addressRepo, userID, addressID)
		if err != nil {
			return err
		}

		if err := addressRepo.Delete(ctx, addressID); err != nil {
			return errors.Wrap(err, "failed to delete address")
		}

		if !address.IsDefault {
			return nil
		}

		remaining, err := addressRepo.FindByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list remaining addresses")
		}
		if len(remaining) == 0 {
			return nil
		}

		// FindByUser orders newest first after defaults; with no default
		// left the head is the most recently created survivor.
		successor := remaining[0]
		successor.IsDefault = true
		if err := addressRepo.Update(ctx, successor); err != nil {
			return errors.Wrap(err, "failed to promote successor default address")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete address",
			slog.Any("userID", userID), slog.Any("addressID", addressID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Debug("Address deleted", slog.Any("userID", userID), slog.Any("addressID", addressID))

	return nil
}
