// Package seed bootstraps the demo dataset on startup.
package seed

import (
	"context"
	"log/slog"

	"revcart/config"
	"revcart/internal/domain/entity"
	"revcart/internal/domain/repository"
	"revcart/internal/domain/service"
	"revcart/internal/errors"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// Bootstrap credentials for the demo environment.
const (
	adminEmail    = "admin@revcart.com"
	adminPassword = "admin123"
	agentEmail    = "agent@revcart.com"
	agentPassword = "agent123"
)

// Seeder loads the demo admin, agent, catalog and coupons.
// Every step checks a natural key first, so re-running is a no-op.
type Seeder struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	enabled   bool
	logger    *slog.Logger
}

// Params holds dependencies for the Seeder, injected by Fx.
type Params struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Config    *config.Config
	Logger    *slog.Logger
}

// New is the constructor for Seeder.
func New(params Params) *Seeder {
	enabled := false
	if params.Config != nil && params.Config.Seed != nil {
		enabled = params.Config.Seed.Enabled
	}

	return &Seeder{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		enabled:   enabled,
		logger:    params.Logger,
	}
}

// Run loads the demo dataset. All inserts share one transaction so a partial
// bootstrap never becomes visible.
func (s *Seeder) Run(ctx context.Context) error {
	if !s.enabled {
		s.logger.Debug("Seed loader disabled, skipping")

		return nil
	}

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := s.seedAdmin(ctx, repoFactory.UserRepo()); err != nil {
			return err
		}
		if err := s.seedAgent(ctx, repoFactory.AgentRepo()); err != nil {
			return err
		}
		if err := s.seedProducts(ctx, repoFactory.ProductRepo()); err != nil {
			return err
		}

		return s.seedCoupons(ctx, repoFactory.CouponRepo())
	})
	if err != nil {
		return errors.Wrap(err, "failed to run seed loader")
	}

	return nil
}

func (s *Seeder) seedAdmin(ctx context.Context, userRepo repository.UserRepository) error {
	exists, err := userRepo.ExistsByEmail(ctx, adminEmail)
	if err != nil {
		return errors.Wrap(err, "failed to check admin existence")
	}
	if exists {
		return nil
	}

	hash, err := s.hasher.Hash(adminPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash admin password")
	}

	admin := &entity.User{
		Name:         "Admin",
		Email:        adminEmail,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
		Phone:        "9876543210",
		Address:      "Admin Address",
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return errors.Wrap(err, "failed to create admin account")
	}

	s.logger.Info("Seeded admin account", slog.String("email", adminEmail))

	return nil
}

func (s *Seeder) seedAgent(ctx context.Context, agentRepo repository.DeliveryAgentRepository) error {
	if _, err := agentRepo.FindByEmail(ctx, agentEmail); err == nil {
		return nil
	} else if !errors.Is(err, repository.ErrAgentNotFound) {
		return errors.Wrap(err, "failed to look up demo agent")
	}

	hash, err := s.hasher.Hash(agentPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash agent password")
	}

	agent := &entity.DeliveryAgent{
		Name:         "John Delivery",
		Email:        agentEmail,
		PasswordHash: hash,
		Phone:        "9876543210",
		Status:       entity.AgentAvailable,
	}
	if err := agentRepo.Create(ctx, agent); err != nil {
		return errors.Wrap(err, "failed to create demo agent")
	}

	s.logger.Info("Seeded delivery agent", slog.String("email", agentEmail))

	return nil
}

func (s *Seeder) seedProducts(ctx context.Context, productRepo repository.ProductRepository) error {
	created := 0
	for _, seed := range catalogSeed {
		if _, err := productRepo.FindByName(ctx, seed.name); err == nil {
			continue
		} else if !errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrapf(err, "failed to look up product %q", seed.name)
		}

		product := &entity.Product{
			Name:        seed.name,
			Category:    seed.category,
			Price:       decimal.NewFromInt(seed.price),
			Unit:        seed.unit,
			ImageURL:    seed.imageURL,
			Description: seed.description,
		}
		if err := productRepo.Create(ctx, product); err != nil {
			return errors.Wrapf(err, "failed to seed product %q", seed.name)
		}
		created++
	}

	if created > 0 {
		s.logger.Info("Seeded catalog", slog.Int("created", created))
	} else {
		s.logger.Debug("Catalog already populated")
	}

	return nil
}

func (s *Seeder) seedCoupons(ctx context.Context, couponRepo repository.CouponRepository) error {
	created := 0
	for _, seed := range couponSeed {
		if _, err := couponRepo.FindByCode(ctx, seed.code); err == nil {
			continue
		} else if !errors.Is(err, repository.ErrCouponNotFound) {
			return errors.Wrapf(err, "failed to look up coupon %q", seed.code)
		}

		coupon := &entity.Coupon{
			Code:               seed.code,
			DiscountPercentage: seed.discountPercentage,
			MinOrderAmount:     decimal.NewFromInt(seed.minOrderAmount),
			MaxUses:            seed.maxUses,
			Active:             true,
		}
		if err := couponRepo.Create(ctx, coupon); err != nil {
			return errors.Wrapf(err, "failed to seed coupon %q", seed.code)
		}
		created++
	}

	if created > 0 {
		s.logger.Info("Seeded coupons", slog.Int("created", created))
	}

	return nil
}
