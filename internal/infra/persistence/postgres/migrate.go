package postgres

import (
	"revcart/internal/errors"
	"revcart/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every persisted model.
// The demo deployment has no external migration pipeline, so the schema is
// kept in lockstep with the models at startup.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.ProductModel{},
		&model.AddressModel{},
		&model.WishlistModel{},
		&model.WishlistItemModel{},
		&model.CouponModel{},
		&model.DeliveryAgentModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate database schema")
	}

	return nil
}
