package postgres

import (
	"gorm.io/gorm"

	"breakfast/internal/adapters/out/postgres/accountrepo"
	"breakfast/internal/adapters/out/postgres/customerrepo"
	"breakfast/internal/adapters/out/postgres/productrepo"
	"breakfast/internal/adapters/out/postgres/providerrepo"
	"breakfast/internal/adapters/out/postgres/salerepo"
)

// Migrate creates or updates the database schema for all aggregates.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&accountrepo.AccountDTO{},
		&customerrepo.CustomerDTO{},
		&productrepo.ProductDTO{},
		&providerrepo.ProviderDTO{},
		&salerepo.SaleDTO{},
		&salerepo.ItemDTO{},
		&salerepo.DeliveryStepDTO{},
	)
}
