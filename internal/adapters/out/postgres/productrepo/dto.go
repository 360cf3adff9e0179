// Package productrepo provides data transfer objects and mapping functions
// for product persistence.
package productrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/core/domain/model/product"
)

// ProductDTO represents the database structure for persisting product
// aggregates. Sale items snapshot these prices, so editing a product never
// rewrites past sales.
type ProductDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(255);not null"`
	BuyPrice  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	SellPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:        aggregate.ID().Bytes(),
		OwnerID:   aggregate.OwnerID().Bytes(),
		Name:      aggregate.Name(),
		BuyPrice:  aggregate.BuyPrice().Amount(),
		SellPrice: aggregate.SellPrice().Amount(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	buyPrice, err := kernel.NewMoney(dto.BuyPrice)
	if err != nil {
		return nil, err
	}

	sellPrice, err := kernel.NewMoney(dto.SellPrice)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, ownerID, dto.Name, buyPrice, sellPrice)
}
