// Package providerrepo provides data transfer objects and mapping functions
// for provider persistence.
package providerrepo

import (
	"github.com/google/uuid"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/core/domain/model/provider"
)

// ProviderDTO represents the database structure for persisting supplier
// records. The composite unique index keeps one supplier per email within
// each owner's directory.
type ProviderDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_providers_owner_email"`
	Name    string    `gorm:"type:varchar(255);not null"`
	Email   string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_providers_owner_email"`
	Phone   string    `gorm:"type:varchar(64)"`
	Address string    `gorm:"type:text"`
}

// TableName specifies the database table name for provider entities.
func (ProviderDTO) TableName() string {
	return "providers"
}

// fromDomain converts a provider domain aggregate to its database representation.
func fromDomain(aggregate *provider.Provider) ProviderDTO {
	return ProviderDTO{
		ID:      aggregate.ID().Bytes(),
		OwnerID: aggregate.OwnerID().Bytes(),
		Name:    aggregate.Name(),
		Email:   aggregate.Email(),
		Phone:   aggregate.Phone(),
		Address: aggregate.Address(),
	}
}

// toDomain converts a database DTO to a provider domain aggregate.
func toDomain(dto ProviderDTO) (*provider.Provider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	return provider.RestoreProvider(id, ownerID, dto.Name, dto.Email, dto.Phone, dto.Address)
}
