// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence.
package customerrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"breakfast/internal/core/domain/model/customer"
	"breakfast/internal/core/domain/model/kernel"
)

// CustomerDTO represents the database structure for persisting customer
// aggregates. The credit balance carries overpayments forward between sales.
type CustomerDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Phone         string          `gorm:"type:varchar(64)"`
	Address       string          `gorm:"type:text"`
	Notes         string          `gorm:"type:text"`
	CreditBalance decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	AccessToken   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer domain aggregate to its database representation.
func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:            aggregate.ID().Bytes(),
		OwnerID:       aggregate.OwnerID().Bytes(),
		Name:          aggregate.Name(),
		Phone:         aggregate.Phone(),
		Address:       aggregate.Address(),
		Notes:         aggregate.Notes(),
		CreditBalance: aggregate.CreditBalance().Amount(),
		AccessToken:   aggregate.AccessToken().Bytes(),
	}
}

// toDomain converts a database DTO to a customer domain aggregate.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	creditBalance, err := kernel.NewMoney(dto.CreditBalance)
	if err != nil {
		return nil, err
	}

	accessToken, err := kernel.UUIDFromBytes(dto.AccessToken[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(
		id, ownerID,
		dto.Name, dto.Phone, dto.Address, dto.Notes,
		creditBalance,
		accessToken,
	)
}
