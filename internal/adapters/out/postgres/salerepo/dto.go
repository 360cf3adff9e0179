// Package salerepo provides data transfer objects and mapping functions for sale persistence.
// This package implements the repository pattern for the sale domain aggregate, handling
// the conversion between domain entities and database representations.
package salerepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/core/domain/model/sale"
)

// SaleDTO represents the database structure for persisting sale aggregates.
// Items and delivery steps live in child tables linked by foreign key and
// are saved together with the sale row.
type SaleDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	DeliveryDate time.Time `gorm:"not null;index"`
	Status       int       `gorm:"type:int;not null;index"`

	Items []ItemDTO         `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
	Steps []DeliveryStepDTO `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for sale entities.
func (SaleDTO) TableName() string {
	return "sales"
}

// ItemDTO represents one product line of a sale. Prices are snapshots taken
// from the catalog at the time the line was added.
type ItemDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SaleID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	CustomerID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID  uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity   int             `gorm:"type:int;not null"`
	BuyPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	SellPrice  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for sale item entities.
func (ItemDTO) TableName() string {
	return "sale_items"
}

// DeliveryStepDTO represents one customer stop of a sale's delivery route.
// The unique index on (sale_id, customer_id) guarantees at most one step per
// customer even under concurrent route generation.
type DeliveryStepDTO struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey"`
	SaleID          uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_steps_sale_customer"`
	CustomerID      uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_steps_sale_customer"`
	SequenceOrder   int              `gorm:"type:int;not null"`
	Status          int              `gorm:"type:int;not null"`
	IsNext          bool             `gorm:"not null"`
	CompletedAt     *time.Time       `gorm:""`
	AmountCollected *decimal.Decimal `gorm:"type:numeric(12,2)"`
	CreditApplied   *decimal.Decimal `gorm:"type:numeric(12,2)"`
	SkipReason      *string          `gorm:"type:text"`
}

// TableName specifies the database table name for delivery step entities.
func (DeliveryStepDTO) TableName() string {
	return "delivery_steps"
}

// fromDomain converts a sale domain aggregate to its database representation.
func fromDomain(aggregate *sale.Sale) SaleDTO {
	saleID := aggregate.ID().Bytes()

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:         item.ID().Bytes(),
			SaleID:     saleID,
			CustomerID: item.CustomerID().Bytes(),
			ProductID:  item.ProductID().Bytes(),
			Quantity:   item.Quantity(),
			BuyPrice:   item.BuyPrice().Amount(),
			SellPrice:  item.SellPrice().Amount(),
		})
	}

	steps := make([]DeliveryStepDTO, 0, len(aggregate.Steps()))
	for _, step := range aggregate.Steps() {
		var amountCollected, creditApplied *decimal.Decimal
		if m := step.AmountCollected(); m != nil {
			raw := m.Amount()
			amountCollected = &raw
		}
		if m := step.CreditApplied(); m != nil {
			raw := m.Amount()
			creditApplied = &raw
		}

		var skipReason *string
		if reason := step.SkipReason(); reason != "" {
			skipReason = &reason
		}

		steps = append(steps, DeliveryStepDTO{
			ID:              step.ID().Bytes(),
			SaleID:          saleID,
			CustomerID:      step.CustomerID().Bytes(),
			SequenceOrder:   step.SequenceOrder(),
			Status:          int(step.Status()),
			IsNext:          step.IsNext(),
			CompletedAt:     step.CompletedAt(),
			AmountCollected: amountCollected,
			CreditApplied:   creditApplied,
			SkipReason:      skipReason,
		})
	}

	return SaleDTO{
		ID:           saleID,
		OwnerID:      aggregate.OwnerID().Bytes(),
		DeliveryDate: aggregate.DeliveryDate(),
		Status:       int(aggregate.Status()),
		Items:        items,
		Steps:        steps,
	}
}

// toDomain converts a database DTO to a sale domain aggregate.
// Reconstructs the complete aggregate including items and delivery steps
// using RestoreSale.
func toDomain(dto SaleDTO) (*sale.Sale, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*sale.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	steps := make([]*sale.DeliveryStep, 0, len(dto.Steps))
	for _, stepDTO := range dto.Steps {
		step, stepErr := stepToDomain(stepDTO)
		if stepErr != nil {
			return nil, stepErr
		}
		steps = append(steps, step)
	}

	return sale.RestoreSale(id, ownerID, dto.DeliveryDate, sale.Status(dto.Status), items, steps)
}

func itemToDomain(dto ItemDTO) (*sale.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
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

	return sale.RestoreItem(id, customerID, productID, dto.Quantity, buyPrice, sellPrice)
}

func stepToDomain(dto DeliveryStepDTO) (*sale.DeliveryStep, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var amountCollected, creditApplied *kernel.Money
	if dto.AmountCollected != nil {
		m, moneyErr := kernel.NewMoney(*dto.AmountCollected)
		if moneyErr != nil {
			return nil, moneyErr
		}
		amountCollected = &m
	}
	if dto.CreditApplied != nil {
		m, moneyErr := kernel.NewMoney(*dto.CreditApplied)
		if moneyErr != nil {
			return nil, moneyErr
		}
		creditApplied = &m
	}

	var skipReason string
	if dto.SkipReason != nil {
		skipReason = *dto.SkipReason
	}

	return sale.RestoreDeliveryStep(
		id, customerID,
		dto.SequenceOrder,
		sale.StepStatus(dto.Status),
		dto.IsNext,
		dto.CompletedAt,
		amountCollected, creditApplied,
		skipReason,
	)
}
