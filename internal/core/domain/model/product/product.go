// Package product contains the Product aggregate: a catalog entry with the
// buy and sell prices that sale items snapshot when they are created.
package product

import (
	"errors"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// Product represents a catalog item owned by one user. Prices on the
// product are the current ones; sale items copy them at creation time so
// later catalog edits never change past sales.
type Product struct {
	id        kernel.UUID
	ownerID   kernel.UUID
	name      string
	buyPrice  kernel.Money
	sellPrice kernel.Money

	isConstructed bool
}

// NewProduct creates a Product with the given prices.
func NewProduct(id, ownerID kernel.UUID, name string, buyPrice, sellPrice kernel.Money) (*Product, error) {
	p := &Product{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setOwnerID(ownerID),
		p.setName(name),
	); err != nil {
		return nil, err
	}

	p.buyPrice = buyPrice
	p.sellPrice = sellPrice
	return p, nil
}

// RestoreProduct reconstructs a Product from persistent storage.
func RestoreProduct(id, ownerID kernel.UUID, name string, buyPrice, sellPrice kernel.Money) (*Product, error) {
	return NewProduct(id, ownerID, name, buyPrice, sellPrice)
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// OwnerID returns the identifier of the user who owns the catalog entry.
func (p *Product) OwnerID() kernel.UUID {
	return p.ownerID
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// BuyPrice returns the current purchase cost per unit.
func (p *Product) BuyPrice() kernel.Money {
	return p.buyPrice
}

// SellPrice returns the current selling price per unit.
func (p *Product) SellPrice() kernel.Money {
	return p.sellPrice
}

// Margin returns the per-unit benefit, sell price minus buy price.
// Selling below cost yields an error rather than a negative amount.
func (p *Product) Margin() (kernel.Money, error) {
	return p.sellPrice.Sub(p.buyPrice)
}

// UpdateDetails replaces the product's name and prices. Existing sale items
// keep their snapshot prices.
func (p *Product) UpdateDetails(name string, buyPrice, sellPrice kernel.Money) error {
	if err := p.setName(name); err != nil {
		return err
	}

	p.buyPrice = buyPrice
	p.sellPrice = sellPrice
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	p.ownerID = ownerID
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}
