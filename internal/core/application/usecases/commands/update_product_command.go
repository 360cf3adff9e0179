package commands

import (
	"errors"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/errs"
	"breakfast/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents a request to edit a catalog product.
// Price edits never touch the snapshot prices on existing sale items.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	ownerID   kernel.UUID
	name      string
	buyPrice  kernel.Money
	sellPrice kernel.Money

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to edit a catalog product.
func NewUpdateProductCommand(
	productID, ownerID kernel.UUID,
	name string,
	buyPrice, sellPrice kernel.Money,
) (UpdateProductCommand, error) {
	command := UpdateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(productID),
		command.setOwnerID(ownerID),
		command.setName(name),
	); err != nil {
		return UpdateProductCommand{}, err
	}

	command.buyPrice = buyPrice
	command.sellPrice = sellPrice
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to edit.
func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// OwnerID returns the identifier of the requesting user.
func (c UpdateProductCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Name returns the new display name.
func (c UpdateProductCommand) Name() string {
	return c.name
}

// BuyPrice returns the new purchase cost per unit.
func (c UpdateProductCommand) BuyPrice() kernel.Money {
	return c.buyPrice
}

// SellPrice returns the new selling price per unit.
func (c UpdateProductCommand) SellPrice() kernel.Money {
	return c.sellPrice
}

func (c *UpdateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *UpdateProductCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *UpdateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
