package commands

import (
	"errors"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/errs"
	"breakfast/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to add a product to the catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	ownerID   kernel.UUID
	name      string
	buyPrice  kernel.Money
	sellPrice kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a catalog product.
func NewCreateProductCommand(
	productID, ownerID kernel.UUID,
	name string,
	buyPrice, sellPrice kernel.Money,
) (CreateProductCommand, error) {
	command := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(productID),
		command.setOwnerID(ownerID),
		command.setName(name),
	); err != nil {
		return CreateProductCommand{}, err
	}

	command.buyPrice = buyPrice
	command.sellPrice = sellPrice
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the unique identifier for the new product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// OwnerID returns the identifier of the user adding the product.
func (c CreateProductCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Name returns the product's display name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// BuyPrice returns the purchase cost per unit.
func (c CreateProductCommand) BuyPrice() kernel.Money {
	return c.buyPrice
}

// SellPrice returns the selling price per unit.
func (c CreateProductCommand) SellPrice() kernel.Money {
	return c.sellPrice
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
