package commands

import (
	"errors"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/errs"
	"breakfast/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand represents a request to register a new delivery customer.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	ownerID    kernel.UUID
	name       string
	phone      string
	address    string
	notes      string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a new customer.
// Validates that both identifiers are valid and the name is present.
func NewCreateCustomerCommand(
	customerID, ownerID kernel.UUID,
	name, phone, address, notes string,
) (CreateCustomerCommand, error) {
	command := CreateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setOwnerID(ownerID),
		command.setName(name),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	command.phone = phone
	command.address = address
	command.notes = notes
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// CustomerID returns the unique identifier for the new customer.
func (c CreateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// OwnerID returns the identifier of the user registering the customer.
func (c CreateCustomerCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Name returns the customer's display name.
func (c CreateCustomerCommand) Name() string {
	return c.name
}

// Phone returns the customer's phone number, possibly empty.
func (c CreateCustomerCommand) Phone() string {
	return c.phone
}

// Address returns the customer's delivery address, possibly empty.
func (c CreateCustomerCommand) Address() string {
	return c.address
}

// Notes returns free-form notes about the customer, possibly empty.
func (c CreateCustomerCommand) Notes() string {
	return c.notes
}

func (c *CreateCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateCustomerCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateCustomerCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
