package commands

import (
	"errors"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/errs"
	"breakfast/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand represents a request to update a customer's contact
// details. The credit balance is never edited directly; it only moves through
// delivery step completion and resets.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	ownerID    kernel.UUID
	name       string
	phone      string
	address    string
	notes      string

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand creates a command to update a customer's details.
func NewUpdateCustomerCommand(
	customerID, ownerID kernel.UUID,
	name, phone, address, notes string,
) (UpdateCustomerCommand, error) {
	command := UpdateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setOwnerID(ownerID),
		command.setName(name),
	); err != nil {
		return UpdateCustomerCommand{}, err
	}

	command.phone = phone
	command.address = address
	command.notes = notes
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer to update.
func (c UpdateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// OwnerID returns the identifier of the requesting user.
func (c UpdateCustomerCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Name returns the new display name.
func (c UpdateCustomerCommand) Name() string {
	return c.name
}

// Phone returns the new phone number, possibly empty.
func (c UpdateCustomerCommand) Phone() string {
	return c.phone
}

// Address returns the new delivery address, possibly empty.
func (c UpdateCustomerCommand) Address() string {
	return c.address
}

// Notes returns the new free-form notes, possibly empty.
func (c UpdateCustomerCommand) Notes() string {
	return c.notes
}

func (c *UpdateCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *UpdateCustomerCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *UpdateCustomerCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
