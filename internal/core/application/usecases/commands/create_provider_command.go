package commands

import (
	"errors"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/errs"
	"breakfast/internal/pkg/guard"
)

var ErrCreateProviderCommandIsNotConstructed = errors.New(
	"CreateProviderCommand must be created via NewCreateProviderCommand constructor",
)

// CreateProviderCommand represents a request to add a supplier to the
// account's directory.
type CreateProviderCommand struct { //nolint:recvcheck //using for validation
	providerID kernel.UUID
	ownerID    kernel.UUID
	name       string
	email      string
	phone      string
	address    string

	guard guard.ConstructorGuard
}

// NewCreateProviderCommand creates a command to add a supplier.
func NewCreateProviderCommand(
	providerID, ownerID kernel.UUID,
	name, email, phone, address string,
) (CreateProviderCommand, error) {
	command := CreateProviderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProviderID(providerID),
		command.setOwnerID(ownerID),
		command.setName(name),
		command.setEmail(email),
	); err != nil {
		return CreateProviderCommand{}, err
	}

	command.phone = phone
	command.address = address
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProviderCommand) Validate() error {
	return c.guard.Validate(ErrCreateProviderCommandIsNotConstructed)
}

// ProviderID returns the unique identifier for the new supplier.
func (c CreateProviderCommand) ProviderID() kernel.UUID {
	return c.providerID
}

// OwnerID returns the identifier of the user adding the supplier.
func (c CreateProviderCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Name returns the supplier's display name.
func (c CreateProviderCommand) Name() string {
	return c.name
}

// Email returns the supplier's contact email.
func (c CreateProviderCommand) Email() string {
	return c.email
}

// Phone returns the supplier's phone number.
func (c CreateProviderCommand) Phone() string {
	return c.phone
}

// Address returns the supplier's address.
func (c CreateProviderCommand) Address() string {
	return c.address
}

func (c *CreateProviderCommand) setProviderID(providerID kernel.UUID) error {
	if err := providerID.Validate(); err != nil {
		return err
	}

	c.providerID = providerID
	return nil
}

func (c *CreateProviderCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateProviderCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateProviderCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}
