package commands

import (
	"errors"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/errs"
	"breakfast/internal/pkg/guard"
)

var ErrUpdateProviderCommandIsNotConstructed = errors.New(
	"UpdateProviderCommand must be created via NewUpdateProviderCommand constructor",
)

// UpdateProviderCommand represents a request to edit a supplier's contact
// details.
type UpdateProviderCommand struct { //nolint:recvcheck //using for validation
	providerID kernel.UUID
	ownerID    kernel.UUID
	name       string
	email      string
	phone      string
	address    string

	guard guard.ConstructorGuard
}

// NewUpdateProviderCommand creates a command to edit a supplier.
func NewUpdateProviderCommand(
	providerID, ownerID kernel.UUID,
	name, email, phone, address string,
) (UpdateProviderCommand, error) {
	command := UpdateProviderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProviderID(providerID),
		command.setOwnerID(ownerID),
		command.setName(name),
		command.setEmail(email),
	); err != nil {
		return UpdateProviderCommand{}, err
	}

	command.phone = phone
	command.address = address
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProviderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProviderCommandIsNotConstructed)
}

// ProviderID returns the identifier of the supplier to edit.
func (c UpdateProviderCommand) ProviderID() kernel.UUID {
	return c.providerID
}

// OwnerID returns the identifier of the requesting user.
func (c UpdateProviderCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Name returns the new display name.
func (c UpdateProviderCommand) Name() string {
	return c.name
}

// Email returns the new contact email.
func (c UpdateProviderCommand) Email() string {
	return c.email
}

// Phone returns the new phone number.
func (c UpdateProviderCommand) Phone() string {
	return c.phone
}

// Address returns the new address.
func (c UpdateProviderCommand) Address() string {
	return c.address
}

func (c *UpdateProviderCommand) setProviderID(providerID kernel.UUID) error {
	if err := providerID.Validate(); err != nil {
		return err
	}

	c.providerID = providerID
	return nil
}

func (c *UpdateProviderCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *UpdateProviderCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *UpdateProviderCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}
