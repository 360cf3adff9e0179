package commands

import (
	"errors"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/guard"
)

var ErrDeleteProviderCommandIsNotConstructed = errors.New(
	"DeleteProviderCommand must be created via NewDeleteProviderCommand constructor",
)

// DeleteProviderCommand represents a request to remove a supplier from the
// account's directory.
type DeleteProviderCommand struct { //nolint:recvcheck //using for validation
	providerID kernel.UUID
	ownerID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteProviderCommand creates a command to remove a supplier.
func NewDeleteProviderCommand(providerID, ownerID kernel.UUID) (DeleteProviderCommand, error) {
	command := DeleteProviderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProviderID(providerID),
		command.setOwnerID(ownerID),
	); err != nil {
		return DeleteProviderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteProviderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProviderCommandIsNotConstructed)
}

// ProviderID returns the identifier of the supplier to remove.
func (c DeleteProviderCommand) ProviderID() kernel.UUID {
	return c.providerID
}

// OwnerID returns the identifier of the requesting user.
func (c DeleteProviderCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c *DeleteProviderCommand) setProviderID(providerID kernel.UUID) error {
	if err := providerID.Validate(); err != nil {
		return err
	}

	c.providerID = providerID
	return nil
}

func (c *DeleteProviderCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}
