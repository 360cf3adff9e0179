package commands

import (
	"errors"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/core/domain/model/sale"
	"breakfast/internal/pkg/errs"
	"breakfast/internal/pkg/guard"
)

var ErrChangeSaleStatusCommandIsNotConstructed = errors.New(
	"ChangeSaleStatusCommand must be created via NewChangeSaleStatusCommand constructor",
)

// ChangeSaleStatusCommand represents a request to move a sale between the
// manually managed statuses: draft and closed. Delivery statuses are never
// set directly; in_progress comes from StartDelivery and completed from the
// automatic completion re-check.
type ChangeSaleStatusCommand struct { //nolint:recvcheck //using for validation
	saleID  kernel.UUID
	ownerID kernel.UUID
	target  sale.Status

	guard guard.ConstructorGuard
}

// NewChangeSaleStatusCommand creates a command to close or reopen a sale.
// Only StatusDraft and StatusClosed are accepted as targets.
func NewChangeSaleStatusCommand(
	saleID, ownerID kernel.UUID,
	target sale.Status,
) (ChangeSaleStatusCommand, error) {
	command := ChangeSaleStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSaleID(saleID),
		command.setOwnerID(ownerID),
		command.setTarget(target),
	); err != nil {
		return ChangeSaleStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeSaleStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeSaleStatusCommandIsNotConstructed)
}

// SaleID returns the identifier of the sale to move.
func (c ChangeSaleStatusCommand) SaleID() kernel.UUID {
	return c.saleID
}

// OwnerID returns the identifier of the requesting user.
func (c ChangeSaleStatusCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Target returns the requested status.
func (c ChangeSaleStatusCommand) Target() sale.Status {
	return c.target
}

func (c *ChangeSaleStatusCommand) setSaleID(saleID kernel.UUID) error {
	if err := saleID.Validate(); err != nil {
		return err
	}

	c.saleID = saleID
	return nil
}

func (c *ChangeSaleStatusCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *ChangeSaleStatusCommand) setTarget(target sale.Status) error {
	if target != sale.StatusDraft && target != sale.StatusClosed {
		return errs.NewValueIsInvalidError("target status")
	}

	c.target = target
	return nil
}
