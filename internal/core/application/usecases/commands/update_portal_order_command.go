package commands

import (
	"errors"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/errs"
	"breakfast/internal/pkg/guard"
)

var ErrUpdatePortalOrderCommandIsNotConstructed = errors.New(
	"UpdatePortalOrderCommand must be created via NewUpdatePortalOrderCommand constructor",
)

// PortalOrderLine is one product line of a customer's self-service order.
// Lines with a zero quantity are dropped, so submitting only zero lines
// clears the order.
type PortalOrderLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// UpdatePortalOrderCommand represents a customer replacing their own order
// on a sale, authorized by their access token instead of a login.
type UpdatePortalOrderCommand struct { //nolint:recvcheck //using for validation
	accessToken kernel.UUID
	saleID      kernel.UUID
	lines       []PortalOrderLine

	guard guard.ConstructorGuard
}

// NewUpdatePortalOrderCommand creates a command for a customer order update.
func NewUpdatePortalOrderCommand(
	accessToken, saleID kernel.UUID,
	lines []PortalOrderLine,
) (UpdatePortalOrderCommand, error) {
	command := UpdatePortalOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAccessToken(accessToken),
		command.setSaleID(saleID),
		command.setLines(lines),
	); err != nil {
		return UpdatePortalOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePortalOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePortalOrderCommandIsNotConstructed)
}

// AccessToken returns the customer's self-service token.
func (c UpdatePortalOrderCommand) AccessToken() kernel.UUID {
	return c.accessToken
}

// SaleID returns the identifier of the sale being ordered on.
func (c UpdatePortalOrderCommand) SaleID() kernel.UUID {
	return c.saleID
}

// Lines returns the submitted order lines.
func (c UpdatePortalOrderCommand) Lines() []PortalOrderLine {
	return c.lines
}

func (c *UpdatePortalOrderCommand) setAccessToken(accessToken kernel.UUID) error {
	if err := accessToken.Validate(); err != nil {
		return err
	}

	c.accessToken = accessToken
	return nil
}

func (c *UpdatePortalOrderCommand) setSaleID(saleID kernel.UUID) error {
	if err := saleID.Validate(); err != nil {
		return err
	}

	c.saleID = saleID
	return nil
}

func (c *UpdatePortalOrderCommand) setLines(lines []PortalOrderLine) error {
	for _, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return err
		}
		if line.Quantity < 0 {
			return errs.NewValueIsOutOfRangeError("quantity", line.Quantity, 0, "unbounded")
		}
	}

	c.lines = lines
	return nil
}
