package commands

import (
	"errors"
	"fmt"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/errs"
	"breakfast/internal/pkg/guard"
)

var ErrReorderRouteCommandIsNotConstructed = errors.New(
	"ReorderRouteCommand must be created via NewReorderRouteCommand constructor",
)

// ReorderRouteCommand represents a request to change the visiting order of
// an in-progress delivery route.
type ReorderRouteCommand struct { //nolint:recvcheck //using for validation
	saleID           kernel.UUID
	ownerID          kernel.UUID
	orderedCustomers []kernel.UUID

	guard guard.ConstructorGuard
}

// NewReorderRouteCommand creates a command to reorder a delivery route.
// orderedCustomers is the full new visiting order.
func NewReorderRouteCommand(
	saleID, ownerID kernel.UUID,
	orderedCustomers []kernel.UUID,
) (ReorderRouteCommand, error) {
	command := ReorderRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSaleID(saleID),
		command.setOwnerID(ownerID),
		command.setOrderedCustomers(orderedCustomers),
	); err != nil {
		return ReorderRouteCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReorderRouteCommand) Validate() error {
	return c.guard.Validate(ErrReorderRouteCommandIsNotConstructed)
}

// SaleID returns the identifier of the sale whose route is reordered.
func (c ReorderRouteCommand) SaleID() kernel.UUID {
	return c.saleID
}

// OwnerID returns the identifier of the requesting user.
func (c ReorderRouteCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// OrderedCustomers returns the new visiting order.
func (c ReorderRouteCommand) OrderedCustomers() []kernel.UUID {
	return c.orderedCustomers
}

func (c *ReorderRouteCommand) setSaleID(saleID kernel.UUID) error {
	if err := saleID.Validate(); err != nil {
		return err
	}

	c.saleID = saleID
	return nil
}

func (c *ReorderRouteCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *ReorderRouteCommand) setOrderedCustomers(orderedCustomers []kernel.UUID) error {
	if len(orderedCustomers) == 0 {
		return errs.NewValueIsRequiredError("customer order")
	}

	for i, id := range orderedCustomers {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("customer_order[%d]", i), err)
		}
	}

	c.orderedCustomers = orderedCustomers
	return nil
}
