package commands

import (
	"errors"

	"breakfast/internal/pkg/guard"
)

var ErrCloseExpiredSalesCommandIsNotConstructed = errors.New(
	"CloseExpiredSalesCommand must be created via NewCloseExpiredSalesCommand constructor",
)

// CloseExpiredSalesCommand triggers automatic closing of every draft sale
// whose order cutoff has passed. This batch operation runs periodically so
// drafts cannot keep accepting orders past their window.
//
// Example:
//
//	cmd := NewCloseExpiredSalesCommand()
//	handler := NewCloseExpiredSalesCommandHandler(uowFactory, sale.DefaultCutoffHours, time.Now)
//
//	// Run periodically from the closing job
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Automatic closing failed: %v", err)
//	}
type CloseExpiredSalesCommand struct {
	guard guard.ConstructorGuard
}

// NewCloseExpiredSalesCommand creates a command to close expired drafts.
// This is a parameterless command that processes all eligible sales.
func NewCloseExpiredSalesCommand() CloseExpiredSalesCommand {
	return CloseExpiredSalesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *CloseExpiredSalesCommand) Validate() error {
	return c.guard.Validate(ErrCloseExpiredSalesCommandIsNotConstructed)
}
