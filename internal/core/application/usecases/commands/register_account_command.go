package commands

import (
	"errors"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/errs"
	"breakfast/internal/pkg/guard"
)

var (
	ErrRegisterAccountCommandIsNotConstructed = errors.New(
		"RegisterAccountCommand must be created via NewRegisterAccountCommand constructor",
	)
	// ErrPasswordIsTooShort rejects passwords under the minimum length
	// before they ever reach the hasher.
	ErrPasswordIsTooShort = errs.NewValueIsOutOfRangeError("password length", "hidden", MinPasswordLength, 72)
)

// MinPasswordLength is the minimum accepted password length for registration.
const MinPasswordLength = 8

// RegisterAccountCommand represents a request to register a new user account.
//
// Example:
//
//	cmd, err := NewRegisterAccountCommand(kernel.NewUUID(), "user@example.com", "s3cret-pass")
//	if err != nil {
//	    return fmt.Errorf("invalid registration data: %w", err)
//	}
//
//	handler := NewRegisterAccountCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("registration failed: %w", err)
//	}
type RegisterAccountCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	email     string
	password  string

	guard guard.ConstructorGuard
}

// NewRegisterAccountCommand creates a command to register a new account.
// Validates that the account ID is valid, the email is present, and the
// password meets the minimum length.
func NewRegisterAccountCommand(accountID kernel.UUID, email, password string) (RegisterAccountCommand, error) {
	command := RegisterAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAccountID(accountID),
		command.setEmail(email),
		command.setPassword(password),
	); err != nil {
		return RegisterAccountCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAccountCommandIsNotConstructed)
}

// AccountID returns the unique identifier for the new account.
func (c RegisterAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Email returns the registration email address.
func (c RegisterAccountCommand) Email() string {
	return c.email
}

// Password returns the plaintext password. It is hashed by the handler and
// never persisted.
func (c RegisterAccountCommand) Password() string {
	return c.password
}

func (c *RegisterAccountCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}

func (c *RegisterAccountCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *RegisterAccountCommand) setPassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordIsTooShort
	}

	c.password = password
	return nil
}
