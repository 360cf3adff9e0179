package commands

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"breakfast/internal/core/domain/model/account"
	"breakfast/internal/pkg/errs"
)

// ErrEmailAlreadyRegistered is returned when the registration email is
// already taken by another account.
var ErrEmailAlreadyRegistered = errs.NewConflictError("account", "email already registered")

// RegisterAccountCommandHandler handles the business logic for account registration.
// Hashes the password with bcrypt and persists the new account; a duplicate
// email surfaces as ErrEmailAlreadyRegistered.
type RegisterAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewRegisterAccountCommandHandler creates a handler for account registration.
// Requires an AccountUoWFactory for transactional persistence.
func NewRegisterAccountCommandHandler(uowFactory AccountUoWFactory) RegisterAccountCommandHandler {
	return RegisterAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
// The plaintext password exists only for the duration of hashing; the
// aggregate stores the bcrypt hash.
func (h RegisterAccountCommandHandler) Handle(ctx context.Context, cmd RegisterAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	newAccount, err := account.NewAccount(cmd.AccountID(), cmd.Email(), string(hash))
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AccountRepository().Add(ctx, newAccount); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return ErrEmailAlreadyRegistered
		}
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
