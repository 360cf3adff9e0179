// Package account contains the Account aggregate: a registered user who
// owns customers, products, and sales, identified by a unique email.
package account

import (
	"errors"
	"strings"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/errs"
)

// ErrAccountIsNotConstructed is returned when an Account instance was not
// created through NewAccount or RestoreAccount.
var ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount or RestoreAccount")

// Account represents a registered user. The password is stored only as a
// bcrypt hash; the aggregate never sees the plaintext.
type Account struct {
	id           kernel.UUID
	email        string
	passwordHash string

	isConstructed bool
}

// NewAccount creates an Account with the given (already hashed) password.
// The email is lowercased so uniqueness checks are case-insensitive.
func NewAccount(id kernel.UUID, email, passwordHash string) (*Account, error) {
	a := &Account{isConstructed: true}

	if err := errors.Join(
		a.setID(id),
		a.setEmail(email),
		a.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAccount reconstructs an Account from persistent storage.
func RestoreAccount(id kernel.UUID, email, passwordHash string) (*Account, error) {
	return NewAccount(id, email, passwordHash)
}

// Validate ensures the Account instance was properly constructed.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// ID returns the account's unique identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// Email returns the account's lowercased email address.
func (a *Account) Email() string {
	return a.email
}

// PasswordHash returns the bcrypt hash of the account's password.
func (a *Account) PasswordHash() string {
	return a.passwordHash
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	a.email = email
	return nil
}

func (a *Account) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	a.passwordHash = passwordHash
	return nil
}
