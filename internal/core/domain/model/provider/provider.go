// Package provider contains the Provider aggregate: a supplier the account
// buys breakfast stock from, kept as a contact directory entry.
package provider

import (
	"errors"
	"strings"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/errs"
)

// ErrProviderIsNotConstructed is returned when a Provider instance was not
// created through NewProvider or RestoreProvider.
var ErrProviderIsNotConstructed = errors.New("Provider must be created via NewProvider or RestoreProvider")

// Provider represents a supplier owned by one user. The email is the
// supplier's business contact and is unique per owner.
type Provider struct {
	id      kernel.UUID
	ownerID kernel.UUID
	name    string
	email   string
	phone   string
	address string

	isConstructed bool
}

// NewProvider creates a Provider with the given contact details.
func NewProvider(id, ownerID kernel.UUID, name, email, phone, address string) (*Provider, error) {
	p := &Provider{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setOwnerID(ownerID),
		p.setName(name),
		p.setEmail(email),
	); err != nil {
		return nil, err
	}

	p.phone = phone
	p.address = address
	return p, nil
}

// RestoreProvider reconstructs a Provider from persistent storage.
func RestoreProvider(id, ownerID kernel.UUID, name, email, phone, address string) (*Provider, error) {
	return NewProvider(id, ownerID, name, email, phone, address)
}

// Validate ensures the Provider instance was properly constructed.
func (p *Provider) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProviderIsNotConstructed
	}
	return nil
}

// IsEqual compares two providers by their unique identifiers.
func (p *Provider) IsEqual(other *Provider) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the provider's unique identifier.
func (p *Provider) ID() kernel.UUID {
	return p.id
}

// OwnerID returns the identifier of the user who owns the supplier record.
func (p *Provider) OwnerID() kernel.UUID {
	return p.ownerID
}

// Name returns the supplier's display name.
func (p *Provider) Name() string {
	return p.name
}

// Email returns the supplier's contact email, lowercased.
func (p *Provider) Email() string {
	return p.email
}

// Phone returns the supplier's phone number, possibly empty.
func (p *Provider) Phone() string {
	return p.phone
}

// Address returns the supplier's address, possibly empty.
func (p *Provider) Address() string {
	return p.address
}

// UpdateDetails replaces the supplier's contact details.
func (p *Provider) UpdateDetails(name, email, phone, address string) error {
	if err := errors.Join(
		p.setName(name),
		p.setEmail(email),
	); err != nil {
		return err
	}

	p.phone = phone
	p.address = address
	return nil
}

func (p *Provider) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Provider) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	p.ownerID = ownerID
	return nil
}

func (p *Provider) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Provider) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	p.email = email
	return nil
}
