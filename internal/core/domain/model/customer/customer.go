// Package customer contains the Customer aggregate: a person receiving
// breakfast deliveries, together with the store-credit balance that delivery
// completion draws on and step resets restore.
package customer

import (
	"errors"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer")

// Customer represents a delivery recipient owned by one user.
//
// The credit balance never goes negative: deductions are capped by
// ApplicableCredit before they reach DeductCredit, and DeductCredit rejects
// amounts above the balance outright.
type Customer struct {
	id            kernel.UUID
	ownerID       kernel.UUID
	name          string
	phone         string
	address       string
	notes         string
	creditBalance kernel.Money
	accessToken   kernel.UUID

	isConstructed bool
}

// NewCustomer creates a Customer with a zero credit balance and a fresh
// access token for the self-service ordering page.
//
// Parameters:
//   - id: Unique identifier (must be a valid UUID)
//   - ownerID: The owning user's identifier (must be a valid UUID)
//   - name: Display name, required
//   - phone, address, notes: Optional contact details
func NewCustomer(id, ownerID kernel.UUID, name, phone, address, notes string) (*Customer, error) {
	c := &Customer{
		creditBalance: kernel.ZeroMoney(),
		accessToken:   kernel.NewUUID(),
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setOwnerID(ownerID),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	c.phone = phone
	c.address = address
	c.notes = notes
	return c, nil
}

// RestoreCustomer reconstructs a Customer from persistent storage.
func RestoreCustomer(
	id, ownerID kernel.UUID,
	name, phone, address, notes string,
	creditBalance kernel.Money,
	accessToken kernel.UUID,
) (*Customer, error) {
	c, err := NewCustomer(id, ownerID, name, phone, address, notes)
	if err != nil {
		return nil, err
	}

	if err = accessToken.Validate(); err != nil {
		return nil, err
	}

	c.creditBalance = creditBalance
	c.accessToken = accessToken
	return c, nil
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// OwnerID returns the identifier of the user who owns the customer record.
func (c *Customer) OwnerID() kernel.UUID {
	return c.ownerID
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Phone returns the customer's phone number, possibly empty.
func (c *Customer) Phone() string {
	return c.phone
}

// Address returns the customer's delivery address, possibly empty.
func (c *Customer) Address() string {
	return c.address
}

// Notes returns free-form notes about the customer, possibly empty.
func (c *Customer) Notes() string {
	return c.notes
}

// CreditBalance returns the customer's current store-credit balance.
func (c *Customer) CreditBalance() kernel.Money {
	return c.creditBalance
}

// AccessToken returns the opaque token that grants access to the customer's
// self-service ordering page. Anyone holding the token can view and edit
// this customer's orders, so it must only be shared with the customer.
func (c *Customer) AccessToken() kernel.UUID {
	return c.accessToken
}

// RotateAccessToken replaces the access token, invalidating any previously
// shared ordering link.
func (c *Customer) RotateAccessToken() {
	c.accessToken = kernel.NewUUID()
}

// UpdateDetails replaces the customer's contact details.
func (c *Customer) UpdateDetails(name, phone, address, notes string) error {
	if err := c.setName(name); err != nil {
		return err
	}

	c.phone = phone
	c.address = address
	c.notes = notes
	return nil
}

// ApplicableCredit returns how much of the balance can offset the given
// total: the smaller of the two, never more than either.
func (c *Customer) ApplicableCredit(total kernel.Money) kernel.Money {
	return c.creditBalance.Min(total)
}

// DeductCredit lowers the balance by the given amount. Amounts above the
// current balance are rejected so the balance never goes negative.
func (c *Customer) DeductCredit(amount kernel.Money) error {
	newBalance, err := c.creditBalance.Sub(amount)
	if err != nil {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"credit deduction", amount.String(), "0", c.creditBalance.String(), err,
		)
	}

	c.creditBalance = newBalance
	return nil
}

// AddCredit raises the balance by the given amount. Used when a completed
// delivery step is reset and its applied credit returns to the customer.
func (c *Customer) AddCredit(amount kernel.Money) {
	c.creditBalance = c.creditBalance.Add(amount)
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	c.ownerID = ownerID
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
