package sale

import (
	"errors"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through one of the constructor functions.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// ErrQuantityIsInvalid is returned when an item quantity is not positive.
var ErrQuantityIsInvalid = errs.NewValueIsInvalidError("quantity must be greater than 0")

// Item is a (customer, product, quantity) line within a sale.
// Buy and sell prices are captured at the moment the line is created so that
// later product price changes do not rewrite history.
//
// Items belong to the Sale aggregate and are only mutated through it: the
// whole item set is replaced while the sale is draft, and frozen afterwards.
type Item struct {
	id         kernel.UUID
	customerID kernel.UUID
	productID  kernel.UUID
	quantity   int
	buyPrice   kernel.Money
	sellPrice  kernel.Money

	isConstructed bool
}

// NewItem creates a new sale line for the given customer and product,
// capturing the current buy and sell prices.
func NewItem(customerID, productID kernel.UUID, quantity int, buyPrice, sellPrice kernel.Money) (*Item, error) {
	item := &Item{
		id:            kernel.NewUUID(),
		isConstructed: true,
	}

	if err := errors.Join(
		item.setCustomerID(customerID),
		item.setProductID(productID),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	item.buyPrice = buyPrice
	item.sellPrice = sellPrice
	return item, nil
}

// RestoreItem reconstructs an Item from persistent storage.
func RestoreItem(
	id, customerID, productID kernel.UUID,
	quantity int,
	buyPrice, sellPrice kernel.Money,
) (*Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	item, err := NewItem(customerID, productID, quantity, buyPrice, sellPrice)
	if err != nil {
		return nil, err
	}

	item.id = id
	return item, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// CustomerID returns the customer this line belongs to.
func (i *Item) CustomerID() kernel.UUID {
	return i.customerID
}

// ProductID returns the ordered product.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// BuyPrice returns the unit buy price captured at sale time.
func (i *Item) BuyPrice() kernel.Money {
	return i.buyPrice
}

// SellPrice returns the unit sell price captured at sale time.
func (i *Item) SellPrice() kernel.Money {
	return i.sellPrice
}

// Revenue returns sell price times quantity.
func (i *Item) Revenue() kernel.Money {
	return i.sellPrice.MulInt(i.quantity)
}

// Benefit returns (sell - buy) times quantity.
// The subtraction cannot go negative for sanely priced products; a product
// sold below cost yields an error surfaced at read time.
func (i *Item) Benefit() (kernel.Money, error) {
	margin, err := i.sellPrice.Sub(i.buyPrice)
	if err != nil {
		return kernel.Money{}, err
	}
	return margin.MulInt(i.quantity), nil
}

func (i *Item) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	i.customerID = customerID
	return nil
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}
	i.quantity = quantity
	return nil
}
