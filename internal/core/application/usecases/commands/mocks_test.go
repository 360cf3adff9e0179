package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"breakfast/internal/core/application/usecases/commands"
	"breakfast/internal/core/domain/model/account"
	"breakfast/internal/core/domain/model/customer"
	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/core/domain/model/product"
	"breakfast/internal/core/domain/model/sale"
	"breakfast/internal/core/ports"
)

type MockSaleRepository struct{ mock.Mock }

func (m *MockSaleRepository) Add(ctx context.Context, s *sale.Sale) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSaleRepository) Update(ctx context.Context, s *sale.Sale) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSaleRepository) Get(ctx context.Context, id kernel.UUID) (*sale.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sale.Sale), args.Error(1)
}

func (m *MockSaleRepository) GetForOwner(ctx context.Context, id, ownerID kernel.UUID) (*sale.Sale, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sale.Sale), args.Error(1)
}

func (m *MockSaleRepository) GetAllDraftBefore(
	ctx context.Context, cutoff time.Time, cutoffHours int,
) ([]*sale.Sale, error) {
	args := m.Called(ctx, cutoff, cutoffHours)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sale.Sale), args.Error(1)
}

func (m *MockSaleRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetForOwner(
	ctx context.Context, id, ownerID kernel.UUID,
) (*customer.Customer, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByAccessToken(
	ctx context.Context, token kernel.UUID,
) (*customer.Customer, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetAllByIDs(
	ctx context.Context, ids []kernel.UUID,
) ([]*customer.Customer, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*customer.Customer), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetForOwner(
	ctx context.Context, id, ownerID kernel.UUID,
) (*product.Product, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetAllByIDs(
	ctx context.Context, ids []kernel.UUID,
) ([]*product.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Add(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccountRepository) Get(_ context.Context, _ kernel.UUID) (*account.Account, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockAccountRepository) GetByEmail(_ context.Context, _ string) (*account.Account, error) {
	return nil, errors.New("not implemented in mock")
}

type MockSaleUoW struct{ mock.Mock }

func (m *MockSaleUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSaleUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSaleUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSaleUoW) SaleRepository() ports.SaleRepository {
	args := m.Called()
	return args.Get(0).(ports.SaleRepository)
}

type MockSaleUoWFactory struct{ mock.Mock }

func (m *MockSaleUoWFactory) Create() commands.SaleUoW {
	args := m.Called()
	return args.Get(0).(commands.SaleUoW)
}

type MockDeliveryUoW struct{ mock.Mock }

func (m *MockDeliveryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) SaleRepository() ports.SaleRepository {
	args := m.Called()
	return args.Get(0).(ports.SaleRepository)
}

func (m *MockDeliveryUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockSaleEditingUoW struct{ mock.Mock }

func (m *MockSaleEditingUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSaleEditingUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSaleEditingUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSaleEditingUoW) SaleRepository() ports.SaleRepository {
	args := m.Called()
	return args.Get(0).(ports.SaleRepository)
}

func (m *MockSaleEditingUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockSaleEditingUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockSaleEditingUoWFactory struct{ mock.Mock }

func (m *MockSaleEditingUoWFactory) Create() commands.SaleEditingUoW {
	args := m.Called()
	return args.Get(0).(commands.SaleEditingUoW)
}

type MockAccountUoW struct{ mock.Mock }

func (m *MockAccountUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAccountUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAccountUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAccountUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

type MockAccountUoWFactory struct{ mock.Mock }

func (m *MockAccountUoWFactory) Create() commands.AccountUoW {
	args := m.Called()
	return args.Get(0).(commands.AccountUoW)
}

func mustMoney(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromFloat(amount)
	require.NoError(t, err)
	return m
}

// closedSale builds a closed sale with one item per customer, priced at 10.
func closedSale(t *testing.T, ownerID kernel.UUID, customerIDs ...kernel.UUID) *sale.Sale {
	t.Helper()

	items := make([]*sale.Item, 0, len(customerIDs))
	for _, customerID := range customerIDs {
		item, err := sale.NewItem(customerID, kernel.NewUUID(), 1, mustMoney(t, 1), mustMoney(t, 10))
		require.NoError(t, err)
		items = append(items, item)
	}

	s, err := sale.NewSale(kernel.NewUUID(), ownerID,
		time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC), items)
	require.NoError(t, err)
	require.NoError(t, s.Close())
	return s
}

// inProgressSale builds a sale mid-delivery with the customers in the given order.
func inProgressSale(t *testing.T, ownerID kernel.UUID, customerIDs ...kernel.UUID) *sale.Sale {
	t.Helper()

	s := closedSale(t, ownerID, customerIDs...)
	require.NoError(t, s.StartDelivery(customerIDs))
	return s
}

// namedCustomer builds a customer with the given name and credit balance.
func namedCustomer(t *testing.T, id, ownerID kernel.UUID, name string, credit float64) *customer.Customer {
	t.Helper()

	c, err := customer.RestoreCustomer(id, ownerID, name, "", "", "", mustMoney(t, credit), kernel.NewUUID())
	require.NoError(t, err)
	return c
}
