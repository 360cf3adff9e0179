package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"breakfast/internal/core/application/usecases/commands"
	"breakfast/internal/core/domain/model/customer"
	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/core/domain/model/sale"
	"breakfast/internal/pkg/errs"
)

func TestStartDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	anaID, brunoID := kernel.NewUUID(), kernel.NewUUID()
	target := closedSale(t, ownerID, brunoID, anaID)
	cmd, _ := commands.NewStartDeliveryCommand(target.ID(), ownerID)

	customers := []*customer.Customer{
		namedCustomer(t, brunoID, ownerID, "Bruno", 0),
		namedCustomer(t, anaID, ownerID, "Ana", 0),
	}

	saleRepo := new(MockSaleRepository)
	customerRepo := new(MockCustomerRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SaleRepository").Return(saleRepo).Once(),
		saleRepo.On("GetForOwner", mock.Anything, target.ID(), ownerID).Return(target, nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("GetAllByIDs", mock.Anything, mock.Anything).Return(customers, nil).Once(),
		saleRepo.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartDeliveryCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, sale.StatusInProgress, target.Status())
	require.Len(t, target.Steps(), 2)
	assert.Equal(t, anaID, target.Steps()[0].CustomerID())
	assert.Equal(t, brunoID, target.Steps()[1].CustomerID())
	assert.True(t, target.Steps()[0].IsNext())

	saleRepo.AssertExpectations(t)
	customerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestStartDeliveryCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.StartDeliveryCommand{} // not constructed properly
	factory := new(MockDeliveryUoWFactory)
	h := commands.NewStartDeliveryCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestStartDeliveryCommandHandler_Handle_SaleNotFound(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	saleID := kernel.NewUUID()
	cmd, _ := commands.NewStartDeliveryCommand(saleID, ownerID)

	saleRepo := new(MockSaleRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SaleRepository").Return(saleRepo).Once(),
		saleRepo.On("GetForOwner", mock.Anything, saleID, ownerID).
			Return(nil, errs.NewObjectNotFoundError("sale", saleID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartDeliveryCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestStartDeliveryCommandHandler_Handle_RouteAlreadyExists(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	target := inProgressSale(t, ownerID, customerID)
	cmd, _ := commands.NewStartDeliveryCommand(target.ID(), ownerID)

	customers := []*customer.Customer{namedCustomer(t, customerID, ownerID, "Ana", 0)}

	saleRepo := new(MockSaleRepository)
	customerRepo := new(MockCustomerRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SaleRepository").Return(saleRepo).Once(),
		saleRepo.On("GetForOwner", mock.Anything, target.ID(), ownerID).Return(target, nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("GetAllByIDs", mock.Anything, mock.Anything).Return(customers, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartDeliveryCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	saleRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestStartDeliveryCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	target := closedSale(t, ownerID, customerID)
	cmd, _ := commands.NewStartDeliveryCommand(target.ID(), ownerID)

	customers := []*customer.Customer{namedCustomer(t, customerID, ownerID, "Ana", 0)}

	saleRepo := new(MockSaleRepository)
	customerRepo := new(MockCustomerRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SaleRepository").Return(saleRepo).Once(),
		saleRepo.On("GetForOwner", mock.Anything, target.ID(), ownerID).Return(target, nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("GetAllByIDs", mock.Anything, mock.Anything).Return(customers, nil).Once(),
		saleRepo.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartDeliveryCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}

func TestNewStartDeliveryCommand_InvalidSaleID(t *testing.T) {
	_, err := commands.NewStartDeliveryCommand(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
