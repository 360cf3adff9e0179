package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"breakfast/internal/core/application/usecases/commands"
	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/core/domain/model/sale"
)

func TestCloseExpiredSalesCommandHandler_Handle_ClosesAllExpired(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2024, 12, 19, 0, 0, 0, 0, time.UTC)
	ownerID := kernel.NewUUID()

	first, err := sale.NewSale(kernel.NewUUID(), ownerID,
		time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC), nil)
	require.NoError(t, err)
	second, err := sale.NewSale(kernel.NewUUID(), ownerID,
		time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC), nil)
	require.NoError(t, err)

	saleRepo := new(MockSaleRepository)
	uow := new(MockSaleUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SaleRepository").Return(saleRepo).Once(),
		saleRepo.On("GetAllDraftBefore", mock.Anything, now, sale.DefaultCutoffHours).
			Return([]*sale.Sale{first, second}, nil).Once(),
		saleRepo.On("Update", mock.Anything, first).Return(nil).Once(),
		saleRepo.On("Update", mock.Anything, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSaleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCloseExpiredSalesCommandHandler(
		factory, sale.DefaultCutoffHours, func() time.Time { return now })
	cmd := commands.NewCloseExpiredSalesCommand()
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, sale.StatusClosed, first.Status())
	assert.Equal(t, sale.StatusClosed, second.Status())

	saleRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCloseExpiredSalesCommandHandler_Handle_NothingToClose(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2024, 12, 19, 0, 0, 0, 0, time.UTC)

	saleRepo := new(MockSaleRepository)
	uow := new(MockSaleUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SaleRepository").Return(saleRepo).Once(),
		saleRepo.On("GetAllDraftBefore", mock.Anything, now, sale.DefaultCutoffHours).
			Return([]*sale.Sale{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSaleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCloseExpiredSalesCommandHandler(
		factory, sale.DefaultCutoffHours, func() time.Time { return now })
	cmd := commands.NewCloseExpiredSalesCommand()
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
}
