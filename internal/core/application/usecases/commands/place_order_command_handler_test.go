package commands_test

import (
	"testing"

	"microshop/internal/core/application/usecases/commands"
	"microshop/internal/core/domain/model/order"
	"microshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := mustOrder(t, mustItem(t, 1, "SKU-001", "10.00", 2))
	cmd, err := commands.NewPlaceOrderCommand(aggregate.OrderNumber())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Twice()
	repo.On("GetByOrderNumber", mock.Anything, aggregate.OrderNumber()).Return(aggregate, nil).Once()
	repo.On("Update", mock.Anything, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	placed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Placed, placed.Status)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_AlreadyPlaced(t *testing.T) {
	ctx := t.Context()
	aggregate := mustPlacedOrder(t, mustItem(t, 1, "SKU-001", "10.00", 2))
	cmd, err := commands.NewPlaceOrderCommand(aggregate.OrderNumber())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("GetByOrderNumber", mock.Anything, aggregate.OrderNumber()).Return(aggregate, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	uow.AssertNotCalled(t, "Commit", ctx)
}
