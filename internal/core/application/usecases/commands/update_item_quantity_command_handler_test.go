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

func TestUpdateItemQuantityCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := mustOrder(t,
		mustItem(t, 1, "SKU-001", "10.00", 2),
		mustItem(t, 2, "SKU-002", "5.00", 1),
	)
	cmd, err := commands.NewUpdateItemQuantityCommand(aggregate.OrderNumber(), 1, 3)
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

	h := commands.NewUpdateItemQuantityCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "35.00", updated.TotalAmount.String())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateItemQuantityCommandHandler_Handle_ZeroQuantityRemovesItem(t *testing.T) {
	ctx := t.Context()
	aggregate := mustOrder(t,
		mustItem(t, 1, "SKU-001", "10.00", 2),
		mustItem(t, 2, "SKU-002", "5.00", 1),
	)
	cmd, err := commands.NewUpdateItemQuantityCommand(aggregate.OrderNumber(), 1, 0)
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

	h := commands.NewUpdateItemQuantityCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "5.00", updated.TotalAmount.String())
	assert.Len(t, aggregate.Items(), 1)
}

func TestUpdateItemQuantityCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	aggregate := mustOrder(t, mustItem(t, 1, "SKU-001", "10.00", 2))
	cmd, err := commands.NewUpdateItemQuantityCommand(aggregate.OrderNumber(), 1, 3)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("GetByOrderNumber", mock.Anything, aggregate.OrderNumber()).
		Return(nil, errs.NewObjectNotFoundError("orderNumber", aggregate.OrderNumber())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateItemQuantityCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestUpdateItemQuantityCommandHandler_Handle_PlacedOrderRejected(t *testing.T) {
	ctx := t.Context()
	aggregate := mustPlacedOrder(t, mustItem(t, 1, "SKU-001", "10.00", 2))
	cmd, err := commands.NewUpdateItemQuantityCommand(aggregate.OrderNumber(), 1, 3)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("GetByOrderNumber", mock.Anything, aggregate.OrderNumber()).Return(aggregate, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateItemQuantityCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, order.Placed, aggregate.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}
