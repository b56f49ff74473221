package commands_test

import (
	"testing"
	"time"

	"microshop/internal/core/application/usecases/commands"
	"microshop/internal/core/domain/model/order"
	"microshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCancelStaleOrdersCommand_NonPositiveTTL(t *testing.T) {
	_, err := commands.NewCancelStaleOrdersCommand(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCancelStaleOrdersCommandHandler_Handle_CancelsAllStale(t *testing.T) {
	ctx := t.Context()
	first := mustOrder(t, mustItem(t, 1, "SKU-001", "10.00", 2))
	second := mustOrder(t, mustItem(t, 2, "SKU-002", "5.00", 1))
	cmd, err := commands.NewCancelStaleOrdersCommand(30 * time.Minute)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Times(3)
	repo.On("GetAllCreatedBefore", mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]*order.Order{first, second}, nil).Once()
	repo.On("Update", mock.Anything, first).Return(nil).Once()
	repo.On("Update", mock.Anything, second).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelStaleOrdersCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 2, cancelled)
	assert.Equal(t, order.Cancelled, first.Status())
	assert.Equal(t, order.Cancelled, second.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelStaleOrdersCommandHandler_Handle_NothingStale(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelStaleOrdersCommand(30 * time.Minute)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("GetAllCreatedBefore", mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]*order.Order{}, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelStaleOrdersCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 0, cancelled)
}
