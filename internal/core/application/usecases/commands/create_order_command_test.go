package commands_test

import (
	"testing"

	"microshop/internal/core/application/usecases/commands"
	"microshop/internal/core/domain/model/order"
	"microshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	items := []*order.Item{mustItem(t, 1, "SKU-001", "10.00", 2)}
	cmd, err := commands.NewCreateOrderCommand("customer-1", items)
	require.NoError(t, err)
	assert.Equal(t, "customer-1", cmd.CustomerID())
	assert.Len(t, cmd.Items(), 1)
	require.NoError(t, cmd.Validate())
}

func TestNewCreateOrderCommand_EmptyCustomerID(t *testing.T) {
	items := []*order.Item{mustItem(t, 1, "SKU-001", "10.00", 2)}
	_, err := commands.NewCreateOrderCommand("", items)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_NoItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("customer-1", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_UnconstructedItem(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("customer-1", []*order.Item{{}})
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrItemIsNotConstructed)
}

func TestCreateOrderCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.CreateOrderCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
