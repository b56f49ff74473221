package commands_test

import (
	"testing"

	"microshop/internal/core/application/usecases/commands"
	"microshop/internal/core/domain/model/kernel"
	"microshop/internal/core/domain/model/order"
	"microshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayOrderCommand_ValidInput(t *testing.T) {
	orderNumber := kernel.NewOrderNumber()
	cmd, err := commands.NewPayOrderCommand(orderNumber, order.PaymentMethodCard, "ref-123")
	require.NoError(t, err)
	assert.True(t, orderNumber.IsEqual(cmd.OrderNumber()))
	assert.Equal(t, order.PaymentMethodCard, cmd.PaymentMethod())
	assert.Equal(t, "ref-123", cmd.PaymentReference())
}

func TestNewPayOrderCommand_UnknownPaymentMethod(t *testing.T) {
	_, err := commands.NewPayOrderCommand(kernel.NewOrderNumber(), order.PaymentMethodUnknown, "ref-123")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewPayOrderCommand_EmptyPaymentReference(t *testing.T) {
	_, err := commands.NewPayOrderCommand(kernel.NewOrderNumber(), order.PaymentMethodBlik, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewPayOrderCommand_InvalidOrderNumber(t *testing.T) {
	_, err := commands.NewPayOrderCommand(kernel.OrderNumber{}, order.PaymentMethodCard, "ref-123")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrOrderNumberIsNotConstructed)
}
