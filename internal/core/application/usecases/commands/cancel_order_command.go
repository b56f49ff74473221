package commands

import (
	"errors"

	"microshop/internal/core/domain/model/kernel"
	"microshop/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a request to cancel an order.
// Cancellation is allowed until the order is shipped.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderNumber kernel.OrderNumber

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
func NewCancelOrderCommand(orderNumber kernel.OrderNumber) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderNumber(orderNumber); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderNumber returns the natural key of the order to cancel.
func (c CancelOrderCommand) OrderNumber() kernel.OrderNumber {
	return c.orderNumber
}

func (c *CancelOrderCommand) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}
