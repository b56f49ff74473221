package commands

import (
	"errors"

	"microshop/internal/core/domain/model/kernel"
	"microshop/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a request to place a created order,
// freezing its item list.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderNumber kernel.OrderNumber

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order.
func NewPlaceOrderCommand(orderNumber kernel.OrderNumber) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderNumber(orderNumber); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderNumber returns the natural key of the order to place.
func (c PlaceOrderCommand) OrderNumber() kernel.OrderNumber {
	return c.orderNumber
}

func (c *PlaceOrderCommand) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}
