package commands

import (
	"errors"
	"fmt"

	"microshop/internal/core/domain/model/kernel"
	"microshop/internal/pkg/errs"
	"microshop/internal/pkg/guard"
)

var ErrRemoveItemCommandIsNotConstructed = errors.New(
	"RemoveItemCommand must be created via NewRemoveItemCommand constructor",
)

// RemoveItemCommand represents a request to remove one line item from an order.
type RemoveItemCommand struct { //nolint:recvcheck //using for validation
	orderNumber kernel.OrderNumber
	productID   int64

	guard guard.ConstructorGuard
}

// NewRemoveItemCommand creates a command to remove an item from an order.
func NewRemoveItemCommand(orderNumber kernel.OrderNumber, productID int64) (RemoveItemCommand, error) {
	cmd := RemoveItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setProductID(productID),
	); err != nil {
		return RemoveItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemCommandIsNotConstructed)
}

// OrderNumber returns the natural key of the order to mutate.
func (c RemoveItemCommand) OrderNumber() kernel.OrderNumber {
	return c.orderNumber
}

// ProductID returns the identity of the item to remove.
func (c RemoveItemCommand) ProductID() int64 {
	return c.productID
}

func (c *RemoveItemCommand) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *RemoveItemCommand) setProductID(productID int64) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("productId",
			fmt.Errorf("%d is not greater than 0", productID))
	}

	c.productID = productID
	return nil
}
