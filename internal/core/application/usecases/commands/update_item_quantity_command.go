package commands

import (
	"errors"
	"fmt"

	"microshop/internal/core/domain/model/kernel"
	"microshop/internal/pkg/errs"
	"microshop/internal/pkg/guard"
)

var ErrUpdateItemQuantityCommandIsNotConstructed = errors.New(
	"UpdateItemQuantityCommand must be created via NewUpdateItemQuantityCommand constructor",
)

// UpdateItemQuantityCommand represents a request to change the quantity of one
// line item in an order. A quantity of zero or less removes the item; the
// aggregate enforces that the last remaining item is never removable.
type UpdateItemQuantityCommand struct { //nolint:recvcheck //using for validation
	orderNumber kernel.OrderNumber
	productID   int64
	quantity    int

	guard guard.ConstructorGuard
}

// NewUpdateItemQuantityCommand creates a command to change an item quantity.
// The quantity is intentionally unrestricted: non-positive values carry
// removal semantics and are resolved by the aggregate.
func NewUpdateItemQuantityCommand(
	orderNumber kernel.OrderNumber,
	productID int64,
	quantity int,
) (UpdateItemQuantityCommand, error) {
	cmd := UpdateItemQuantityCommand{
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setProductID(productID),
	); err != nil {
		return UpdateItemQuantityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemQuantityCommandIsNotConstructed)
}

// OrderNumber returns the natural key of the order to mutate.
func (c UpdateItemQuantityCommand) OrderNumber() kernel.OrderNumber {
	return c.orderNumber
}

// ProductID returns the identity of the item to change.
func (c UpdateItemQuantityCommand) ProductID() int64 {
	return c.productID
}

// Quantity returns the requested quantity. Zero or less means removal.
func (c UpdateItemQuantityCommand) Quantity() int {
	return c.quantity
}

func (c *UpdateItemQuantityCommand) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *UpdateItemQuantityCommand) setProductID(productID int64) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("productId",
			fmt.Errorf("%d is not greater than 0", productID))
	}

	c.productID = productID
	return nil
}
