package commands

import (
	"errors"

	"microshop/internal/core/domain/model/order"
	"microshop/internal/pkg/errs"
	"microshop/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to compose a new customer order from
// a non-empty list of line item snapshots. The items carry the catalog price
// captured by the caller; the command never re-queries the catalog.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("10.00")
//	item, _ := order.NewItem(1, "SKU-001", price, 2)
//	cmd, err := NewCreateOrderCommand("customer-1", []*order.Item{item})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID string
	items      []*order.Item

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to compose a new order.
// Validates that the customer id is non-empty, the item list is non-empty,
// and every item was properly constructed.
func NewCreateOrderCommand(customerID string, items []*order.Item) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomerID(customerID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the id of the customer placing the order.
func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

// Items returns the line item snapshots for the new order.
func (c CreateOrderCommand) Items() []*order.Item {
	return c.items
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerId")
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []*order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
