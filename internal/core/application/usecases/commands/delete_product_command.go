package commands

import (
	"errors"
	"fmt"

	"microshop/internal/pkg/errs"
	"microshop/internal/pkg/guard"
)

var ErrDeleteProductCommandIsNotConstructed = errors.New(
	"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
)

// DeleteProductCommand represents a request to remove a product from the catalog.
type DeleteProductCommand struct { //nolint:recvcheck //using for validation
	id int64

	guard guard.ConstructorGuard
}

// NewDeleteProductCommand creates a command to delete a catalog product.
func NewDeleteProductCommand(id int64) (DeleteProductCommand, error) {
	cmd := DeleteProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setID(id); err != nil {
		return DeleteProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

// ID returns the identity of the product to delete.
func (c DeleteProductCommand) ID() int64 {
	return c.id
}

func (c *DeleteProductCommand) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%d is not greater than 0", id))
	}

	c.id = id
	return nil
}
