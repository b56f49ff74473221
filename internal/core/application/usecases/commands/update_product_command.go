package commands

import (
	"errors"
	"fmt"

	"microshop/internal/core/domain/model/kernel"
	"microshop/internal/pkg/errs"
	"microshop/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents a request to replace the mutable fields of
// a catalog product.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	id          int64
	name        string
	description string
	price       kernel.Money
	sku         string

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to update a catalog product.
func NewUpdateProductCommand(id int64, name, description string, price kernel.Money, sku string) (UpdateProductCommand, error) {
	cmd := UpdateProductCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setID(id),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setSKU(sku),
	); err != nil {
		return UpdateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ID returns the identity of the product to update.
func (c UpdateProductCommand) ID() int64 {
	return c.id
}

// Name returns the new display name.
func (c UpdateProductCommand) Name() string {
	return c.name
}

// Description returns the new description.
func (c UpdateProductCommand) Description() string {
	return c.description
}

// Price returns the new unit price.
func (c UpdateProductCommand) Price() kernel.Money {
	return c.price
}

// SKU returns the new stock keeping unit.
func (c UpdateProductCommand) SKU() string {
	return c.sku
}

func (c *UpdateProductCommand) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%d is not greater than 0", id))
	}

	c.id = id
	return nil
}

func (c *UpdateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *UpdateProductCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *UpdateProductCommand) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}

	c.sku = sku
	return nil
}
