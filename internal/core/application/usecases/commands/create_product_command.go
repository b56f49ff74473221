package commands

import (
	"errors"

	"microshop/internal/core/domain/model/kernel"
	"microshop/internal/pkg/errs"
	"microshop/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to add a product to the catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	name        string
	description string
	price       kernel.Money
	sku         string

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a catalog product.
func NewCreateProductCommand(name, description string, price kernel.Money, sku string) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setSKU(sku),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// Name returns the display name of the new product.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the free-form description of the new product.
func (c CreateProductCommand) Description() string {
	return c.description
}

// Price returns the unit price of the new product.
func (c CreateProductCommand) Price() kernel.Money {
	return c.price
}

// SKU returns the stock keeping unit of the new product.
func (c CreateProductCommand) SKU() string {
	return c.sku
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *CreateProductCommand) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}

	c.sku = sku
	return nil
}
