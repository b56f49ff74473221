package product

import (
	"errors"
	"fmt"

	"microshop/internal/core/domain/model/kernel"
	"microshop/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct or RestoreProduct factory methods.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")

// Product is a catalog entry: the read-only source of product identity, SKU,
// and price that orders snapshot at creation time. Later catalog changes never
// retroactively affect existing order items.
//
// The database assigns the numeric identity on insert; a freshly constructed
// product carries a zero id until persisted.
type Product struct {
	id          int64
	name        string
	description string
	price       kernel.Money
	sku         string

	isConstructed bool
}

// NewProduct creates a catalog entry with validation.
// Name, price, and SKU are required; the description is optional.
func NewProduct(name, description string, price kernel.Money, sku string) (*Product, error) {
	p := &Product{
		description:   description,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setName(name),
		p.setPrice(price),
		p.setSKU(sku),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persisted state.
func RestoreProduct(id int64, name, description string, price kernel.Money, sku string) (*Product, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%d is not greater than 0", id))
	}

	p, err := NewProduct(name, description, price, sku)
	if err != nil {
		return nil, err
	}
	p.id = id

	return p, nil
}

// Validate ensures the Product was properly constructed through a factory method.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

// ID returns the database-assigned identity, or zero for an unsaved product.
func (p *Product) ID() int64 {
	return p.id
}

// Name returns the display name of the product.
func (p *Product) Name() string {
	return p.name
}

// Description returns the optional product description.
func (p *Product) Description() string {
	return p.description
}

// Price returns the current catalog price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// SKU returns the unique stock keeping unit.
func (p *Product) SKU() string {
	return p.sku
}

// Update replaces the mutable attributes of the product.
// The entity keeps its identity; all fields are validated before any is changed.
func (p *Product) Update(name, description string, price kernel.Money, sku string) error {
	updated := Product{}
	if err := errors.Join(
		updated.setName(name),
		updated.setPrice(price),
		updated.setSKU(sku),
	); err != nil {
		return err
	}

	p.name = name
	p.description = description
	p.price = price
	p.sku = sku
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Product) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	p.sku = sku
	return nil
}
