package order

import (
	"errors"
	"fmt"

	"microshop/internal/core/domain/model/kernel"
	"microshop/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line item snapshot owned by exactly one Order. Product identity,
// SKU, and unit price are captured at add-time from the catalog and never
// change afterwards: later catalog changes do not retroactively affect an
// existing item, and quantity changes do not re-price.
//
// Item follows these invariants:
//   - Product id is positive and the SKU is non-empty
//   - Unit price is non-negative and immutable
//   - Quantity is positive; it is mutated only by the owning Order, and only
//     while the Order is in Created status
type Item struct {
	productID int64
	sku       string
	price     kernel.Money
	quantity  int

	isConstructed bool
}

// NewItem creates a line item snapshot with validation. This is the only way
// to create a valid Item.
func NewItem(productID int64, sku string, price kernel.Money, quantity int) (*Item, error) {
	item := &Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setSKU(sku),
		item.setPrice(price),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}

	return nil
}

// ProductID returns the identity of the product this item snapshots.
func (i *Item) ProductID() int64 {
	return i.productID
}

// SKU returns the stock keeping unit captured at add-time.
func (i *Item) SKU() string {
	return i.sku
}

// Price returns the unit price captured at add-time.
func (i *Item) Price() kernel.Money {
	return i.price
}

// Quantity returns the current quantity of the item.
func (i *Item) Quantity() int {
	return i.quantity
}

// Subtotal returns price multiplied by quantity.
func (i *Item) Subtotal() kernel.Money {
	return i.price.MulQuantity(i.quantity)
}

func (i *Item) setProductID(productID int64) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("productId",
			fmt.Errorf("%d is not greater than 0", productID))
	}
	i.productID = productID
	return nil
}

func (i *Item) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	i.sku = sku
	return nil
}

func (i *Item) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.price = price
	return nil
}

// setQuantity enforces the positive-quantity invariant. Quantity mutation goes
// through the owning Order, which treats non-positive values as removal before
// ever reaching this setter.
func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
