package order

import (
	"errors"
	"fmt"

	"microshop/internal/core/domain/model/kernel"
	"microshop/internal/pkg/errs"
)

// DefaultCurrency is the currency assigned to every order at creation.
// The currency is fixed for the lifetime of the order.
const DefaultCurrency = "PLN"

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods. This ensures all
// orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order is the aggregate root for a customer order. It owns the line items,
// the status state machine, and the derived total, and is the single
// consistency boundary for all of them.
//
// Order follows these invariants:
//   - The total always equals the sum of price times quantity over its items
//   - Items are uniquely keyed by product id within the order
//   - An order in Placed or any later status has at least one item; the last
//     remaining item can never be removed
//   - Items can only be mutated while the order is in Created status
//   - Payment is assigned only in Placed status, and both method and reference
//     must be present before the order can be paid
//   - The status only moves forward along the defined transition graph
//
// The version field is an opaque optimistic concurrency token. The aggregate
// never reads or compares it; the persistence boundary owns compare-and-
// increment semantics.
type Order struct {
	// orderNumber is the immutable natural key, assigned once at creation
	orderNumber kernel.OrderNumber

	// customerID identifies the customer who owns the order
	customerID string

	// status represents the current state in the order lifecycle
	status Status

	// paymentMethod and paymentReference are absent until a payment is
	// assigned; the reference is an opaque token from the payment processor
	paymentMethod    PaymentMethod
	paymentReference string

	// currency is fixed at creation
	currency string

	// totalAmount is derived from the items and never set directly
	totalAmount kernel.Money

	// items are the line items, uniquely keyed by product id
	items []*Item

	// version is the concurrency token read at load time
	version int64

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in Created status from a non-empty item list.
// This is the only way to create a fresh order, ensuring all business
// invariants hold from the start.
//
// Parameters:
//   - orderNumber: freshly generated natural key
//   - customerID: the owning customer (must be non-empty)
//   - items: the initial line items (must contain at least one)
//
// Returns a validation error if the order number is invalid, the customer id
// is empty, the item list is empty, any item is invalid, or two items share a
// product id. The total is recalculated after the items are attached.
func NewOrder(orderNumber kernel.OrderNumber, customerID string, items []*Item) (*Order, error) {
	order := &Order{
		status:        Created,
		currency:      DefaultCurrency,
		totalAmount:   kernel.ZeroMoney(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setOrderNumber(orderNumber),
		order.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := order.addItem(item); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state. It revalidates the
// structural invariants so that corrupted or hand-crafted records are rejected
// at the persistence boundary rather than surfacing later as broken behavior.
func RestoreOrder(
	orderNumber kernel.OrderNumber,
	customerID string,
	status Status,
	paymentMethod PaymentMethod,
	paymentReference string,
	currency string,
	items []*Item,
	version int64,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if currency == "" {
		return nil, errs.NewValueIsRequiredError("currency")
	}
	if status != Created && len(items) == 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("items",
			fmt.Errorf("order in status %s must have at least one item", status))
	}
	if paymentMethod != PaymentMethodUnknown {
		if err := paymentMethod.Validate(); err != nil {
			return nil, err
		}
	}

	order := &Order{
		status:           status,
		paymentMethod:    paymentMethod,
		paymentReference: paymentReference,
		currency:         currency,
		totalAmount:      kernel.ZeroMoney(),
		version:          version,
		isConstructed:    true,
	}

	if err := errors.Join(
		order.setOrderNumber(orderNumber),
		order.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if order.findItem(item.ProductID()) != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("duplicate product %d in order", item.ProductID()))
		}
		order.items = append(order.items, item)
	}
	order.recalculateTotal()

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly instantiating
// the struct, and is called when persisting aggregates.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their natural keys.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.orderNumber.IsEqual(other.orderNumber)
}

// OrderNumber returns the immutable natural key of the order.
func (o *Order) OrderNumber() kernel.OrderNumber {
	return o.orderNumber
}

// CustomerID returns the id of the customer who owns the order.
func (o *Order) CustomerID() string {
	return o.customerID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PaymentMethod returns the assigned payment method.
// Returns PaymentMethodUnknown until a payment is assigned.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentReference returns the opaque reference supplied by the payment
// processor. Empty until a payment is assigned.
func (o *Order) PaymentReference() string {
	return o.paymentReference
}

// Currency returns the currency code fixed at creation.
func (o *Order) Currency() string {
	return o.currency
}

// TotalAmount returns the derived order total.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// Items returns the current line items. The returned slice is a copy; the
// items themselves are owned by the order and must not be mutated by callers.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// Version returns the optimistic concurrency token read at load time.
// The aggregate itself never interprets it.
func (o *Order) Version() int64 {
	return o.version
}

// UpdateItemQuantity changes the quantity of the item matching productID.
//
// Business rules:
//   - Items can only be mutated while the order is in Created status
//   - A quantity of zero or less is equivalent to removing the item
//   - The item must exist in the order
//
// The total is recalculated after the mutation.
func (o *Order) UpdateItemQuantity(productID int64, quantity int) error {
	if !o.status.AllowsItemMutation() {
		return errs.NewInvalidStateError("update item quantity", o.status.String())
	}

	item := o.findItem(productID)
	if item == nil {
		return errs.NewObjectNotFoundError("productId", productID)
	}

	if quantity <= 0 {
		return o.removeItem(item)
	}

	if err := item.setQuantity(quantity); err != nil {
		return err
	}
	o.recalculateTotal()
	return nil
}

// RemoveItem detaches the item matching productID from the order.
//
// Business rules:
//   - Items can only be removed while the order is in Created status
//   - The item must exist in the order
//   - The last remaining item can never be removed
//
// On failure the order keeps its item set and total unchanged.
func (o *Order) RemoveItem(productID int64) error {
	if !o.status.AllowsItemMutation() {
		return errs.NewInvalidStateError("remove item", o.status.String())
	}

	item := o.findItem(productID)
	if item == nil {
		return errs.NewObjectNotFoundError("productId", productID)
	}

	return o.removeItem(item)
}

// Place transitions the order from Created to Placed.
// The order must contain at least one item.
func (o *Order) Place() error {
	if len(o.items) == 0 {
		return errs.NewInvalidStateErrorWithCause("place", o.status.String(),
			errors.New("order must contain at least one item"))
	}

	newStatus, err := o.status.Place()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AssignPayment records the payment method and the opaque reference issued by
// the external payment processor. Payment can only be assigned while the order
// is in Placed status. No uniqueness check is performed on the reference; that
// belongs to the payment processor.
func (o *Order) AssignPayment(method PaymentMethod, reference string) error {
	if o.status != Placed {
		return errs.NewInvalidStateError("assign payment", o.status.String())
	}
	if err := method.Validate(); err != nil {
		return err
	}
	if reference == "" {
		return errs.NewValueIsRequiredError("paymentReference")
	}

	o.paymentMethod = method
	o.paymentReference = reference
	return nil
}

// Pay transitions the order from Placed to Paid.
// Both the payment method and the payment reference must be present.
func (o *Order) Pay() error {
	newStatus, err := o.status.Pay()
	if err != nil {
		return err
	}

	if o.paymentMethod == PaymentMethodUnknown {
		return errs.NewInvalidStateErrorWithCause("pay", o.status.String(),
			errors.New("payment method must be assigned before paying"))
	}
	if o.paymentReference == "" {
		return errs.NewInvalidStateErrorWithCause("pay", o.status.String(),
			errors.New("payment reference is missing"))
	}

	o.status = newStatus
	return nil
}

// Cancel transitions the order to Cancelled.
// Shipped, Delivered, and already Cancelled orders cannot be cancelled.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// addItem attaches a line item during construction. Items are uniquely keyed
// by product id within one order; attaching a duplicate fails.
func (o *Order) addItem(item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	if o.findItem(item.ProductID()) != nil {
		return errs.NewValueIsInvalidErrorWithCause("items",
			fmt.Errorf("product %d is already in the order", item.ProductID()))
	}

	o.items = append(o.items, item)
	o.recalculateTotal()
	return nil
}

// removeItem detaches an item, enforcing the at-least-one-item invariant,
// and recalculates the total. Status has already been checked by the caller.
func (o *Order) removeItem(item *Item) error {
	if len(o.items) <= 1 {
		return errs.NewInvalidStateErrorWithCause("remove item", o.status.String(),
			errors.New("order must have at least one item"))
	}

	for idx, current := range o.items {
		if current == item {
			o.items = append(o.items[:idx], o.items[idx+1:]...)
			break
		}
	}
	o.recalculateTotal()
	return nil
}

// findItem returns the item matching productID, or nil.
func (o *Order) findItem(productID int64) *Item {
	for _, item := range o.items {
		if item.ProductID() == productID {
			return item
		}
	}
	return nil
}

// recalculateTotal derives the total from the current items.
// Invoked after every item mutation, never directly by callers.
func (o *Order) recalculateTotal() {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	o.totalAmount = total
}

func (o *Order) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerId")
	}
	o.customerID = customerID
	return nil
}
