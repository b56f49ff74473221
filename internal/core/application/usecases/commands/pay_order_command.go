package commands

import (
	"errors"

	"microshop/internal/core/domain/model/kernel"
	"microshop/internal/core/domain/model/order"
	"microshop/internal/pkg/errs"
	"microshop/internal/pkg/guard"
)

var ErrPayOrderCommandIsNotConstructed = errors.New(
	"PayOrderCommand must be created via NewPayOrderCommand constructor",
)

// PayOrderCommand represents a request to pay a placed order. Carries the
// payment method and the external payment reference; both are assigned to the
// order and the payment is confirmed in the same transaction.
type PayOrderCommand struct { //nolint:recvcheck //using for validation
	orderNumber      kernel.OrderNumber
	paymentMethod    order.PaymentMethod
	paymentReference string

	guard guard.ConstructorGuard
}

// NewPayOrderCommand creates a command to pay an order.
func NewPayOrderCommand(
	orderNumber kernel.OrderNumber,
	paymentMethod order.PaymentMethod,
	paymentReference string,
) (PayOrderCommand, error) {
	cmd := PayOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setPaymentReference(paymentReference),
	); err != nil {
		return PayOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PayOrderCommand) Validate() error {
	return c.guard.Validate(ErrPayOrderCommandIsNotConstructed)
}

// OrderNumber returns the natural key of the order to pay.
func (c PayOrderCommand) OrderNumber() kernel.OrderNumber {
	return c.orderNumber
}

// PaymentMethod returns the method used to settle the order.
func (c PayOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// PaymentReference returns the external payment identifier.
func (c PayOrderCommand) PaymentReference() string {
	return c.paymentReference
}

func (c *PayOrderCommand) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *PayOrderCommand) setPaymentMethod(paymentMethod order.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}

	c.paymentMethod = paymentMethod
	return nil
}

func (c *PayOrderCommand) setPaymentReference(paymentReference string) error {
	if paymentReference == "" {
		return errs.NewValueIsRequiredError("paymentReference")
	}

	c.paymentReference = paymentReference
	return nil
}
