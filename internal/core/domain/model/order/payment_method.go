package order

import (
	"microshop/internal/pkg/errs"
)

// PaymentMethod identifies how the customer chose to pay for an order.
// The method is recorded on the aggregate; payment authorization itself is
// owned by an external payment processor, which supplies an opaque reference.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an unset payment method.
	// An order carries this value until a payment is assigned.
	PaymentMethodUnknown PaymentMethod = iota

	// PaymentMethodCard is a credit or debit card payment.
	PaymentMethodCard

	// PaymentMethodBlik is a BLIK mobile payment.
	PaymentMethodBlik

	// PaymentMethodTransfer is a bank transfer payment.
	PaymentMethodTransfer
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodCard:     "CARD",
		PaymentMethodBlik:     "BLIK",
		PaymentMethodTransfer: "TRANSFER",
	}
}

// Validate checks if the PaymentMethod value is one of the supported methods.
// PaymentMethodUnknown is invalid: it cannot be assigned to an order.
func (m PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidError("paymentMethod")
	}
	return nil
}

// String returns the wire representation of the payment method.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// PaymentMethodFromString parses a payment method from its wire representation.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, str := range getPaymentMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidError("paymentMethod")
}
