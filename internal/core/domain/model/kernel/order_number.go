package kernel

import (
	"fmt"

	"microshop/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrOrderNumberIsNotConstructed indicates that an OrderNumber was not properly
// initialized through one of the constructor functions. This error is returned
// when validating a zero-value OrderNumber.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderNumber must be created via NewOrderNumber or OrderNumberFromString",
)

// OrderNumber is a value object representing the immutable natural key that
// identifies an order externally. A fresh number is a random unique token
// (UUID v4), assigned once at creation and never reused.
//
// The zero value of OrderNumber is invalid and must be constructed using
// NewOrderNumber or OrderNumberFromString. OrderNumber is immutable and
// thread-safe, making it suitable for concurrent use.
type OrderNumber struct {
	value uuid.UUID
}

// NewOrderNumber generates a fresh globally unique order number.
func NewOrderNumber() OrderNumber {
	return OrderNumber{
		value: uuid.New(),
	}
}

// OrderNumberFromString parses an order number from its string representation.
// Returns an error if the string is not a valid order number format.
// This function is typically used when reconstructing orders from persistence
// or when parsing order numbers received over HTTP.
func OrderNumberFromString(s string) (OrderNumber, error) {
	value, err := uuid.Parse(s)
	if err != nil {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("orderNumber",
			fmt.Errorf("%q is not a valid order number: %w", s, err))
	}
	number := OrderNumber{value: value}
	if err = number.Validate(); err != nil {
		return OrderNumber{}, err
	}

	return number, nil
}

// String returns the canonical string representation of the order number.
func (n OrderNumber) String() string {
	return n.value.String()
}

// Value returns the underlying UUID value. It is intended for the persistence
// boundary, where order numbers are stored in a native uuid column.
func (n OrderNumber) Value() uuid.UUID {
	return n.value
}

// IsEqual compares two order numbers for equality.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

// Validate checks if the order number is properly constructed.
// Returns ErrOrderNumberIsNotConstructed for a zero value.
func (n OrderNumber) Validate() error {
	if n.value == uuid.Nil {
		return ErrOrderNumberIsNotConstructed
	}
	return nil
}
