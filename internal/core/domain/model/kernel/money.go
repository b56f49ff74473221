package kernel

import (
	"fmt"

	"microshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created through
// one of the constructor functions.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via NewMoney, MoneyFromString, or ZeroMoney",
)

// Money is a value object representing a non-negative monetary amount with
// exact decimal arithmetic. It is used for item prices and order totals, where
// binary floating point would accumulate rounding errors.
//
// Money is immutable: arithmetic methods return new values. The zero value of
// Money is invalid and must be constructed via NewMoney, MoneyFromString, or
// ZeroMoney.
type Money struct {
	amount        decimal.Decimal
	isConstructed bool
}

// NewMoney creates a Money value from a decimal amount.
// Negative amounts are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount))
	}

	return Money{amount: amount, isConstructed: true}, nil
}

// MoneyFromString parses a Money value from a decimal string such as "10.00".
// Returns an error for malformed or negative input.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%q is not a valid decimal amount: %w", s, err))
	}

	return NewMoney(amount)
}

// ZeroMoney returns a constructed zero amount. It is the identity element for
// Add and the starting value for total recalculation.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, isConstructed: true}
}

// Amount returns the underlying decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), isConstructed: true}
}

// MulQuantity returns the amount multiplied by an item quantity.
func (m Money) MulQuantity(quantity int) Money {
	return Money{
		amount:        m.amount.Mul(decimal.NewFromInt(int64(quantity))),
		isConstructed: true,
	}
}

// IsEqual compares two Money values by amount.
// Amounts that differ only in scale (e.g. "10" and "10.00") are equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the amount rendered with two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Validate checks if the Money value is properly constructed.
// Returns ErrMoneyIsNotConstructed for a zero value.
func (m Money) Validate() error {
	if !m.isConstructed {
		return ErrMoneyIsNotConstructed
	}
	return nil
}
