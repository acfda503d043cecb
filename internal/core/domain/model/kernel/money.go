package kernel

import (
	"fmt"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places carried by every monetary value.
const MoneyScale = 2

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly
// initialized Money. Money must be created via NewMoney, MoneyFromString,
// or ZeroMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, MoneyFromString, or ZeroMoney constructors")

// Money represents a non-negative monetary amount with a fixed scale of two
// decimal places. Money is an immutable value object; arithmetic is exact
// (no binary floating point is involved).
//
// The zero value of Money is invalid and will fail validation - use the
// constructors, including ZeroMoney for an explicit 0.00.
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money from a decimal amount.
// The amount must be non-negative and must not carry more than two decimal places.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount))
	}
	if amount.Exponent() < -MoneyScale {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s has more than %d decimal places", amount, MoneyScale))
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MoneyFromString parses a Money from its decimal string representation,
// e.g. "18.00". Used when reconstructing values from persistence or transport.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns a properly constructed 0.00 amount.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate checks if the Money was properly constructed using a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Add returns the exact sum of two amounts.
func (m Money) Add(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}

	return Money{
		amount: m.amount.Add(other.amount),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// IsZero reports whether the amount equals 0.00.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts for numeric equality (2.5 equals 2.50).
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the amount formatted with exactly two decimal places, e.g. "18.00".
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}
