package kernel

import (
	"fmt"

	"breakfast/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object representing a non-negative monetary amount.
// It wraps github.com/shopspring/decimal to avoid floating-point drift in
// price and credit arithmetic.
//
// Money is immutable: arithmetic methods return a new Money and never mutate
// the receiver. The zero value is a valid zero amount, so Money can be
// embedded in aggregates without a constructor guard.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns a Money of amount 0.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney creates a Money from a decimal amount.
// Returns an error if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromFloat creates a Money from a float64 amount.
// Returns an error if the amount is negative.
func NewMoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// Amount returns the underlying decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount as a float64, for read models and responses.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String returns the decimal string representation of the amount.
func (m Money) String() string {
	return m.amount.String()
}

// IsZero reports whether the amount is 0.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two Money values for equality of amount.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Add returns the sum of the two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of the two amounts.
// Returns an error if the result would be negative.
func (m Money) Sub(other Money) (Money, error) {
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s - %s is negative", m.amount.String(), other.amount.String()),
		)
	}
	return Money{amount: result}, nil
}

// Min returns the smaller of the two amounts.
func (m Money) Min(other Money) Money {
	if m.amount.LessThan(other.amount) {
		return m
	}
	return other
}

// MulInt returns the amount multiplied by an integer quantity.
func (m Money) MulInt(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}
