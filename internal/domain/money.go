package domain

import (
	"github.com/shopspring/decimal"
)

// Money is a fixed-point currency amount with 2 fractional digits.
// All arithmetic goes through decimal.Decimal; rounding happens exactly
// once, at the final multiply of a price calculation, never accumulated
// across steps.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money from a decimal amount.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// MoneyFromString parses a decimal string (e.g. "150.00") into Money.
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{amount: d}, nil
}

// MoneyFromInt creates a Money from a whole-unit integer amount.
func MoneyFromInt(units int64) Money {
	return Money{amount: decimal.NewFromInt(units)}
}

// ZeroMoney is the zero currency amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// MulQuantity multiplies a unit price by an integer quantity and rounds
// half-up to 2 fractional digits. This is the only place a trade total is
// rounded.
func (m Money) MulQuantity(quantity int) Money {
	total := m.amount.Mul(decimal.NewFromInt(int64(quantity)))
	return Money{amount: total.Round(2)}
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// Neg returns -m.
func (m Money) Neg() Money {
	return Money{amount: m.amount.Neg()}
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// IsNegative reports whether m < 0.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsPositive reports whether m > 0.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// Equal reports whether m == other.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal exposes the underlying decimal for database binding.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String renders the amount with exactly 2 fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// MarshalJSON renders Money as a JSON string to avoid float drift on the wire.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON parses a JSON string or bare number into Money.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return err
	}
	m.amount = d
	return nil
}
