// Package money provides a fixed-precision currency type built on
// shopspring/decimal so monetary values are never represented as binary
// floating point.
package money

import (
	"github.com/shopspring/decimal"
)

// Money wraps decimal.Decimal for currency values. All comparisons and
// externally-emitted numbers round to cents with banker's rounding.
type Money struct {
	decimal.Decimal
}

// Zero is the additive identity.
func Zero() Money {
	return Money{decimal.Zero}
}

// New builds a Money from a float64. Prefer NewFromString when the value
// originates as text to avoid binary floating point drift.
func New(v float64) Money {
	return Money{decimal.NewFromFloat(v)}
}

// NewFromInt builds a Money from an integer number of whole dollars.
func NewFromInt(v int64) Money {
	return Money{decimal.NewFromInt(v)}
}

// NewFromDecimal wraps an existing decimal.Decimal.
func NewFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewFromString parses a decimal string into Money.
func NewFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round returns m rounded to 2 decimal places using banker's rounding
// (round-half-to-even), as required for every externally-emitted figure.
func (m Money) Round() Money {
	return Money{m.Decimal.RoundBank(2)}
}

// Annual converts a monthly amount to an annual amount.
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(12))}
}

// Monthly converts an annual amount to a monthly amount.
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(decimal.NewFromInt(12))}
}

// ApplyRate multiplies m by a decimal rate (e.g. 0.025 for 2.5%).
func (m Money) ApplyRate(rate decimal.Decimal) Money {
	return Money{m.Decimal.Mul(rate)}
}

// Add returns m + o.
func (m Money) Add(o Money) Money {
	return Money{m.Decimal.Add(o.Decimal)}
}

// Sub returns m - o.
func (m Money) Sub(o Money) Money {
	return Money{m.Decimal.Sub(o.Decimal)}
}

// Mul returns m * factor.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// Div returns m / divisor.
func (m Money) Div(divisor decimal.Decimal) Money {
	return Money{m.Decimal.Div(divisor)}
}

// Neg returns -m.
func (m Money) Neg() Money {
	return Money{m.Decimal.Neg()}
}

// GreaterThan reports whether m > o.
func (m Money) GreaterThan(o Money) bool { return m.Decimal.GreaterThan(o.Decimal) }

// GreaterThanOrEqual reports whether m >= o.
func (m Money) GreaterThanOrEqual(o Money) bool { return m.Decimal.GreaterThanOrEqual(o.Decimal) }

// LessThan reports whether m < o.
func (m Money) LessThan(o Money) bool { return m.Decimal.LessThan(o.Decimal) }

// LessThanOrEqual reports whether m <= o.
func (m Money) LessThanOrEqual(o Money) bool { return m.Decimal.LessThanOrEqual(o.Decimal) }

// Equal reports whether m == o.
func (m Money) Equal(o Money) bool { return m.Decimal.Equal(o.Decimal) }

// IsZero reports whether m == 0.
func (m Money) IsZero() bool { return m.Decimal.IsZero() }

// IsPositive reports whether m > 0.
func (m Money) IsPositive() bool { return m.Decimal.IsPositive() }

// IsNegative reports whether m < 0.
func (m Money) IsNegative() bool { return m.Decimal.IsNegative() }

// ClampNonNegative returns m, or Zero if m is negative. Used after every
// balance mutation since TSP sub-pot balances may never go negative.
func (m Money) ClampNonNegative() Money {
	if m.IsNegative() {
		return Zero()
	}
	return m
}

// Min returns the smaller of a and b.
func Min(a, b Money) Money {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b Money) Money {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// Sum adds all values together, returning Zero for an empty slice.
func Sum(values ...Money) Money {
	total := Zero()
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// String renders m to two decimal places.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders m with a leading dollar sign, e.g. "$1,234.56" style
// grouping is left to callers that need it; this returns the plain form.
func (m Money) Format() string {
	return "$" + m.String()
}
