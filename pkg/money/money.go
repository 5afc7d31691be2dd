// Package money provides the monetary value object used by the ledger.
//
// Invariants:
//   - Amount is always stored in the smallest currency unit (cents).
//   - A Money value never carries more than two fractional digits.
//   - There is a single currency; arithmetic never needs a currency check.
package money

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Decimals is the number of fractional digits a Money value carries.
const Decimals = 2

var (
	// ErrInvalidAmount is returned when an amount cannot be parsed as a decimal number.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidPrecision is returned when an amount has more fractional digits than Decimals.
	ErrInvalidPrecision = errors.New("amount has more than 2 decimal places")

	// ErrAmountOutOfRange is returned when an amount does not fit in int64 cents.
	ErrAmountOutOfRange = errors.New("amount out of range")
)

var (
	hundred  = decimal.NewFromInt(100)
	maxCents = decimal.NewFromInt(math.MaxInt64)
)

// Money is an exact amount of cents.
type Money struct {
	cents int64
}

// Zero is the zero amount.
var Zero = Money{}

// FromCents builds Money from the smallest unit.
func FromCents(cents int64) Money {
	return Money{cents: cents}
}

// New converts a decimal to Money. It fails when amount has more than two
// fractional digits.
func New(amount decimal.Decimal) (Money, error) {
	if !HasValidPrecision(amount) {
		return Money{}, ErrInvalidPrecision
	}
	cents := amount.Mul(hundred)
	if cents.GreaterThan(maxCents) || cents.LessThan(maxCents.Neg()) {
		return Money{}, ErrAmountOutOfRange
	}
	return FromCents(cents.IntPart()), nil
}

// Must is like New but panics on error. Intended for tests and constants.
func Must(amount string) Money {
	d, err := Parse(amount)
	if err != nil {
		panic(fmt.Sprintf("money.Must(%q): %v", amount, err))
	}
	m, err := New(d)
	if err != nil {
		panic(fmt.Sprintf("money.Must(%q): %v", amount, err))
	}
	return m
}

// Round converts an arbitrary-precision decimal to Money, rounding half-up to cents.
func Round(amount decimal.Decimal) Money {
	// decimal rounds half away from zero, which is half-up for the
	// non-negative totals this is used for.
	return FromCents(amount.Round(Decimals).Mul(hundred).IntPart())
}

// Parse reads a decimal amount from text such as "100", "10.50" or "-3".
func Parse(text string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}
	return d, nil
}

// HasValidPrecision reports whether rounding amount half-up to two
// fractional digits leaves it unchanged.
func HasValidPrecision(amount decimal.Decimal) bool {
	return amount.Round(Decimals).Equal(amount)
}

// Decimal returns the amount as a decimal with two fractional digits.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.cents, -Decimals)
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// AddChecked returns m + other, or ErrAmountOutOfRange when the sum does
// not fit in int64 cents.
func (m Money) AddChecked(other Money) (Money, error) {
	if (other.cents > 0 && m.cents > math.MaxInt64-other.cents) ||
		(other.cents < 0 && m.cents < math.MinInt64-other.cents) {
		return Money{}, fmt.Errorf("%w: %s + %s", ErrAmountOutOfRange, m, other)
	}
	return FromCents(m.cents + other.cents), nil
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

// Neg returns -m.
func (m Money) Neg() Money {
	return Money{cents: -m.cents}
}

// IsPositive reports whether m > 0.
func (m Money) IsPositive() bool { return m.cents > 0 }

// IsZero reports whether m == 0.
func (m Money) IsZero() bool { return m.cents == 0 }

// GreaterThan reports whether m > other.
func (m Money) GreaterThan(other Money) bool { return m.cents > other.cents }

// String formats the amount with exactly two fractional digits, e.g. "50.00".
func (m Money) String() string {
	return m.Decimal().StringFixed(Decimals)
}

// MarshalJSON encodes Money as a JSON number with two fractional digits.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string.
func (m *Money) UnmarshalJSON(data []byte) error {
	var raw json.Number
	if err := json.Unmarshal(data, &raw); err != nil {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidAmount, data)
		}
		raw = json.Number(s)
	}
	d, err := Parse(raw.String())
	if err != nil {
		return err
	}
	parsed, err := New(d)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
