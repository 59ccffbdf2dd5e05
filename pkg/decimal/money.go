package decimal

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// MonthsPerYear converts monthly amounts to yearly ones.
const MonthsPerYear = 12

var monthsPerYear = decimal.NewFromInt(MonthsPerYear)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromInt creates a new Money instance from whole currency units
func NewMoneyFromInt(value int64) Money {
	return Money{decimal.NewFromInt(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString parses an amount such as "1500", "1500.25" or "$1,500.25".
func NewMoneyFromString(value string) (Money, error) {
	s := strings.TrimSpace(value)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Whole rounds to whole currency units, half away from zero.
func (m Money) Whole() Money {
	return Money{m.Decimal.Round(0)}
}

// Annual converts a monthly amount to annual
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(monthsPerYear)}
}

// Mul multiplies by a decimal factor
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// String returns the string representation with two decimals
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders whole US dollars with thousands separators, e.g. "$1,234,567".
func (m Money) Format() string {
	whole := m.Whole().IntPart()
	if whole < 0 {
		return "-$" + humanize.Comma(-whole)
	}
	return "$" + humanize.Comma(whole)
}
