package tui

import (
	"strconv"
	"strings"

	money "github.com/lifetracker/spending-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Age bounds for the interactive age field.
const (
	MinAge = 18
	MaxAge = 80
)

// ParseMonthly reads the monthly spending field. Anything that is not a number counts as zero.
func ParseMonthly(s string) decimal.Decimal {
	m, err := money.NewMoneyFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return m.Decimal
}

// ParseAge reads the age field, treating non-numbers as zero and clamping to [MinAge, MaxAge].
func ParseAge(s string) int {
	age, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		age = 0
	}
	return min(MaxAge, max(MinAge, age))
}

// stepToward moves current a quarter of the way to target, snapping once within a dollar.
func stepToward(current, target decimal.Decimal) decimal.Decimal {
	diff := target.Sub(current)
	if diff.Abs().LessThanOrEqual(decimal.NewFromInt(1)) {
		return target
	}
	step := diff.Div(decimal.NewFromInt(4)).Round(0)
	if step.IsZero() {
		return target
	}
	return current.Add(step)
}
