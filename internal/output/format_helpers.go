package output

import (
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/lifetracker/spending-calculator/internal/domain"
	money "github.com/lifetracker/spending-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as whole US dollars with thousands separators.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatPercentage formats a decimal as a percentage with up to one decimal place.
func FormatPercentage(amount decimal.Decimal) string {
	return amount.Round(1).String() + "%"
}

// FormatNumber formats a whole number with thousands separators.
func FormatNumber(amount decimal.Decimal) string {
	return humanize.Comma(amount.Round(0).IntPart())
}

// FormatStatistic renders a life statistic according to its display format.
func FormatStatistic(s domain.LifeStatistic) string {
	switch s.Format {
	case domain.FormatCurrency:
		return FormatCurrency(s.Value)
	case domain.FormatPercent:
		return FormatPercentage(s.Value)
	default:
		return FormatNumber(s.Value)
	}
}

func intToString(v int) string { return strconv.Itoa(v) }

func boolToString(v bool) string { return strconv.FormatBool(v) }
