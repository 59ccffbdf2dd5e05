package output

import (
	"fmt"

	"github.com/lifetracker/spending-calculator/internal/domain"
	money "github.com/lifetracker/spending-calculator/pkg/decimal"
)

// DefaultAssumptions lists the modeling assumptions rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Spending is held flat in today's dollars (no inflation adjustment)",
	"Overlapping life events multiply their effects",
	"Yearly and cumulative figures are rounded to whole dollars",
}

// GenerateAssumptions creates the assumptions list for a specific report.
func GenerateAssumptions(report *domain.ProjectionReport) []string {
	out := []string{
		fmt.Sprintf("Life expectancy: %d years", report.Inputs.LifeExpectancy),
		fmt.Sprintf("Base spending: %s per month (%s per year)",
			FormatCurrency(report.Inputs.MonthlySpending),
			money.NewMoneyFromDecimal(report.Inputs.MonthlySpending).Annual().Format()),
	}
	for _, e := range report.Events {
		out = append(out, fmt.Sprintf("%s: ages %d-%d at %sx", e.Name, e.Age, e.EndAge()-1, e.Multiplier.String()))
	}
	return append(out, DefaultAssumptions...)
}
