package calculation

import (
	"github.com/lifetracker/spending-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

var monthsPerYear = decimal.NewFromInt(12)

// Project runs ProjectWith over the default life-event calendar and life expectancy.
func Project(monthlySpending decimal.Decimal, currentAge int) []domain.YearRecord {
	return ProjectWith(monthlySpending, currentAge, domain.DefaultCalendar(), domain.LifeExpectancy)
}

// ProjectWith projects year-by-year and cumulative spending from currentAge up to (but not
// including) lifeExpectancy.
//
// Every event covering a year multiplies that year's spending, in calendar order, so
// overlapping multipliers compound. The year is attributed to the last covering event.
// Non-positive spending or currentAge >= lifeExpectancy yields an empty projection.
func ProjectWith(monthlySpending decimal.Decimal, currentAge int, calendar domain.EventCalendar, lifeExpectancy int) []domain.YearRecord {
	if !monthlySpending.IsPositive() || currentAge >= lifeExpectancy {
		return []domain.YearRecord{}
	}

	yearlyBase := monthlySpending.Mul(monthsPerYear)
	cumulative := decimal.Zero
	years := lifeExpectancy - currentAge
	records := make([]domain.YearRecord, 0, years)

	for i := 0; i < years; i++ {
		age := currentAge + i
		yearly := yearlyBase
		event := ""
		isLifeEvent := false

		for j := 0; j < calendar.Len(); j++ {
			e := calendar.At(j)
			if e.Covers(age) {
				yearly = yearly.Mul(e.Multiplier)
				event = e.Name
				isLifeEvent = true
			}
		}

		cumulative = cumulative.Add(yearly)

		records = append(records, domain.YearRecord{
			Index:       i,
			Age:         age,
			Year:        domain.YearLabel(age),
			YearlySpend: yearly.Round(0),
			Amount:      cumulative.Round(0),
			IsLifeEvent: isLifeEvent,
			Event:       event,
			Fill:        Fill(i, isLifeEvent),
		})
	}

	return records
}

// TotalLifetimeSpending returns the cumulative amount of the final year, or zero.
func TotalLifetimeSpending(records []domain.YearRecord) decimal.Decimal {
	if len(records) == 0 {
		return decimal.Zero
	}
	return records[len(records)-1].Amount
}
