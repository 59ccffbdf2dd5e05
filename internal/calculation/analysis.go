package calculation

import (
	"github.com/lifetracker/spending-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// AnalyzeEvents reports, for each calendar event, how many projected years its window covers,
// how many years carry its name, and the spending above base in those named years.
// With overlapping events the named years include the compounded effect of the others.
func AnalyzeEvents(records []domain.YearRecord, calendar domain.EventCalendar, monthlySpending decimal.Decimal) []domain.EventImpact {
	yearlyBase := monthlySpending.Mul(monthsPerYear)
	impacts := make([]domain.EventImpact, 0, calendar.Len())

	for i := 0; i < calendar.Len(); i++ {
		e := calendar.At(i)
		impact := domain.EventImpact{
			Name:          e.Name,
			StartAge:      e.Age,
			EndAge:        e.EndAge(),
			Multiplier:    e.Multiplier,
			ExtraSpending: decimal.Zero,
		}
		for _, r := range records {
			if e.Covers(r.Age) {
				impact.YearsInRange++
			}
			if r.Event == e.Name {
				impact.YearsAttributed++
				impact.ExtraSpending = impact.ExtraSpending.Add(r.YearlySpend.Sub(yearlyBase))
			}
		}
		impacts = append(impacts, impact)
	}

	return impacts
}

// PeakYear returns the most expensive year; the earliest wins ties. Nil for an empty projection.
func PeakYear(records []domain.YearRecord) *domain.YearRecord {
	if len(records) == 0 {
		return nil
	}
	peak := records[0]
	for _, r := range records[1:] {
		if r.YearlySpend.GreaterThan(peak.YearlySpend) {
			peak = r
		}
	}
	return &peak
}
