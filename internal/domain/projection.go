package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// YearRecord is one simulated year of a lifetime spending projection.
type YearRecord struct {
	Index       int             `json:"index"`
	Age         int             `json:"age"`
	Year        string          `json:"year"`
	YearlySpend decimal.Decimal `json:"yearly_spend"` // after event multipliers, whole units
	Amount      decimal.Decimal `json:"amount"`       // cumulative through this year, whole units
	IsLifeEvent bool            `json:"is_life_event"`
	Event       string          `json:"event"`
	Fill        string          `json:"fill"`
}

// YearLabel returns the display label used for a simulated age.
func YearLabel(age int) string {
	return fmt.Sprintf("Age %d", age)
}

// ProjectionInputs are the two scalar inputs a projection is computed from.
type ProjectionInputs struct {
	MonthlySpending decimal.Decimal `json:"monthly_spending"`
	CurrentAge      int             `json:"current_age"`
	LifeExpectancy  int             `json:"life_expectancy"`
}

// SpendingContext holds scalar figures derived from monthly spending alone.
type SpendingContext struct {
	RetirementMonthlyIncome decimal.Decimal `json:"retirement_monthly_income"`
	EmergencyFund           decimal.Decimal `json:"emergency_fund"`
	YearlyInvestmentTarget  decimal.Decimal `json:"yearly_investment_target"`
}

// StatisticFormat selects how a LifeStatistic value is displayed.
type StatisticFormat string

const (
	FormatCurrency StatisticFormat = "currency"
	FormatPercent  StatisticFormat = "percent"
	FormatNumber   StatisticFormat = "number"
)

// LifeStatistic is an illustrative figure shown next to a projection.
type LifeStatistic struct {
	Label       string          `json:"label"`
	Value       decimal.Decimal `json:"value"`
	Format      StatisticFormat `json:"format"`
	Description string          `json:"description"`
}

// EventImpact summarises how one calendar event shows up in a projection.
type EventImpact struct {
	Name            string          `json:"name"`
	StartAge        int             `json:"start_age"`
	EndAge          int             `json:"end_age"`
	Multiplier      decimal.Decimal `json:"multiplier"`
	YearsInRange    int             `json:"years_in_range"`   // projected years the window covers
	YearsAttributed int             `json:"years_attributed"` // years displaying this event's name
	ExtraSpending   decimal.Decimal `json:"extra_spending"`   // above base, over attributed years
}

// ProjectionReport bundles a projection with everything the rendering layers display.
type ProjectionReport struct {
	Inputs         ProjectionInputs `json:"inputs"`
	Records        []YearRecord     `json:"records"`
	TotalSpending  decimal.Decimal  `json:"total_spending"`
	PeakYear       *YearRecord      `json:"peak_year,omitempty"`
	Context        SpendingContext  `json:"context"`
	Events         []LifeEvent      `json:"events"`
	EventImpacts   []EventImpact    `json:"event_impacts"`
	LifeStatistics []LifeStatistic  `json:"life_statistics"`
	Tips           []string         `json:"tips"`
}

// HasProjection reports whether the report contains any simulated years.
func (r *ProjectionReport) HasProjection() bool {
	return r != nil && len(r.Records) > 0
}

// RecordForAge returns the record for a simulated age, if present.
func (r *ProjectionReport) RecordForAge(age int) (YearRecord, bool) {
	if !r.HasProjection() {
		return YearRecord{}, false
	}
	i := age - r.Records[0].Age
	if i < 0 || i >= len(r.Records) {
		return YearRecord{}, false
	}
	return r.Records[i], true
}
