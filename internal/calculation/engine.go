package calculation

import (
	"context"
	"errors"
	"fmt"

	"github.com/lifetracker/spending-calculator/internal/domain"
	"github.com/lifetracker/spending-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// ErrMissingAge is returned when a profile has neither a current age nor a birth date.
var ErrMissingAge = errors.New("profile needs current_age or birth_date")

// CalculationEngine wraps the pure projection with report assembly and logging.
type CalculationEngine struct {
	Calendar       domain.EventCalendar
	LifeExpectancy int
	Logger         Logger
}

// NewCalculationEngine creates an engine over the default calendar and life expectancy.
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithCalendar(domain.DefaultCalendar(), domain.LifeExpectancy)
}

// NewCalculationEngineWithCalendar creates an engine over a custom calendar and horizon.
func NewCalculationEngineWithCalendar(calendar domain.EventCalendar, lifeExpectancy int) *CalculationEngine {
	return &CalculationEngine{
		Calendar:       calendar,
		LifeExpectancy: lifeExpectancy,
		Logger:         NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Project runs the pure projection with the engine's calendar and horizon.
func (ce *CalculationEngine) Project(monthlySpending decimal.Decimal, currentAge int) []domain.YearRecord {
	return ProjectWith(monthlySpending, currentAge, ce.Calendar, ce.LifeExpectancy)
}

// RunProjection builds a full report for one set of inputs.
func (ce *CalculationEngine) RunProjection(ctx context.Context, monthlySpending decimal.Decimal, currentAge int) (*domain.ProjectionReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ce.Logger.Debugf("projecting monthly=%s age=%d horizon=%d events=%d",
		monthlySpending.StringFixed(2), currentAge, ce.LifeExpectancy, ce.Calendar.Len())

	records := ce.Project(monthlySpending, currentAge)
	if len(records) == 0 {
		switch {
		case !monthlySpending.IsPositive():
			ce.Logger.Warnf("monthly spending %s is not positive; projection is empty", monthlySpending.String())
		case currentAge >= ce.LifeExpectancy:
			ce.Logger.Warnf("age %d is at or beyond life expectancy %d; projection is empty", currentAge, ce.LifeExpectancy)
		}
	}

	report := &domain.ProjectionReport{
		Inputs: domain.ProjectionInputs{
			MonthlySpending: monthlySpending,
			CurrentAge:      currentAge,
			LifeExpectancy:  ce.LifeExpectancy,
		},
		Records:        records,
		TotalSpending:  TotalLifetimeSpending(records),
		PeakYear:       PeakYear(records),
		Context:        CalculateSpendingContext(monthlySpending),
		Events:         ce.Calendar.Events(),
		EventImpacts:   AnalyzeEvents(records, ce.Calendar, monthlySpending),
		LifeStatistics: LifeStatistics(),
		Tips:           MoneyTips(),
	}

	ce.Logger.Infof("projected %d years, lifetime total %s", len(records), report.TotalSpending.String())
	return report, nil
}

// RunConfiguration resolves the profile's age and builds its report.
func (ce *CalculationEngine) RunConfiguration(ctx context.Context, config *domain.Configuration) (*domain.ProjectionReport, error) {
	age, err := ResolveAge(config.Profile)
	if err != nil {
		return nil, fmt.Errorf("resolve age: %w", err)
	}
	return ce.RunProjection(ctx, config.Profile.Monthly(), age)
}

// ResolveAge returns the profile's current age, deriving it from the birth date when needed.
func ResolveAge(profile domain.ProfileInputs) (int, error) {
	if profile.CurrentAge != nil {
		return *profile.CurrentAge, nil
	}
	if profile.BirthDate == "" {
		return 0, ErrMissingAge
	}
	birth, err := dateutil.ParseDate(profile.BirthDate)
	if err != nil {
		return 0, err
	}
	return dateutil.Age(birth, nowFunc()), nil
}
