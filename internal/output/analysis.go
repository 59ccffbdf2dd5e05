package output

import (
	"fmt"

	"github.com/lifetracker/spending-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Highlights collects the headline figures shared by the console, CSV and HTML reports.
type Highlights struct {
	Years               int
	EventYears          int
	BaseYears           int
	AverageYearly       decimal.Decimal
	CostliestEvent      string
	CostliestEventExtra decimal.Decimal
}

// AnalyzeReport derives the headline figures from a projection report.
func AnalyzeReport(report *domain.ProjectionReport) Highlights {
	h := Highlights{AverageYearly: decimal.Zero, CostliestEventExtra: decimal.Zero}
	if !report.HasProjection() {
		return h
	}

	h.Years = len(report.Records)
	for _, r := range report.Records {
		if r.IsLifeEvent {
			h.EventYears++
		}
	}
	h.BaseYears = h.Years - h.EventYears
	h.AverageYearly = report.TotalSpending.Div(decimal.NewFromInt(int64(h.Years))).Round(0)

	for _, impact := range report.EventImpacts {
		if impact.YearsAttributed == 0 {
			continue
		}
		if h.CostliestEvent == "" || impact.ExtraSpending.GreaterThan(h.CostliestEventExtra) {
			h.CostliestEvent = impact.Name
			h.CostliestEventExtra = impact.ExtraSpending
		}
	}
	return h
}

// EventMarkers returns one chart marker per calendar event that starts inside the projection.
func EventMarkers(report *domain.ProjectionReport) []ChartMarker {
	if !report.HasProjection() {
		return nil
	}
	start := report.Inputs.CurrentAge
	markers := make([]ChartMarker, 0, len(report.Events))
	for _, e := range report.Events {
		idx := e.Age - start
		if idx < 0 || idx >= len(report.Records) {
			continue
		}
		markers = append(markers, ChartMarker{Index: idx, Label: fmt.Sprintf("%d %s", e.Age, e.Name)})
	}
	return markers
}
