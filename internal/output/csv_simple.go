package output

import (
	"bytes"
	"encoding/csv"

	"github.com/lifetracker/spending-calculator/internal/domain"
)

// CSVSummarizer implements the one-row summary CSV output.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.ProjectionReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"MonthlySpending", "CurrentAge", "LifeExpectancy", "YearsProjected", "LifetimeTotal", "AverageYearly", "EventYears", "PeakAge", "PeakYearlySpend", "RetirementMonthlyIncome", "EmergencyFund", "YearlyInvestmentTarget"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	h := AnalyzeReport(report)
	peakAge, peakSpend := "", ""
	if report.PeakYear != nil {
		peakAge = intToString(report.PeakYear.Age)
		peakSpend = report.PeakYear.YearlySpend.StringFixed(0)
	}
	row := []string{
		report.Inputs.MonthlySpending.StringFixed(2),
		intToString(report.Inputs.CurrentAge),
		intToString(report.Inputs.LifeExpectancy),
		intToString(h.Years),
		report.TotalSpending.StringFixed(0),
		h.AverageYearly.StringFixed(0),
		intToString(h.EventYears),
		peakAge,
		peakSpend,
		report.Context.RetirementMonthlyIncome.StringFixed(0),
		report.Context.EmergencyFund.StringFixed(2),
		report.Context.YearlyInvestmentTarget.StringFixed(2),
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
