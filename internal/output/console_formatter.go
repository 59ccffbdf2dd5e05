package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/lifetracker/spending-calculator/internal/domain"
)

const emptyProjectionMessage = "Enter a monthly spending above $0 and an age below %d to see a projection."

// ConsoleFormatter renders the full styled terminal report.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer
	h := AnalyzeReport(report)

	fmt.Fprintln(&buf, RenderTitle("LIFETIME SPENDING PROJECTION"))
	fmt.Fprintln(&buf)

	summary := Table{
		Title:   "Summary",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Monthly spending", FormatCurrency(report.Inputs.MonthlySpending)},
			{"Current age", intToString(report.Inputs.CurrentAge)},
			{"Years projected", intToString(h.Years)},
			{"Lifetime total", FormatCurrency(report.TotalSpending)},
		},
	}
	if !report.HasProjection() {
		fmt.Fprint(&buf, RenderTable(summary))
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "  "+emptyProjectionMessage+"\n", report.Inputs.LifeExpectancy)
		return buf.Bytes(), nil
	}
	summary.Rows = append(summary.Rows,
		[]string{"Average per year", FormatCurrency(h.AverageYearly)},
		[]string{"Life-event years", fmt.Sprintf("%d of %d", h.EventYears, h.Years)},
	)
	if report.PeakYear != nil {
		summary.Rows = append(summary.Rows, []string{"Most expensive year",
			fmt.Sprintf("%s (%s)", report.PeakYear.Year, FormatCurrency(report.PeakYear.YearlySpend))})
	}
	fmt.Fprint(&buf, RenderTable(summary))
	fmt.Fprintln(&buf)

	amounts := make([]float64, len(report.Records))
	events := make([]bool, len(report.Records))
	for i, r := range report.Records {
		amounts[i] = r.Amount.InexactFloat64()
		events[i] = r.IsLifeEvent
	}
	fmt.Fprintln(&buf, "  "+RenderHeading("Cumulative spending by age"))
	fmt.Fprintln(&buf, BarChart(amounts, events, EventMarkers(report), 76, 12))
	fmt.Fprintln(&buf)

	years := Table{Title: "Year by year", Headers: []string{"Age", "This year", "Total", "Event"}}
	for _, r := range report.Records {
		years.Rows = append(years.Rows, []string{r.Year, FormatCurrency(r.YearlySpend), FormatCurrency(r.Amount), r.Event})
	}
	fmt.Fprint(&buf, RenderTable(years))
	fmt.Fprintln(&buf)

	impacts := Table{Title: "Life events", Headers: []string{"Event", "Ages", "Multiplier", "Years", "Extra spending"}}
	for _, e := range report.EventImpacts {
		impacts.Rows = append(impacts.Rows, []string{
			e.Name,
			fmt.Sprintf("%d-%d", e.StartAge, e.EndAge-1),
			e.Multiplier.String() + "x",
			intToString(e.YearsAttributed),
			FormatCurrency(e.ExtraSpending),
		})
	}
	fmt.Fprint(&buf, RenderTable(impacts))
	fmt.Fprintln(&buf)

	writeContext(&buf, report)
	return buf.Bytes(), nil
}

func writeContext(buf *bytes.Buffer, report *domain.ProjectionReport) {
	ctx := Table{
		Title:   "Your Spending in Context",
		Headers: []string{"Measure", "Amount"},
		Rows: [][]string{
			{"Monthly retirement income needed", FormatCurrency(report.Context.RetirementMonthlyIncome)},
			{"Emergency fund (6 months)", FormatCurrency(report.Context.EmergencyFund)},
			{"Yearly investment target (20%)", FormatCurrency(report.Context.YearlyInvestmentTarget)},
		},
	}
	fmt.Fprint(buf, RenderTable(ctx))
	fmt.Fprintln(buf)

	stats := Table{Title: "Life in Numbers", Headers: []string{"Statistic", "Value", "About"}}
	for _, s := range report.LifeStatistics {
		stats.Rows = append(stats.Rows, []string{s.Label, FormatStatistic(s), s.Description})
	}
	fmt.Fprint(buf, RenderTable(stats))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "  "+RenderHeading("Smart Money Tips"))
	for _, tip := range report.Tips {
		fmt.Fprintf(buf, "  • %s\n", tip)
	}
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "  "+RenderHeading("Assumptions"))
	for _, a := range GenerateAssumptions(report) {
		fmt.Fprintf(buf, "  • %s\n", a)
	}
}

// ConsoleLiteFormatter provides a concise plain-text summary.
type ConsoleLiteFormatter struct{}

func (c ConsoleLiteFormatter) Name() string { return "console-lite" }

func (c ConsoleLiteFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer
	h := AnalyzeReport(report)

	fmt.Fprintln(&buf, "LIFETIME SPENDING SUMMARY")
	fmt.Fprintln(&buf, strings.Repeat("=", 32))
	fmt.Fprintf(&buf, "Monthly Spending: %s\n", FormatCurrency(report.Inputs.MonthlySpending))
	fmt.Fprintf(&buf, "Current Age: %d\n", report.Inputs.CurrentAge)
	fmt.Fprintln(&buf)

	if !report.HasProjection() {
		fmt.Fprintf(&buf, emptyProjectionMessage+"\n", report.Inputs.LifeExpectancy)
		return buf.Bytes(), nil
	}

	fmt.Fprintf(&buf, "Lifetime Total: %s over %d years\n", FormatCurrency(report.TotalSpending), h.Years)
	fmt.Fprintf(&buf, "Average/Year: %s  EventYears=%d BaseYears=%d\n", FormatCurrency(h.AverageYearly), h.EventYears, h.BaseYears)
	if report.PeakYear != nil {
		fmt.Fprintf(&buf, "Peak: %s %s (%s)\n", report.PeakYear.Year, FormatCurrency(report.PeakYear.YearlySpend), report.PeakYear.Event)
	}
	if h.CostliestEvent != "" {
		fmt.Fprintf(&buf, "Costliest Event: %s (+%s)\n", h.CostliestEvent, FormatCurrency(h.CostliestEventExtra))
	}
	fmt.Fprintf(&buf, "Retirement Income Needed: %s/month\n", FormatCurrency(report.Context.RetirementMonthlyIncome))
	return buf.Bytes(), nil
}
