package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"math"
	"strings"

	"github.com/lifetracker/spending-calculator/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with an inline SVG chart.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"stat": FormatStatistic,
	"f1":   func(v float64) string { return fmt.Sprintf("%.1f", v) },
	"last": func(e domain.EventImpact) int { return e.EndAge - 1 },
}).Parse(htmlTemplateSource))

const (
	svgWidth        = 900.0
	svgHeight       = 400.0
	svgMarginLeft   = 70.0
	svgMarginRight  = 20.0
	svgMarginTop    = 24.0
	svgMarginBottom = 40.0
)

type svgBar struct {
	X, Y, Width, Height float64
	Fill                string
	Title               string
}

type svgLine struct {
	X, Y  float64
	Label string
}

type svgChart struct {
	Width, Height float64
	Left, Right   float64
	Top, Bottom   float64
	Bars          []svgBar
	EventLines    []svgLine
	YTicks        []svgLine
	XTicks        []svgLine
}

// buildChart lays out one bar per record with cumulative Amount as height.
func buildChart(report *domain.ProjectionReport) svgChart {
	c := svgChart{
		Width:  svgWidth,
		Height: svgHeight,
		Left:   svgMarginLeft,
		Right:  svgWidth - svgMarginRight,
		Top:    svgMarginTop,
		Bottom: svgHeight - svgMarginBottom,
	}
	n := len(report.Records)
	if n == 0 {
		return c
	}

	maxVal := report.Records[n-1].Amount.InexactFloat64()
	if maxVal <= 0 {
		maxVal = 1
	}
	step := chartTickStep(maxVal)
	ceiling := math.Ceil(maxVal/step) * step
	plotH := c.Bottom - c.Top
	slot := (c.Right - c.Left) / float64(n)
	y := func(v float64) float64 { return c.Bottom - plotH*v/ceiling }

	for v := step; v <= ceiling+step/2; v += step {
		c.YTicks = append(c.YTicks, svgLine{X: c.Left, Y: y(v), Label: formatChartLabel(v)})
	}

	for i, r := range report.Records {
		v := r.Amount.InexactFloat64()
		title := []string{r.Year, "Total spent: " + FormatCurrency(r.Amount), "This year: " + FormatCurrency(r.YearlySpend)}
		if r.IsLifeEvent {
			title = append(title, "Event: "+r.Event)
		}
		c.Bars = append(c.Bars, svgBar{
			X:      c.Left + slot*float64(i) + slot*0.1,
			Y:      y(v),
			Width:  slot * 0.8,
			Height: c.Bottom - y(v),
			Fill:   r.Fill,
			Title:  strings.Join(title, "\n"),
		})
		if r.Age%5 == 0 {
			c.XTicks = append(c.XTicks, svgLine{X: c.Left + slot*(float64(i)+0.5), Y: c.Bottom, Label: intToString(r.Age)})
		}
	}

	for _, e := range report.Events {
		idx := e.Age - report.Inputs.CurrentAge
		if idx < 0 || idx >= n {
			continue
		}
		c.EventLines = append(c.EventLines, svgLine{X: c.Left + slot*(float64(idx)+0.5), Y: c.Top, Label: e.Name})
	}
	return c
}

func (h HTMLFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer

	data := struct {
		*domain.ProjectionReport
		Highlights  Highlights
		Chart       svgChart
		Assumptions []string
		EmptyNote   string
	}{
		ProjectionReport: report,
		Highlights:       AnalyzeReport(report),
		Chart:            buildChart(report),
		Assumptions:      GenerateAssumptions(report),
		EmptyNote:        fmt.Sprintf(emptyProjectionMessage, report.Inputs.LifeExpectancy),
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
