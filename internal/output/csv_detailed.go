package output

import (
	"bytes"
	"encoding/csv"

	"github.com/lifetracker/spending-calculator/internal/domain"
)

// CSVDetailedExporter writes one row per projected year.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *domain.ProjectionReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Index", "Age", "Year", "YearlySpend", "Amount", "IsLifeEvent", "Event", "Fill"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range report.Records {
		row := []string{
			intToString(r.Index),
			intToString(r.Age),
			r.Year,
			r.YearlySpend.StringFixed(0),
			r.Amount.StringFixed(0),
			boolToString(r.IsLifeEvent),
			r.Event,
			r.Fill,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
