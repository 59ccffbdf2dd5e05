package output

import (
	"github.com/goccy/go-json"
	"github.com/lifetracker/spending-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

func init() {
	// amounts are emitted as JSON numbers for chart consumers
	decimal.MarshalJSONWithoutQuotes = true
}

// JSONFormatter serializes the projection report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
