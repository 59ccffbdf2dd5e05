package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/lifetracker/spending-calculator/internal/calculation"
	"github.com/lifetracker/spending-calculator/internal/config"
	"github.com/lifetracker/spending-calculator/internal/output"
)

func main() {
	path := "test/testdata/example_config.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(path)
	if err != nil {
		log.Fatal(err)
	}

	engine := calculation.NewCalculationEngine()
	engine.SetLogger(calculation.NewStdLogger(os.Stderr, true))
	report, err := engine.RunConfiguration(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}

	html, err := output.Render(report, "html")
	if err != nil {
		log.Fatal(err)
	}
	page := string(html)

	fmt.Printf("=== PROJECTION ===\n")
	fmt.Printf("Years: %d, total %s\n", len(report.Records), output.FormatCurrency(report.TotalSpending))

	fmt.Printf("\n=== CHART ===\n")
	bars := strings.Count(page, "<rect ")
	lines := strings.Count(page, "stroke-dasharray")

	wantLines := 0
	for _, e := range report.Events {
		if idx := e.Age - report.Inputs.CurrentAge; idx >= 0 && idx < len(report.Records) {
			wantLines++
		}
	}

	check("bars", bars, len(report.Records))
	check("event lines", lines, wantLines)
}

func check(what string, got, want int) {
	if got != want {
		fmt.Printf("❌ %s: got %d, want %d\n", what, got, want)
		return
	}
	fmt.Printf("✅ %s: %d\n", what, got)
}
