package integration

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lifetracker/spending-calculator/internal/calculation"
	"github.com/lifetracker/spending-calculator/internal/config"
	"github.com/lifetracker/spending-calculator/internal/domain"
	"github.com/lifetracker/spending-calculator/internal/output"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadExampleReport(t *testing.T) *domain.ProjectionReport {
	t.Helper()
	cfg, err := config.NewInputParser().LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)
	report, err := calculation.NewCalculationEngine().RunConfiguration(context.Background(), cfg)
	require.NoError(t, err)
	return report
}

func TestGenerateReport_AllFormats(t *testing.T) {
	report := loadExampleReport(t)
	dir := t.TempDir()

	paths, err := output.GenerateReport(report, "all", dir)
	require.NoError(t, err)
	require.Len(t, paths, 4)

	exts := map[string]bool{}
	for _, p := range paths {
		fi, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, fi.Size(), p)
		exts[filepath.Ext(p)] = true
	}
	assert.Equal(t, map[string]bool{".txt": true, ".csv": true, ".json": true, ".html": true}, exts)
}

func TestRender_ConsoleLiteSummary(t *testing.T) {
	report := loadExampleReport(t)

	out, err := output.Render(report, "console-lite")
	require.NoError(t, err)
	text := string(out)
	assert.Contains(t, text, "Lifetime Total: $3,399,494 over 57 years")
	assert.Contains(t, text, "Current Age: 28")
}

func TestRender_EmptyProjection(t *testing.T) {
	report, err := calculation.NewCalculationEngine().RunProjection(context.Background(), decimal.Zero, 30)
	require.NoError(t, err)

	for _, format := range []string{"console", "console-lite", "csv", "detailed-csv", "json", "html"} {
		t.Run(format, func(t *testing.T) {
			out, err := output.Render(report, format)
			require.NoError(t, err)
			assert.NotEmpty(t, strings.TrimSpace(string(out)))
		})
	}
}

func TestSaveConfiguration_RoundTrip(t *testing.T) {
	parser := config.NewInputParser()
	path := filepath.Join(t.TempDir(), "example.yaml")

	require.NoError(t, output.SaveConfiguration(parser.CreateExampleConfiguration(), path))

	cfg, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Profile.Monthly().String())
	require.NotNil(t, cfg.Profile.CurrentAge)
	assert.Equal(t, 28, *cfg.Profile.CurrentAge)
}
