package cmd

import (
	"fmt"
	"strings"

	"github.com/lifetracker/spending-calculator/internal/calculation"
	"github.com/lifetracker/spending-calculator/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show spending context, life statistics and tips for a monthly budget",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	cfg, err := loadEffectiveConfig(cmd)
	if err != nil {
		return err
	}
	output.SetActiveTheme(cfg.Output.Theme)

	fmt.Fprint(cmd.OutOrStdout(), statsView(cfg.Profile.Monthly()))
	return nil
}

func statsView(monthly decimal.Decimal) string {
	var b strings.Builder
	sc := calculation.CalculateSpendingContext(monthly)

	b.WriteString(output.RenderTitle("Spending Context  " + output.FormatCurrency(monthly) + "/month"))
	b.WriteString("\n\n")
	b.WriteString(output.RenderTable(output.Table{
		Headers: []string{"Figure", "Amount"},
		Rows: [][]string{
			{"Retirement income (monthly)", output.FormatCurrency(sc.RetirementMonthlyIncome)},
			{"Emergency fund (6 months)", output.FormatCurrency(sc.EmergencyFund)},
			{"Investment target (yearly)", output.FormatCurrency(sc.YearlyInvestmentTarget)},
		},
	}))
	b.WriteString("\n\n")

	stats := output.Table{Headers: []string{"Life in Numbers", "Value", ""}}
	for _, s := range calculation.LifeStatistics() {
		stats.Rows = append(stats.Rows, []string{s.Label, output.FormatStatistic(s), s.Description})
	}
	b.WriteString(output.RenderTable(stats))
	b.WriteString("\n\n")

	b.WriteString(output.RenderHeading("Money Tips"))
	b.WriteString("\n")
	for _, tip := range calculation.MoneyTips() {
		b.WriteString("  - " + tip + "\n")
	}
	return b.String()
}
