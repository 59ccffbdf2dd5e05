package cmd

import (
	"fmt"

	"github.com/lifetracker/spending-calculator/internal/domain"
	"github.com/lifetracker/spending-calculator/internal/output"
	"github.com/spf13/cobra"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List the life-event calendar",
	RunE:  runEvents,
}

func init() {
	rootCmd.AddCommand(eventsCmd)
}

func runEvents(cmd *cobra.Command, _ []string) error {
	cfg, err := loadEffectiveConfig(cmd)
	if err != nil {
		return err
	}
	output.SetActiveTheme(cfg.Output.Theme)

	fmt.Fprintln(cmd.OutOrStdout(), eventsTable(domain.DefaultCalendar()))
	return nil
}

func eventsTable(calendar domain.EventCalendar) string {
	tbl := output.Table{
		Title:   "Life Events",
		Headers: []string{"Event", "Ages", "Years", "Multiplier"},
	}
	for _, e := range calendar.Events() {
		tbl.Rows = append(tbl.Rows, []string{
			e.Name,
			fmt.Sprintf("%d-%d", e.Age, e.EndAge()-1),
			fmt.Sprintf("%d", e.Duration),
			"x" + e.Multiplier.String(),
		})
	}
	return output.RenderTable(tbl)
}
