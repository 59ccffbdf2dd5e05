package cmd

import (
	"fmt"

	"github.com/lifetracker/spending-calculator/internal/calculation"
	"github.com/lifetracker/spending-calculator/internal/output"
	"github.com/lifetracker/spending-calculator/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive spending calculator",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := loadEffectiveConfig(cmd)
	if err != nil {
		return err
	}
	output.SetActiveTheme(cfg.Output.Theme)
	lipgloss.SetColorProfile(termenv.TrueColor)

	age, err := calculation.ResolveAge(cfg.Profile)
	if err != nil {
		return err
	}
	age = min(tui.MaxAge, max(tui.MinAge, age))

	model := tui.New(newEngine(cmd), age, cfg.Profile.Monthly())
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
