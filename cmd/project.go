package cmd

import (
	"fmt"
	"strings"

	"github.com/lifetracker/spending-calculator/internal/calculation"
	"github.com/lifetracker/spending-calculator/internal/config"
	"github.com/lifetracker/spending-calculator/internal/output"
	"github.com/spf13/cobra"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project lifetime spending and print or write the report",
	RunE:  runProject,
}

func init() {
	rootCmd.AddCommand(projectCmd)
}

func runProject(cmd *cobra.Command, _ []string) error {
	cfg, err := loadEffectiveConfig(cmd)
	if err != nil {
		return err
	}
	output.SetActiveTheme(cfg.Output.Theme)

	age, err := calculation.ResolveAge(cfg.Profile)
	if err != nil {
		return err
	}
	if err := config.ValidateAge(age); err != nil {
		return err
	}

	report, err := newEngine(cmd).RunProjection(cmd.Context(), cfg.Profile.Monthly(), age)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	format := cfg.Output.Format
	if flagStdout && output.NormalizeFormatName(format) == "all" {
		return fmt.Errorf("%w: --stdout prints a single format; pick one of %s instead of \"all\"",
			config.ErrInvalidInput, strings.Join(output.AvailableFormatterNames(), ", "))
	}
	if flagStdout || output.IsConsoleFormat(format) {
		data, err := output.Render(report, format)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	paths, err := output.GenerateReport(report, format, cfg.Output.Directory)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintf(out, "  Wrote %s\n", p)
	}
	return nil
}
