// Package cmd implements the lifetracker CLI commands.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/lifetracker/spending-calculator/internal/config"
	"github.com/lifetracker/spending-calculator/internal/domain"
	"github.com/lifetracker/spending-calculator/internal/output"
	"github.com/spf13/cobra"
)

var flagForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Write an example input file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, err := loadEffectiveConfig(cmd)
	if err != nil {
		return err
	}
	writeConfigSummary(cmd.OutOrStdout(), cfg, config.PreferencesPath(), config.PreferencesExist())
	return nil
}

func writeConfigSummary(w io.Writer, cfg *domain.Configuration, prefsPath string, prefsExist bool) {
	fmt.Fprintf(w, "  Preferences file: %s\n", prefsPath)
	if prefsExist {
		fmt.Fprintln(w, "  Status: loaded")
	} else {
		fmt.Fprintln(w, "  Status: using defaults (no preferences file)")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Profile]")
	if cfg.Profile.Name != "" {
		fmt.Fprintf(w, "    Name:             %s\n", cfg.Profile.Name)
	}
	fmt.Fprintf(w, "    Monthly spending: %s\n", output.FormatCurrency(cfg.Profile.Monthly()))
	switch {
	case cfg.Profile.CurrentAge != nil:
		fmt.Fprintf(w, "    Current age:      %d\n", *cfg.Profile.CurrentAge)
	case cfg.Profile.BirthDate != "":
		fmt.Fprintf(w, "    Birth date:       %s\n", cfg.Profile.BirthDate)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Output]")
	fmt.Fprintf(w, "    Format:    %s\n", cfg.Output.Format)
	fmt.Fprintf(w, "    Directory: %s\n", cfg.Output.Directory)
	fmt.Fprintf(w, "    Theme:     %s\n", cfg.Output.Theme)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	filename := "lifetracker.yaml"
	if len(args) == 1 {
		filename = args[0]
	}
	if _, err := os.Stat(filename); err == nil && !flagForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", filename)
	}

	example := config.NewInputParser().CreateExampleConfiguration()
	if err := output.SaveConfiguration(example, filename); err != nil {
		return fmt.Errorf("write example config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Wrote example input file to %s\n", filename)
	return nil
}
