package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/lifetracker/spending-calculator/internal/config"
	"github.com/lifetracker/spending-calculator/internal/output"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	prefs := loadSetupPreferences(cmd.ErrOrStderr())

	form := newSetupForm(&prefs)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(cmd.OutOrStdout(), "  Setup cancelled.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}
	prefs.Output.Directory = strings.TrimSpace(prefs.Output.Directory)

	if err := config.SavePreferences(prefs); err != nil {
		return fmt.Errorf("saving preferences: %w", err)
	}

	output.SetActiveTheme(prefs.Appearance.Theme)
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintf(cmd.OutOrStdout(), "  Saved to %s\n", config.PreferencesPath())
	fmt.Fprintln(cmd.OutOrStdout(), "  Run `lifetracker` to see your projection.")
	return nil
}

// loadSetupPreferences starts the wizard from the saved preferences. An unreadable file
// is reported and replaced by defaults, since saving will overwrite it.
func loadSetupPreferences(w io.Writer) config.Preferences {
	prefs, err := config.LoadPreferences()
	if err != nil {
		fmt.Fprintf(w, "  Warning: %v; starting from defaults, %s will be overwritten\n", err, config.PreferencesPath())
		return config.DefaultPreferences()
	}
	return prefs
}

func newSetupForm(prefs *config.Preferences) *huh.Form {
	themes := make([]huh.Option[string], 0, len(output.AllThemes))
	for _, t := range output.AllThemes {
		themes = append(themes, huh.NewOption(t.Name, t.Name))
	}

	formats := make([]huh.Option[string], 0, len(output.AvailableFormatterNames()))
	for _, name := range output.AvailableFormatterNames() {
		formats = append(formats, huh.NewOption(name, name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to lifetracker").
				Description("Choose the defaults used when no flag, variable or input file sets them."),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themes...).
				Value(&prefs.Appearance.Theme),
			huh.NewSelect[string]().
				Title("Default output format").
				Options(formats...).
				Value(&prefs.Output.DefaultFormat),
			huh.NewInput().
				Title("Report directory").
				Placeholder(".").
				Value(&prefs.Output.Directory),
		),
	)
}
