package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/lifetracker/spending-calculator/internal/calculation"
	"github.com/lifetracker/spending-calculator/internal/config"
	"github.com/lifetracker/spending-calculator/internal/domain"
	"github.com/lifetracker/spending-calculator/internal/output"
	money "github.com/lifetracker/spending-calculator/pkg/decimal"
	"github.com/spf13/cobra"
)

var (
	flagMonthly   string
	flagAge       int
	flagBirthDate string
	flagConfig    string
	flagFormat    string
	flagOutputDir string
	flagTheme     string
	flagStdout    bool
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "lifetracker",
	Short: "Lifetime spending projection",
	Long: "Project cumulative lifetime spending from your monthly spending and current age,\n" +
		"with major life events scaling each year's spending.",
	RunE:          runProject,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagMonthly, "monthly", "m", "", "Monthly spending in dollars")
	pf.IntVarP(&flagAge, "age", "a", 0, "Current age in whole years")
	pf.StringVar(&flagBirthDate, "birth-date", "", "Birth date (YYYY-MM-DD), instead of --age")
	pf.StringVarP(&flagConfig, "config", "c", "", "Input file (YAML, JSON or TOML)")
	pf.StringVarP(&flagFormat, "format", "f", "", "Output format (console, console-lite, csv, detailed-csv, html, json, all)")
	pf.StringVarP(&flagOutputDir, "output-dir", "o", "", "Directory for written reports")
	pf.StringVar(&flagTheme, "theme", "", "Color theme ("+strings.Join(output.ThemeNames(), ", ")+")")
	pf.BoolVar(&flagStdout, "stdout", false, "Print file formats to stdout instead of writing files")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Log projection details to stderr")
}

// flagOverrides turns the flags the user actually set into the highest merge layer.
func flagOverrides(cmd *cobra.Command) (config.Overrides, error) {
	o := config.Overrides{
		BirthDate: flagBirthDate,
		Format:    flagFormat,
		Directory: flagOutputDir,
		Theme:     flagTheme,
	}
	if flagMonthly != "" {
		m, err := money.NewMoneyFromString(flagMonthly)
		if err != nil {
			return config.Overrides{}, fmt.Errorf("%w: --monthly %q is not a number", config.ErrInvalidInput, flagMonthly)
		}
		o.MonthlySpending = &m.Decimal
	}
	if cmd.Flags().Changed("age") {
		age := flagAge
		o.CurrentAge = &age
	}
	return o, nil
}

// loadEffectiveConfig merges preferences, the input file, LIFETRACKER_* variables and flags,
// in that order of increasing precedence, and validates the result.
func loadEffectiveConfig(cmd *cobra.Command) (*domain.Configuration, error) {
	prefs, err := config.LoadPreferences()
	if err != nil {
		return nil, err
	}

	var layers []config.Overrides
	parser := config.NewInputParser()

	if flagConfig != "" {
		file, err := parser.LoadFromFile(flagConfig)
		if err != nil {
			return nil, err
		}
		layers = append(layers, config.FromConfiguration(file))
	}

	envVars, err := config.LoadEnvOverrides()
	if err != nil {
		return nil, err
	}
	envLayer, err := envVars.Overrides()
	if err != nil {
		return nil, err
	}
	layers = append(layers, envLayer)

	flags, err := flagOverrides(cmd)
	if err != nil {
		return nil, err
	}
	if flags.CurrentAge != nil && flags.BirthDate != "" {
		return nil, fmt.Errorf("%w: use either --age or --birth-date", config.ErrInvalidInput)
	}
	layers = append(layers, flags)

	cfg := config.Resolve(prefs, layers...)
	if err := parser.ValidateConfiguration(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newEngine(cmd *cobra.Command) *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	if flagVerbose {
		engine.SetLogger(calculation.NewStdLogger(cmd.ErrOrStderr(), true))
	}
	return engine
}
