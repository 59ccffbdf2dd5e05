package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lifetracker/spending-calculator/internal/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command with args against an empty preferences dir
// and a clean LIFETRACKER_* environment.
func runCLI(t *testing.T, env map[string]string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, k := range []string{
		"LIFETRACKER_MONTHLY_SPENDING", "LIFETRACKER_CURRENT_AGE",
		"LIFETRACKER_FORMAT", "LIFETRACKER_THEME", "LIFETRACKER_OUTPUT_DIR",
	} {
		t.Setenv(k, env[k])
	}
	resetFlags(t)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{}, args...))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func resetFlags(t *testing.T) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	configInitCmd.Flags().VisitAll(reset)
}

func TestProject_ConsoleLite(t *testing.T) {
	out, err := runCLI(t, nil, "project", "-f", "console-lite", "-m", "1000", "-a", "28")
	require.NoError(t, err)
	assert.Contains(t, out, "Monthly Spending: $1,000")
	assert.Contains(t, out, "Lifetime Total: $1,236,000 over 57 years")
}

func TestRoot_DefaultsToProject(t *testing.T) {
	out, err := runCLI(t, nil, "--format", "lite", "--monthly", "$1,000", "--age", "25")
	require.NoError(t, err)
	assert.Contains(t, out, "Lifetime Total: $1,278,000 over 60 years")
}

func TestProject_FlagsOverrideEnvironment(t *testing.T) {
	env := map[string]string{
		"LIFETRACKER_MONTHLY_SPENDING": "1000",
		"LIFETRACKER_CURRENT_AGE":      "25",
		"LIFETRACKER_FORMAT":           "console-lite",
	}

	out, err := runCLI(t, env)
	require.NoError(t, err)
	assert.Contains(t, out, "$1,278,000")

	out, err = runCLI(t, env, "--age", "28")
	require.NoError(t, err)
	assert.Contains(t, out, "$1,236,000")
}

func TestProject_InvalidInputs(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{name: "age and birth date", args: []string{"-a", "30", "--birth-date", "1990-01-01"}},
		{name: "monthly not a number", args: []string{"-m", "lots"}},
		{name: "negative monthly", args: []string{"--monthly=-5"}},
		{name: "age out of range", args: []string{"-a", "130"}},
		{name: "unknown format", args: []string{"-f", "pdf"}},
		{name: "bad env age", env: map[string]string{"LIFETRACKER_CURRENT_AGE": "twenty"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := runCLI(t, tc.env, append([]string{"project"}, tc.args...)...)
			require.Error(t, err)
			assert.ErrorIs(t, err, config.ErrInvalidInput)
		})
	}
}

func TestProject_WritesFileFormats(t *testing.T) {
	dir := t.TempDir()
	out, err := runCLI(t, nil, "-f", "json", "-o", dir, "-m", "1000", "-a", "28")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote ")

	matches, err := filepath.Glob(filepath.Join(dir, "lifetime_spending_*.json"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{"))
}

func TestProject_StdoutSkipsFiles(t *testing.T) {
	dir := t.TempDir()
	out, err := runCLI(t, nil, "-f", "csv-detailed", "--stdout", "-o", dir, "-m", "1000", "-a", "80")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Index,Age,Year,"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestConfigInit_ThenProjectFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")

	out, err := runCLI(t, nil, "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	_, err = runCLI(t, nil, "config", "init", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = runCLI(t, nil, "config", "init", "--force", path)
	require.NoError(t, err)

	// the example file holds $3,000/month at age 28
	out, err = runCLI(t, nil, "--config", path, "-f", "console-lite")
	require.NoError(t, err)
	assert.Contains(t, out, "Lifetime Total: $3,708,000 over 57 years")
}

func TestConfigShow_Defaults(t *testing.T) {
	out, err := runCLI(t, nil, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "Status: using defaults")
	assert.Contains(t, out, "Monthly spending: $3,000")
	assert.Contains(t, out, "Current age:      25")
	assert.Contains(t, out, "Theme:     ocean")
}

func TestEventsCommand(t *testing.T) {
	out, err := runCLI(t, nil, "events")
	require.NoError(t, err)
	for _, want := range []string{"College", "Marriage", "First Child", "Second Child", "Children College", "Retirement"} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, "45-48")
	assert.Contains(t, out, "65-84")
}

func TestStatsCommand(t *testing.T) {
	out, err := runCLI(t, nil, "stats", "-m", "1000")
	require.NoError(t, err)
	assert.Contains(t, out, "$800")
	assert.Contains(t, out, "$6,000")
	assert.Contains(t, out, "$2,400")
	assert.Contains(t, out, "Global Average Spending")
	assert.Contains(t, out, "Build an emergency fund before major life events")
}

func TestProject_StdoutRejectsAll(t *testing.T) {
	_, err := runCLI(t, nil, "-f", "all", "--stdout", "-m", "1000", "-a", "28")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidInput)
	assert.Contains(t, err.Error(), "--stdout prints a single format")
}

func TestProject_ZeroSpendingFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zero.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profile:\n  monthly_spending: 0\n  current_age: 30\n"), 0o644))

	out, err := runCLI(t, nil, "--config", path, "-f", "console-lite")
	require.NoError(t, err)
	assert.Contains(t, out, "Monthly Spending: $0")
	assert.Contains(t, out, "Enter a monthly spending above $0")
	assert.NotContains(t, out, "Lifetime Total")
}

func TestLoadSetupPreferences(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var warn bytes.Buffer
	prefs := loadSetupPreferences(&warn)
	assert.Empty(t, warn.String(), "a missing file is not an error")
	assert.Equal(t, config.DefaultPreferences(), prefs)

	require.NoError(t, os.MkdirAll(config.PreferencesDir(), 0o755))
	require.NoError(t, os.WriteFile(config.PreferencesPath(), []byte("[appearance\ntheme = "), 0o600))

	prefs = loadSetupPreferences(&warn)
	assert.Contains(t, warn.String(), "Warning:")
	assert.Contains(t, warn.String(), config.PreferencesPath())
	assert.Equal(t, config.DefaultPreferences(), prefs)
}
