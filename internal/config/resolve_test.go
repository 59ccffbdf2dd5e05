package config

import (
	"testing"

	"github.com/lifetracker/spending-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Precedence(t *testing.T) {
	prefs := DefaultPreferences()
	prefs.Output.DefaultFormat = "html"

	fileAge := 30
	fileMonthly := decimal.NewFromInt(1000)
	file := &domain.Configuration{
		Profile: domain.ProfileInputs{Name: "File", MonthlySpending: &fileMonthly, CurrentAge: &fileAge},
		Output:  domain.OutputSettings{Format: "csv", Directory: "from-file"},
	}

	envMonthly := decimal.NewFromInt(2000)
	env := Overrides{MonthlySpending: &envMonthly, Format: "json"}

	flagAge := 40
	flags := Overrides{CurrentAge: &flagAge}

	c := Resolve(prefs, FromConfiguration(file), env, flags)

	assert.Equal(t, "File", c.Profile.Name)
	assert.Equal(t, "2000", c.Profile.Monthly().String(), "env beats file")
	require.NotNil(t, c.Profile.CurrentAge)
	assert.Equal(t, 40, *c.Profile.CurrentAge, "flags beat file")
	assert.Equal(t, "json", c.Output.Format, "env beats file and preferences")
	assert.Equal(t, "from-file", c.Output.Directory)
	assert.Equal(t, "ocean", c.Output.Theme, "preferences fill the gaps")
}

func TestResolve_DefaultsOnly(t *testing.T) {
	c := Resolve(DefaultPreferences())
	assert.Equal(t, "3000", c.Profile.Monthly().String())
	require.NotNil(t, c.Profile.CurrentAge)
	assert.Equal(t, DefaultAge, *c.Profile.CurrentAge)
	assert.Equal(t, "console", c.Output.Format)
	assert.Equal(t, ".", c.Output.Directory)
}

func TestResolve_BirthDateAndAgeReplaceEachOther(t *testing.T) {
	age := 33
	c := Resolve(DefaultPreferences(), Overrides{CurrentAge: &age}, Overrides{BirthDate: "1980-02-29"})
	assert.Nil(t, c.Profile.CurrentAge)
	assert.Equal(t, "1980-02-29", c.Profile.BirthDate)

	c = Resolve(DefaultPreferences(), Overrides{BirthDate: "1980-02-29"}, Overrides{CurrentAge: &age})
	require.NotNil(t, c.Profile.CurrentAge)
	assert.Empty(t, c.Profile.BirthDate)
}

func TestFromConfiguration_Nil(t *testing.T) {
	assert.Equal(t, Overrides{}, FromConfiguration(nil))
}

func TestFromConfiguration_ExplicitZeroSpendingIsKept(t *testing.T) {
	parser := NewInputParser()

	zero, err := parser.Parse([]byte("profile:\n  monthly_spending: 0\n  current_age: 30\n"), ".yaml")
	require.NoError(t, err)
	require.NotNil(t, zero.Profile.MonthlySpending)

	c := Resolve(DefaultPreferences(), FromConfiguration(zero))
	assert.True(t, c.Profile.Monthly().IsZero(), "explicit zero must not fall back to the default")

	unset, err := parser.Parse([]byte("profile:\n  current_age: 30\n"), ".yaml")
	require.NoError(t, err)
	assert.Nil(t, unset.Profile.MonthlySpending)

	c = Resolve(DefaultPreferences(), FromConfiguration(unset))
	assert.Equal(t, "3000", c.Profile.Monthly().String())
}

func TestFromConfiguration_ExplicitZeroSpendingTOML(t *testing.T) {
	cfg, err := NewInputParser().Parse([]byte("[profile]\nmonthly_spending = 0\ncurrent_age = 30\n"), ".toml")
	require.NoError(t, err)

	c := Resolve(DefaultPreferences(), FromConfiguration(cfg))
	assert.True(t, c.Profile.Monthly().IsZero())
}
