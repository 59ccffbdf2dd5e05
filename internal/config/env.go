package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	money "github.com/lifetracker/spending-calculator/pkg/decimal"
)

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// EnvOverrides holds the LIFETRACKER_* environment variables.
// Numbers stay strings here so a bad value is reported with its variable name.
type EnvOverrides struct {
	MonthlySpending string `env:"LIFETRACKER_MONTHLY_SPENDING"`
	CurrentAge      string `env:"LIFETRACKER_CURRENT_AGE"`
	Format          string `env:"LIFETRACKER_FORMAT"`
	Theme           string `env:"LIFETRACKER_THEME"`
	OutputDir       string `env:"LIFETRACKER_OUTPUT_DIR"`
}

// LoadEnvOverrides reads the LIFETRACKER_* variables.
func LoadEnvOverrides() (EnvOverrides, error) {
	var e EnvOverrides
	if err := ParseEnv(&e); err != nil {
		return EnvOverrides{}, err
	}
	return e, nil
}

// Overrides converts the raw variables into a merge layer.
func (e EnvOverrides) Overrides() (Overrides, error) {
	o := Overrides{
		Format:    strings.TrimSpace(e.Format),
		Theme:     strings.TrimSpace(e.Theme),
		Directory: strings.TrimSpace(e.OutputDir),
	}

	if v := strings.TrimSpace(e.MonthlySpending); v != "" {
		m, err := money.NewMoneyFromString(v)
		if err != nil {
			return Overrides{}, fmt.Errorf("%w: LIFETRACKER_MONTHLY_SPENDING=%q is not a number", ErrInvalidInput, v)
		}
		o.MonthlySpending = &m.Decimal
	}
	if v := strings.TrimSpace(e.CurrentAge); v != "" {
		age, err := strconv.Atoi(v)
		if err != nil {
			return Overrides{}, fmt.Errorf("%w: LIFETRACKER_CURRENT_AGE=%q is not a whole number", ErrInvalidInput, v)
		}
		o.CurrentAge = &age
	}

	return o, nil
}
