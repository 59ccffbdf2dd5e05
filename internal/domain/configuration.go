package domain

import (
	"github.com/shopspring/decimal"
)

// Configuration is the on-disk projection input file.
type Configuration struct {
	Profile ProfileInputs  `yaml:"profile" json:"profile" toml:"profile"`
	Output  OutputSettings `yaml:"output" json:"output" toml:"output"`
}

// ProfileInputs describes the person being projected.
// Exactly one of CurrentAge or BirthDate should be set. A nil MonthlySpending means the
// file left it out; an explicit zero is kept.
type ProfileInputs struct {
	Name            string           `yaml:"name,omitempty" json:"name,omitempty" toml:"name,omitempty"`
	MonthlySpending *decimal.Decimal `yaml:"monthly_spending,omitempty" json:"monthly_spending,omitempty" toml:"monthly_spending,omitempty"`
	CurrentAge      *int             `yaml:"current_age,omitempty" json:"current_age,omitempty" toml:"current_age,omitempty"`
	BirthDate       string           `yaml:"birth_date,omitempty" json:"birth_date,omitempty" toml:"birth_date,omitempty"` // YYYY-MM-DD
}

// Monthly returns the monthly spending, or zero when unset.
func (p ProfileInputs) Monthly() decimal.Decimal {
	if p.MonthlySpending == nil {
		return decimal.Zero
	}
	return *p.MonthlySpending
}

// OutputSettings selects how a projection is rendered.
type OutputSettings struct {
	Format    string `yaml:"format,omitempty" json:"format,omitempty" toml:"format,omitempty"`
	Directory string `yaml:"directory,omitempty" json:"directory,omitempty" toml:"directory,omitempty"`
	Theme     string `yaml:"theme,omitempty" json:"theme,omitempty" toml:"theme,omitempty"`
}
