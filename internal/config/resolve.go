package config

import (
	"github.com/lifetracker/spending-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Built-in profile defaults, used when no other layer sets them.
const (
	DefaultMonthlySpending = 3000
	DefaultAge             = 25
)

// Overrides is one layer of settings. Zero values leave the layer below untouched.
type Overrides struct {
	Name            string
	MonthlySpending *decimal.Decimal
	CurrentAge      *int
	BirthDate       string
	Format          string
	Directory       string
	Theme           string
}

// FromConfiguration turns an input file into a merge layer.
func FromConfiguration(c *domain.Configuration) Overrides {
	if c == nil {
		return Overrides{}
	}
	o := Overrides{
		Name:       c.Profile.Name,
		CurrentAge: c.Profile.CurrentAge,
		BirthDate:  c.Profile.BirthDate,
		Format:     c.Output.Format,
		Directory:  c.Output.Directory,
		Theme:      c.Output.Theme,
	}
	if c.Profile.MonthlySpending != nil {
		m := *c.Profile.MonthlySpending
		o.MonthlySpending = &m
	}
	return o
}

// Resolve builds the effective configuration from preferences and the given layers,
// lowest precedence first. A layer that sets an age clears a lower birth date and vice versa.
func Resolve(prefs Preferences, layers ...Overrides) *domain.Configuration {
	age := DefaultAge
	monthly := decimal.NewFromInt(DefaultMonthlySpending)
	c := &domain.Configuration{
		Profile: domain.ProfileInputs{
			MonthlySpending: &monthly,
			CurrentAge:      &age,
		},
		Output: domain.OutputSettings{
			Format:    prefs.Output.DefaultFormat,
			Directory: prefs.Output.Directory,
			Theme:     prefs.Appearance.Theme,
		},
	}

	for _, l := range layers {
		if l.Name != "" {
			c.Profile.Name = l.Name
		}
		if l.MonthlySpending != nil {
			m := *l.MonthlySpending
			c.Profile.MonthlySpending = &m
		}
		if l.CurrentAge != nil {
			age := *l.CurrentAge
			c.Profile.CurrentAge = &age
			c.Profile.BirthDate = ""
		}
		if l.BirthDate != "" {
			c.Profile.BirthDate = l.BirthDate
			c.Profile.CurrentAge = nil
		}
		if l.Format != "" {
			c.Output.Format = l.Format
		}
		if l.Directory != "" {
			c.Output.Directory = l.Directory
		}
		if l.Theme != "" {
			c.Output.Theme = l.Theme
		}
	}

	return c
}
