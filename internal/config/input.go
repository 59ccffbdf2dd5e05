package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lifetracker/spending-calculator/internal/domain"
	"github.com/lifetracker/spending-calculator/internal/output"
	"github.com/lifetracker/spending-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// MaxAge is the largest current age accepted from input files, env or flags.
const MaxAge = 120

// ErrInvalidInput marks configuration values that fail validation.
var ErrInvalidInput = errors.New("invalid input")

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML, JSON or TOML file, chosen by extension.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	config, err := ip.Parse(data, filepath.Ext(filename))
	if err != nil {
		return nil, err
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Parse decodes raw configuration bytes. ext selects the decoder; anything other than
// .toml goes through the YAML decoder, which also accepts JSON.
func (ip *InputParser) Parse(data []byte, ext string) (*domain.Configuration, error) {
	var config domain.Configuration

	switch strings.ToLower(ext) {
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&config); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	case ".json":
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config == nil {
		return fmt.Errorf("%w: no configuration provided", ErrInvalidInput)
	}
	if err := ip.validateProfile(&config.Profile); err != nil {
		return fmt.Errorf("profile validation failed: %w", err)
	}
	if err := ip.validateOutput(&config.Output); err != nil {
		return fmt.Errorf("output validation failed: %w", err)
	}
	return nil
}

func (ip *InputParser) validateProfile(profile *domain.ProfileInputs) error {
	if profile.Monthly().IsNegative() {
		return fmt.Errorf("%w: monthly spending cannot be negative", ErrInvalidInput)
	}
	if profile.CurrentAge != nil && profile.BirthDate != "" {
		return fmt.Errorf("%w: specify either current_age or birth_date, not both", ErrInvalidInput)
	}
	if profile.CurrentAge != nil {
		if err := ValidateAge(*profile.CurrentAge); err != nil {
			return err
		}
	}
	if profile.BirthDate != "" {
		if _, err := dateutil.ParseDate(profile.BirthDate); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	return nil
}

func (ip *InputParser) validateOutput(settings *domain.OutputSettings) error {
	if settings.Format == "" || output.NormalizeFormatName(settings.Format) == "all" {
		return nil
	}
	if output.GetFormatterByName(settings.Format) == nil {
		return fmt.Errorf("%w: unknown format %q (available: %s, all)", ErrInvalidInput,
			settings.Format, strings.Join(output.AvailableFormatterNames(), ", "))
	}
	return nil
}

// ValidateAge rejects ages outside [0, MaxAge].
func ValidateAge(age int) error {
	if age < 0 || age > MaxAge {
		return fmt.Errorf("%w: current age must be between 0 and %d, got %d", ErrInvalidInput, MaxAge, age)
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	age := 28
	monthly := decimal.NewFromInt(3000)
	return &domain.Configuration{
		Profile: domain.ProfileInputs{
			Name:            "Example",
			MonthlySpending: &monthly,
			CurrentAge:      &age,
		},
		Output: domain.OutputSettings{
			Format:    "console",
			Directory: ".",
		},
	}
}
