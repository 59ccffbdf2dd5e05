package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lifetracker/spending-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_YAML(t *testing.T) {
	path := writeTemp(t, "profile.yaml", "profile:\n"+
		"  name: \"Sam\"\n"+
		"  monthly_spending: 2500.50\n"+
		"  current_age: 31\n"+
		"output:\n"+
		"  format: detailed-csv\n"+
		"  directory: reports\n")

	config, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Sam", config.Profile.Name)
	assert.True(t, config.Profile.Monthly().Equal(decimal.RequireFromString("2500.50")))
	require.NotNil(t, config.Profile.CurrentAge)
	assert.Equal(t, 31, *config.Profile.CurrentAge)
	assert.Equal(t, "detailed-csv", config.Output.Format)
	assert.Equal(t, "reports", config.Output.Directory)
}

func TestLoadFromFile_JSON(t *testing.T) {
	path := writeTemp(t, "profile.json",
		`{"profile": {"monthly_spending": 1000, "birth_date": "1990-04-01"}, "output": {"format": "json"}}`)

	config, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "1000", config.Profile.Monthly().String())
	assert.Nil(t, config.Profile.CurrentAge)
	assert.Equal(t, "1990-04-01", config.Profile.BirthDate)
	assert.Equal(t, "json", config.Output.Format)
}

func TestLoadFromFile_TOML(t *testing.T) {
	path := writeTemp(t, "profile.toml", "[profile]\n"+
		"monthly_spending = \"4200\"\n"+
		"current_age = 45\n\n"+
		"[output]\n"+
		"format = \"html\"\n"+
		"theme = \"forest\"\n")

	config, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "4200", config.Profile.Monthly().String())
	require.NotNil(t, config.Profile.CurrentAge)
	assert.Equal(t, 45, *config.Profile.CurrentAge)
	assert.Equal(t, "html", config.Output.Format)
	assert.Equal(t, "forest", config.Output.Theme)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	path := writeTemp(t, "broken.yaml", "profile: [unterminated\n")

	config, err := NewInputParser().LoadFromFile(path)
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_InvalidTOML(t *testing.T) {
	path := writeTemp(t, "broken.toml", "[profile\n")

	_, err := NewInputParser().LoadFromFile(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse TOML")
}

func TestValidateConfiguration(t *testing.T) {
	age := func(v int) *int { return &v }
	money := func(v int64) *decimal.Decimal {
		d := decimal.NewFromInt(v)
		return &d
	}

	testCases := []struct {
		name    string
		config  *domain.Configuration
		wantErr string
	}{
		{
			name:   "valid with age",
			config: &domain.Configuration{Profile: domain.ProfileInputs{MonthlySpending: money(1000), CurrentAge: age(30)}},
		},
		{
			name:   "valid with zero spending and no age",
			config: &domain.Configuration{},
		},
		{
			name:    "nil",
			config:  nil,
			wantErr: "no configuration provided",
		},
		{
			name:    "negative spending",
			config:  &domain.Configuration{Profile: domain.ProfileInputs{MonthlySpending: money(-1)}},
			wantErr: "monthly spending cannot be negative",
		},
		{
			name:    "age too high",
			config:  &domain.Configuration{Profile: domain.ProfileInputs{CurrentAge: age(121)}},
			wantErr: "between 0 and 120",
		},
		{
			name:    "negative age",
			config:  &domain.Configuration{Profile: domain.ProfileInputs{CurrentAge: age(-3)}},
			wantErr: "between 0 and 120",
		},
		{
			name:    "age and birth date",
			config:  &domain.Configuration{Profile: domain.ProfileInputs{CurrentAge: age(30), BirthDate: "1990-01-01"}},
			wantErr: "not both",
		},
		{
			name:    "bad birth date",
			config:  &domain.Configuration{Profile: domain.ProfileInputs{BirthDate: "01/02/1990"}},
			wantErr: "YYYY-MM-DD",
		},
		{
			name:    "unknown format",
			config:  &domain.Configuration{Output: domain.OutputSettings{Format: "pdf"}},
			wantErr: "unknown format",
		},
		{
			name:   "format alias",
			config: &domain.Configuration{Output: domain.OutputSettings{Format: "csv-detailed"}},
		},
		{
			name:   "all formats",
			config: &domain.Configuration{Output: domain.OutputSettings{Format: "all"}},
		},
	}

	parser := NewInputParser()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := parser.ValidateConfiguration(tc.config)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestCreateExampleConfiguration(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()

	require.NotNil(t, config)
	assert.NoError(t, parser.ValidateConfiguration(config))
	assert.True(t, config.Profile.Monthly().IsPositive())
	require.NotNil(t, config.Profile.CurrentAge)
	assert.Equal(t, "console", config.Output.Format)
}
