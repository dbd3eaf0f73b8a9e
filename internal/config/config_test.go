package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dyluth/blud/pkg/bloodtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blud.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `version: "1.0"
output:
  format: table
  precision: 3
chart:
  colors: ["#000000", "#111111", "#222222", "#333333", "#444444", "#555555", "#666666", "#777777"]
`)

	config, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "1.0", config.Version)
	assert.Equal(t, FormatTable, config.Output.Format)
	assert.Equal(t, 3, config.Precision())
	assert.Equal(t, "#777777", config.Chart.Colors[7])
	assert.Same(t, bloodtype.DefaultCompatibility(), config.CompatibilityTable())
}

func TestLoad_MinimalConfigAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `version: "1.0"`)

	config, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatDefault, config.Output.Format)
	assert.Equal(t, 2, config.Precision())
	assert.Equal(t, bloodtype.Palette(8), config.Chart.Colors)
}

func TestLoad_FileNotFound(t *testing.T) {
	config, err := Load("/nonexistent/blud.yml")
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, `version: "1.0"
output:
  - this is invalid
    yaml syntax
`)

	config, err := Load(path)
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoad_CompatibilityOverride(t *testing.T) {
	path := writeConfig(t, `version: "1.0"
compatibility:
  "A+": ["A+", "AB+"]
  "A-": ["A+", "A-", "AB+", "AB-"]
  "B+": ["B+", "AB+"]
  "B-": ["B+", "B-", "AB+", "AB-"]
  "AB+": ["AB+"]
  "AB-": ["AB+", "AB-"]
  "O+": ["O+"]
  "O-": ["O-", "O+"]
`)

	config, err := Load(path)
	require.NoError(t, err)

	recipients, err := config.CompatibilityTable().Recipients(bloodtype.ONeg)
	require.NoError(t, err)
	assert.Equal(t, []bloodtype.BloodType{bloodtype.ONeg, bloodtype.OPos}, recipients)
}

func TestLoad_InvalidCompatibility(t *testing.T) {
	path := writeConfig(t, `version: "1.0"
compatibility:
  "A+": ["A+"]
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.Contains(t, err.Error(), "missing compatibility entry")
}

func TestLoadOrDefault(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		config, found, err := LoadOrDefault(filepath.Join(t.TempDir(), "absent.yml"))
		require.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, FormatDefault, config.Output.Format)
	})

	t.Run("existing file is loaded", func(t *testing.T) {
		path := writeConfig(t, "version: \"1.0\"\noutput:\n  format: json\n")

		config, found, err := LoadOrDefault(path)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, FormatJSON, config.Output.Format)
	})

	t.Run("invalid file is an error", func(t *testing.T) {
		path := writeConfig(t, `version: "2.0"`)

		_, _, err := LoadOrDefault(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported version: 2.0")
	})
}

func TestValidate(t *testing.T) {
	intPtr := func(i int) *int { return &i }

	tests := []struct {
		name    string
		config  *BludConfig
		wantErr string
	}{
		{
			name:    "unsupported version",
			config:  &BludConfig{Version: "2.0"},
			wantErr: "unsupported version: 2.0",
		},
		{
			name:    "missing version",
			config:  &BludConfig{},
			wantErr: "unsupported version",
		},
		{
			name:    "unknown format",
			config:  &BludConfig{Version: "1.0", Output: &OutputConfig{Format: "xml"}},
			wantErr: "invalid format: xml",
		},
		{
			name:    "negative precision",
			config:  &BludConfig{Version: "1.0", Output: &OutputConfig{Precision: intPtr(-1)}},
			wantErr: "output.precision must be between 0 and 10",
		},
		{
			name:    "precision too large",
			config:  &BludConfig{Version: "1.0", Output: &OutputConfig{Precision: intPtr(11)}},
			wantErr: "output.precision must be between 0 and 10",
		},
		{
			name:    "too few colours",
			config:  &BludConfig{Version: "1.0", Chart: &ChartConfig{Colors: []string{"#FFFFFF"}}},
			wantErr: "exactly 8 colours",
		},
		{
			name: "malformed colour",
			config: &BludConfig{Version: "1.0", Chart: &ChartConfig{Colors: []string{
				"#FF6384", "#36A2EB", "#FFCE56", "#4BC0C0", "#9966FF", "#FF9F40", "#C9CBCF", "red",
			}}},
			wantErr: "chart.colors[7]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("zero precision is allowed", func(t *testing.T) {
		config := &BludConfig{Version: "1.0", Output: &OutputConfig{Precision: intPtr(0)}}
		require.NoError(t, config.Validate())
		assert.Equal(t, 0, config.Precision())
	})
}

func TestDefault(t *testing.T) {
	config := Default()
	assert.Equal(t, "1.0", config.Version)
	assert.Equal(t, FormatDefault, config.Output.Format)
	assert.Equal(t, 2, config.Precision())
	assert.Len(t, config.Chart.Colors, 8)
	assert.NotNil(t, config.CompatibilityTable())
}
