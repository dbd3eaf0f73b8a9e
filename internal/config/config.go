package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"github.com/dyluth/blud/pkg/bloodtype"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for configuration when --config is not given.
const DefaultPath = "blud.yml"

// Supported output formats for single-result commands.
const (
	FormatDefault = "default"
	FormatTable   = "table"
	FormatJSON    = "json"
)

const (
	defaultPrecision = 2
	maxPrecision     = 10
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// OutputConfig controls how results are rendered
type OutputConfig struct {
	Format    string `yaml:"format,omitempty"`    // default, table or json
	Precision *int   `yaml:"precision,omitempty"` // Decimal places for percentages (default = 2)
}

// ChartConfig controls the colour swatches shown next to each blood type
type ChartConfig struct {
	Colors []string `yaml:"colors,omitempty"` // One hex colour per blood type, in display order
}

// BludConfig represents the top-level blud.yml configuration
type BludConfig struct {
	Version       string              `yaml:"version"`
	Output        *OutputConfig       `yaml:"output,omitempty"`
	Chart         *ChartConfig        `yaml:"chart,omitempty"`
	Compatibility map[string][]string `yaml:"compatibility,omitempty"` // Donor → recipients override

	table *bloodtype.CompatibilityTable
}

// Default returns a validated configuration with every default applied.
func Default() *BludConfig {
	c := &BludConfig{Version: "1.0"}
	if err := c.Validate(); err != nil {
		// Defaults are static; failing here is a programming error
		panic(fmt.Sprintf("default configuration invalid: %v", err))
	}
	return c
}

// Validate performs strict validation on the configuration and applies
// defaults for omitted sections.
func (c *BludConfig) Validate() error {
	// Required: version
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}

	if c.Output == nil {
		c.Output = &OutputConfig{}
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}

	if c.Chart == nil {
		c.Chart = &ChartConfig{}
	}
	if err := c.Chart.Validate(); err != nil {
		return err
	}

	if len(c.Compatibility) == 0 {
		c.table = bloodtype.DefaultCompatibility()
		return nil
	}

	table, err := bloodtype.NewCompatibilityTable(c.Compatibility)
	if err != nil {
		return fmt.Errorf("compatibility: %w", err)
	}
	c.table = table

	return nil
}

// Validate checks the output section and fills in defaults
func (o *OutputConfig) Validate() error {
	if o.Format == "" {
		o.Format = FormatDefault
	}
	switch o.Format {
	case FormatDefault, FormatTable, FormatJSON:
	default:
		return fmt.Errorf("output.format: invalid format: %s (must be 'default', 'table' or 'json')", o.Format)
	}

	if o.Precision == nil {
		precision := defaultPrecision
		o.Precision = &precision
	}
	if *o.Precision < 0 || *o.Precision > maxPrecision {
		return fmt.Errorf("output.precision must be between 0 and %d, got %d", maxPrecision, *o.Precision)
	}

	return nil
}

// Validate checks the chart section and fills in the default palette
func (ch *ChartConfig) Validate() error {
	if len(ch.Colors) == 0 {
		ch.Colors = bloodtype.Palette(len(bloodtype.All()))
		return nil
	}

	if len(ch.Colors) != len(bloodtype.All()) {
		return fmt.Errorf("chart.colors must list exactly %d colours, got %d", len(bloodtype.All()), len(ch.Colors))
	}
	for i, color := range ch.Colors {
		if !hexColor.MatchString(color) {
			return fmt.Errorf("chart.colors[%d]: invalid colour %q (expected #RRGGBB)", i, color)
		}
	}

	return nil
}

// CompatibilityTable returns the donor table in effect. Validate must have
// been called first; Load and Default do this.
func (c *BludConfig) CompatibilityTable() *bloodtype.CompatibilityTable {
	if c.table == nil {
		return bloodtype.DefaultCompatibility()
	}
	return c.table
}

// Precision returns the configured number of decimal places.
func (c *BludConfig) Precision() int {
	if c.Output == nil || c.Output.Precision == nil {
		return defaultPrecision
	}
	return *c.Output.Precision
}

// Load reads and validates blud.yml from the specified path
func Load(path string) (*BludConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config BludConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// LoadOrDefault behaves like Load but returns the defaults when the file
// does not exist. The boolean reports whether a file was read.
func LoadOrDefault(path string) (*BludConfig, bool, error) {
	config, err := Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), false, nil
		}
		return nil, false, err
	}
	return config, true, nil
}
