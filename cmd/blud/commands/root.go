package commands

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/dyluth/blud/internal/config"
	"github.com/dyluth/blud/internal/printer"
	"github.com/dyluth/blud/internal/report"
	"github.com/dyluth/blud/pkg/bloodtype"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

var (
	configPath string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "blud",
	Short: "Blud - blood type inheritance calculator",
	Long: `Blud computes the probability of each blood type for a child given the
blood types of both parents, and looks up which blood types a donor can
give to.

Results are derived from a simple Mendelian model of the ABO and Rh genes;
they are educational estimates, not medical advice.`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(verbose)
	},
	// Prevent silent success when unknown flags are passed to root command
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	// Enable strict flag parsing - unknown flags will cause an error
	FParseErrWhitelist: cobra.FParseErrWhitelist{},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	// Silence Cobra's default error and usage printing
	// We print formatted colored errors directly in the printer package
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to blud.yml (defaults are used if the file does not exist)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug logging to stderr")
}

// setupLogging routes the standard logger to stderr only in verbose mode
func setupLogging(enabled bool) {
	if enabled {
		log.SetOutput(os.Stderr)
		return
	}
	log.SetOutput(io.Discard)
}

// loadConfig reads --config, falling back to defaults when it is absent
func loadConfig() (*config.BludConfig, error) {
	cfg, found, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, printer.ErrorWithContext(
			"invalid configuration",
			err.Error(),
			map[string]string{"Config": configPath},
			[]string{
				fmt.Sprintf("Fix the file:\n  %s", configPath),
				"Regenerate it with defaults:\n  blud init --force",
			},
		)
	}

	if found {
		log.Printf("[DEBUG] Loaded configuration from %s", configPath)
	} else {
		log.Printf("[DEBUG] No configuration at %s, using defaults", configPath)
	}

	return cfg, nil
}

// parseArg parses a positional blood type argument, printing a friendly
// error that names the argument on failure
func parseArg(name, value string) (bloodtype.BloodType, error) {
	bt, err := bloodtype.Parse(value)
	if err != nil {
		return "", printer.ErrorWithContext(
			"invalid blood type",
			fmt.Sprintf("%q is not one of the eight blood types.", value),
			map[string]string{name: value},
			[]string{fmt.Sprintf("Valid blood types: %s", validLabels())},
		)
	}
	return bt, nil
}

// reportOptions builds formatter settings from configuration
func reportOptions(cfg *config.BludConfig) report.Options {
	return report.Options{
		Precision: cfg.Precision(),
		Colors:    cfg.Chart.Colors,
	}
}

// outputFormat resolves the --output flag. When the flag was not given the
// configured format is used if this command supports it, otherwise the
// first allowed format.
func outputFormat(cmd *cobra.Command, flagValue, configured string, allowed ...report.OutputFormat) (report.OutputFormat, error) {
	value := string(allowed[0])
	if cmd.Flags().Changed("output") {
		value = flagValue
	} else if _, err := report.ParseOutputFormat(configured, allowed...); err == nil {
		value = configured
	}

	format, err := report.ParseOutputFormat(value, allowed...)
	if err != nil {
		names := make([]string, len(allowed))
		for i, f := range allowed {
			names[i] = string(f)
		}
		return "", printer.Error(
			"invalid output format",
			fmt.Sprintf("Unknown format: %s", value),
			[]string{fmt.Sprintf("Valid formats: %s", strings.Join(names, ", "))},
		)
	}
	return format, nil
}

func validLabels() string {
	labels := make([]string, 0, 8)
	for _, bt := range bloodtype.All() {
		labels = append(labels, string(bt))
	}
	return strings.Join(labels, ", ")
}
