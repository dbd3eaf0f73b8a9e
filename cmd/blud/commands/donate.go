package commands

import (
	"fmt"
	"log"

	"github.com/dyluth/blud/internal/printer"
	"github.com/dyluth/blud/internal/report"
	"github.com/spf13/cobra"
)

var (
	donateOutputFormat  string
	receiveOutputFormat string
)

var donateCmd = &cobra.Command{
	Use:   "donate DONOR",
	Short: "List the blood types a donor can give to",
	Long: `List the recipient blood types that can safely receive blood from DONOR.

O- is the universal donor and can give to every blood type.

The table comes from the compatibility section of blud.yml, or the
built-in table if none is configured.

Examples:
  blud donate O-
  blud donate A+ --output=json`,
	Args: cobra.ExactArgs(1),
	RunE: runDonate,
}

var receiveCmd = &cobra.Command{
	Use:   "receive RECIPIENT",
	Short: "List the blood types a recipient can receive from",
	Long: `List the donor blood types whose blood RECIPIENT can safely receive.

AB+ is the universal recipient and can receive from every blood type.

Examples:
  blud receive AB+
  blud receive O- --output=json`,
	Args: cobra.ExactArgs(1),
	RunE: runReceive,
}

func init() {
	donateCmd.Flags().StringVarP(&donateOutputFormat, "output", "o", "", "Output format: default or json")
	receiveCmd.Flags().StringVarP(&receiveOutputFormat, "output", "o", "", "Output format: default or json")
	rootCmd.AddCommand(donateCmd)
	rootCmd.AddCommand(receiveCmd)
}

func runDonate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	format, err := outputFormat(cmd, donateOutputFormat, cfg.Output.Format,
		report.OutputFormatDefault, report.OutputFormatJSON)
	if err != nil {
		return err
	}

	donor, err := parseArg("Donor", args[0])
	if err != nil {
		return err
	}

	recipients, err := cfg.CompatibilityTable().Recipients(donor)
	if err != nil {
		return fmt.Errorf("failed to look up recipients: %w", err)
	}
	log.Printf("[DEBUG] Donor %s has %d compatible recipients", donor, len(recipients))

	w := printer.Stdout()
	if format == report.OutputFormatJSON {
		return report.FormatSingleJSON(w, report.Compatibility{Donor: donor, Recipients: recipients})
	}
	report.FormatTypeList(w, fmt.Sprintf("%s can donate to:", donor), recipients)
	return nil
}

func runReceive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	format, err := outputFormat(cmd, receiveOutputFormat, cfg.Output.Format,
		report.OutputFormatDefault, report.OutputFormatJSON)
	if err != nil {
		return err
	}

	recipient, err := parseArg("Recipient", args[0])
	if err != nil {
		return err
	}

	donors, err := cfg.CompatibilityTable().Donors(recipient)
	if err != nil {
		return fmt.Errorf("failed to look up donors: %w", err)
	}
	log.Printf("[DEBUG] Recipient %s has %d compatible donors", recipient, len(donors))

	w := printer.Stdout()
	if format == report.OutputFormatJSON {
		return report.FormatSingleJSON(w, report.Compatibility{Recipient: recipient, Donors: donors})
	}
	report.FormatTypeList(w, fmt.Sprintf("%s can receive from:", recipient), donors)
	return nil
}
