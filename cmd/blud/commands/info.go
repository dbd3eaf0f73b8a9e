package commands

import (
	"github.com/dyluth/blud/internal/printer"
	"github.com/dyluth/blud/pkg/bloodtype"
	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the eight blood types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		for _, bt := range bloodtype.All() {
			printer.Printf("%s %s\n", printer.Swatch(bloodtype.ColorFor(bt, cfg.Chart.Colors), "■"), bt)
		}
		return nil
	},
}

const aboutText = `About Blood Types

Blood types are categorized by the presence or absence of specific antigens
on the surface of red blood cells. The four main blood groups are A, B, AB
and O. Each group is further classified by the Rhesus (Rh) factor into
positive (+) and negative (-).

For example:
  A+   Contains the A antigen and the Rh factor.
  O-   Lacks all antigens and is the universal donor for red blood cells.
  AB+  Has both A and B antigens and is the universal recipient.

Knowing your blood type is critical for safe blood transfusions and organ
transplants.
`

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Explain blood groups and the Rh factor",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printer.Printf("%s", aboutText)
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(aboutCmd)
}
