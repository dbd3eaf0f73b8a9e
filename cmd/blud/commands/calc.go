package commands

import (
	"fmt"
	"log"

	"github.com/dyluth/blud/internal/filter"
	"github.com/dyluth/blud/internal/printer"
	"github.com/dyluth/blud/internal/report"
	"github.com/dyluth/blud/pkg/bloodtype"
	"github.com/spf13/cobra"
)

var (
	calcOutputFormat string
	calcAll          bool
	calcMother       string
	calcFather       string
	calcChild        string
	calcMin          float64
)

var calcCmd = &cobra.Command{
	Use:   "calc MOTHER FATHER",
	Short: "Compute a child's blood type probabilities",
	Long: `Compute the probability of each of the eight blood types for a child,
given the blood types of the mother and father.

Pair Mode (MOTHER FATHER):
  Displays the distribution for one pair of parents.

Grid Mode (--all):
  Computes every one of the 64 parent combinations.

Grid Filters (grid mode only):
  --mother - Mother's blood type (glob pattern: "A*", "*-")
  --father - Father's blood type (glob pattern)
  --child  - Only pairs that can have a child of this blood type
  --min    - Minimum percentage for --child

Output Formats:
  default - One "TYPE: PERCENT%" line per blood type
  table   - Table with a coloured chart bar per blood type
  json    - Pretty-printed JSON document
  jsonl   - Line-delimited JSON, one pair per line (grid mode only)

Blood types are one of: A+, A-, B+, B-, AB+, AB-, O+, O-.

Examples:
  # Both parents AB+
  blud calc AB+ AB+

  # Show a chart table
  blud calc A- B+ --output=table

  # Export every combination for processing with jq
  blud calc --all | jq '.distribution["AB+"]'

  # Which Rh-negative fathers can have an O- child with an A mother?
  blud calc --all --mother="A*" --father="*-" --child=O-`,
	Args: func(cmd *cobra.Command, args []string) error {
		if calcAll {
			if len(args) != 0 {
				return printer.Error(
					"too many arguments",
					"--all computes every combination and takes no blood types.",
					[]string{"Remove the arguments:\n  blud calc --all"},
				)
			}
			return nil
		}
		if len(args) != 2 {
			return printer.Error(
				"expected two blood types",
				fmt.Sprintf("Got %d argument(s); calc needs the mother's and father's blood types.", len(args)),
				[]string{"Example:\n  blud calc A+ O-", "Compute every combination:\n  blud calc --all"},
			)
		}
		return nil
	},
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().StringVarP(&calcOutputFormat, "output", "o", "", "Output format: default, table, json (jsonl with --all)")
	calcCmd.Flags().BoolVar(&calcAll, "all", false, "Compute all 64 parent combinations")

	// Grid filters
	calcCmd.Flags().StringVar(&calcMother, "mother", "", "Filter by mother's blood type (glob pattern, --all only)")
	calcCmd.Flags().StringVar(&calcFather, "father", "", "Filter by father's blood type (glob pattern, --all only)")
	calcCmd.Flags().StringVar(&calcChild, "child", "", "Only pairs that can have this child blood type (--all only)")
	calcCmd.Flags().Float64Var(&calcMin, "min", 0, "Minimum percentage for --child (--all only)")
	rootCmd.AddCommand(calcCmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if calcAll {
		return runCalcAll(cmd)
	}

	if calcMother != "" || calcFather != "" || calcChild != "" || calcMin != 0 {
		return printer.Error(
			"filters require --all",
			"--mother, --father, --child and --min filter the full grid of combinations.",
			[]string{"Add --all:\n  blud calc --all --child=O-"},
		)
	}

	format, err := outputFormat(cmd, calcOutputFormat, cfg.Output.Format,
		report.OutputFormatDefault, report.OutputFormatTable, report.OutputFormatJSON)
	if err != nil {
		return err
	}

	mother, err := parseArg("Mother", args[0])
	if err != nil {
		return err
	}
	father, err := parseArg("Father", args[1])
	if err != nil {
		return err
	}

	log.Printf("[DEBUG] Computing distribution mother=%s father=%s", mother, father)

	dist, err := bloodtype.Compute(mother, father)
	if err != nil {
		return fmt.Errorf("failed to compute distribution: %w", err)
	}
	outcome := bloodtype.Outcome{Mother: mother, Father: father, Distribution: dist}

	w := printer.Stdout()
	switch format {
	case report.OutputFormatDefault:
		report.FormatDistribution(w, outcome, reportOptions(cfg))
	case report.OutputFormatTable:
		if _, err := report.FormatTable(w, outcome, reportOptions(cfg)); err != nil {
			return err
		}
	case report.OutputFormatJSON:
		if err := report.FormatSingleJSON(w, outcome); err != nil {
			return err
		}
	}

	return nil
}

func runCalcAll(cmd *cobra.Command) error {
	// The configured format applies to single results, so grid mode ignores it
	format, err := outputFormat(cmd, calcOutputFormat, "",
		report.OutputFormatJSONL, report.OutputFormatJSON)
	if err != nil {
		return err
	}

	criteria, err := gridCriteria()
	if err != nil {
		return err
	}

	outcomes := criteria.Apply(bloodtype.ComputeAll())
	log.Printf("[DEBUG] %d parent combinations matched filters", len(outcomes))

	w := printer.Stdout()
	if format == report.OutputFormatJSON {
		return report.FormatSingleJSON(w, outcomes)
	}
	return report.FormatJSONL(w, outcomes)
}

// gridCriteria builds and validates the grid filters from flags
func gridCriteria() (*filter.Criteria, error) {
	criteria := &filter.Criteria{
		MotherGlob:     calcMother,
		FatherGlob:     calcFather,
		MinProbability: calcMin,
	}

	if calcChild != "" {
		child, err := parseArg("Child", calcChild)
		if err != nil {
			return nil, err
		}
		criteria.Child = child
	} else if calcMin != 0 {
		return nil, printer.Error(
			"--min requires --child",
			"A minimum percentage only applies to a specific child blood type.",
			[]string{"Example:\n  blud calc --all --child=O+ --min=50"},
		)
	}

	if calcMin < 0 || calcMin > 100 {
		return nil, printer.Error(
			"invalid --min",
			fmt.Sprintf("--min must be between 0 and 100, got %g", calcMin),
			nil,
		)
	}

	if err := criteria.Validate(); err != nil {
		return nil, printer.Error(
			"invalid filter",
			err.Error(),
			[]string{`Use glob patterns like "A*" or "*-"`},
		)
	}

	return criteria, nil
}
