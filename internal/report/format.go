package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dyluth/blud/internal/printer"
	"github.com/dyluth/blud/pkg/bloodtype"
	"github.com/olekukonko/tablewriter"
)

// OutputFormat specifies how results are written.
type OutputFormat string

const (
	// OutputFormatDefault prints one "TYPE: PERCENT%" line per blood type
	OutputFormatDefault OutputFormat = "default"

	// OutputFormatTable prints a bordered table with colour swatches
	OutputFormatTable OutputFormat = "table"

	// OutputFormatJSON prints a single pretty-printed JSON document
	OutputFormatJSON OutputFormat = "json"

	// OutputFormatJSONL prints one compact JSON object per line
	OutputFormatJSONL OutputFormat = "jsonl"
)

// ParseOutputFormat converts a flag value into an OutputFormat, checking it
// against the formats a command allows.
func ParseOutputFormat(value string, allowed ...OutputFormat) (OutputFormat, error) {
	for _, f := range allowed {
		if OutputFormat(value) == f {
			return f, nil
		}
	}
	names := make([]string, len(allowed))
	for i, f := range allowed {
		names[i] = string(f)
	}
	return "", fmt.Errorf("unknown format: %s (valid formats: %s)", value, strings.Join(names, ", "))
}

// Options carries presentation settings from configuration.
type Options struct {
	Precision int      // Decimal places for percentages
	Colors    []string // Chart colours in display order
}

// FormatPercent renders a percentage with the given number of decimals.
func FormatPercent(p float64, precision int) string {
	return strconv.FormatFloat(p, 'f', precision, 64) + "%"
}

// FormatDistribution writes the distribution for one pair of parents as
// plain "TYPE: PERCENT%" lines in display order.
func FormatDistribution(w io.Writer, outcome bloodtype.Outcome, opts Options) {
	fmt.Fprintf(w, "Results for mother %s and father %s:\n\n", outcome.Mother, outcome.Father)
	for _, e := range outcome.Distribution.Entries() {
		fmt.Fprintf(w, "%s: %s\n", e.Type, FormatPercent(e.Probability, opts.Precision))
	}
}

// FormatTable writes the distribution as a table with a coloured chart
// swatch beside each type. Returns the number of possible child types.
func FormatTable(w io.Writer, outcome bloodtype.Outcome, opts Options) (int, error) {
	fmt.Fprintf(w, "Results for mother %s and father %s:\n\n", outcome.Mother, outcome.Father)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Type", "Probability", "Chart"})

	rows := make([][]string, 0, 8)
	for _, e := range outcome.Distribution.Entries() {
		rows = append(rows, []string{
			string(e.Type),
			FormatPercent(e.Probability, opts.Precision),
			formatBar(e.Probability, bloodtype.ColorFor(e.Type, opts.Colors)),
		})
	}
	if err := table.Bulk(rows); err != nil {
		return 0, fmt.Errorf("failed to build table: %w", err)
	}
	if err := table.Render(); err != nil {
		return 0, fmt.Errorf("failed to render table: %w", err)
	}

	possible := len(outcome.Distribution.Possible())
	noun := "type"
	if possible != 1 {
		noun = "types"
	}
	fmt.Fprintf(w, "\n%d possible blood %s\n", possible, noun)

	return possible, nil
}

// FormatSingleJSON writes a value as pretty-printed JSON followed by a
// newline.
func FormatSingleJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result to JSON: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}

	fmt.Fprintln(w)

	return nil
}

// FormatJSONL writes outcomes as line-delimited JSON, one per line.
// This format is ideal for streaming and processing with tools like jq.
func FormatJSONL(w io.Writer, outcomes []bloodtype.Outcome) error {
	for _, outcome := range outcomes {
		data, err := json.Marshal(outcome)
		if err != nil {
			return fmt.Errorf("failed to marshal outcome to JSON: %w", err)
		}

		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return fmt.Errorf("failed to write JSONL output: %w", err)
		}
	}

	return nil
}

// Compatibility is the JSON shape of a donor or recipient lookup.
type Compatibility struct {
	Donor      bloodtype.BloodType   `json:"donor,omitempty"`
	Recipient  bloodtype.BloodType   `json:"recipient,omitempty"`
	Recipients []bloodtype.BloodType `json:"recipients,omitempty"`
	Donors     []bloodtype.BloodType `json:"donors,omitempty"`
}

// FormatTypeList writes a heading followed by one blood type per line.
func FormatTypeList(w io.Writer, heading string, types []bloodtype.BloodType) {
	fmt.Fprintf(w, "%s\n\n", heading)
	for _, bt := range types {
		fmt.Fprintf(w, "%s\n", bt)
	}
}

// formatBar draws a ten-cell bar proportional to p, tinted with hex.
func formatBar(p float64, hex string) string {
	cells := int(p/10 + 0.5)
	if cells == 0 {
		return "-"
	}
	return printer.Swatch(hex, strings.Repeat("█", cells))
}
