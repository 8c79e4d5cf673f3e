package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/rshade/pegada/internal/calculator"
	"github.com/rshade/pegada/internal/greenops"
)

// OutputFormat selects how results are written.
type OutputFormat string

// Supported output formats.
const (
	OutputTable  OutputFormat = "table"
	OutputJSON   OutputFormat = "json"
	OutputNDJSON OutputFormat = "ndjson"
	OutputYAML   OutputFormat = "yaml"
)

// ErrUnsupportedFormat is returned by ParseOutputFormat.
const ErrUnsupportedFormat = constError("unsupported output format")

// tabwriterPadding is the minimum padding between table columns.
const tabwriterPadding = 2

// DefaultPrecision is the number of decimals shown for tCO2e values.
const DefaultPrecision = 2

// ParseOutputFormat parses a format name case-insensitively.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case OutputTable, OutputJSON, OutputNDJSON, OutputYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (want table, json, ndjson or yaml)", ErrUnsupportedFormat, s)
	}
}

// Result is a calculated report together with its presentation extras.
type Result struct {
	Source        string                       `json:"source" yaml:"source"`
	Report        calculator.Report            `json:"report" yaml:"report"`
	Summary       []Row                        `json:"summary" yaml:"summary"`
	Equivalencies []greenops.EquivalencyResult `json:"equivalencies" yaml:"equivalencies"`
	Offset        greenops.OffsetEstimate      `json:"offset" yaml:"offset"`
}

// OffsetSettings prices offsetting for NewResult.
type OffsetSettings struct {
	PricePerTonne float64
	Currency      string
}

// NewResult derives the summary, equivalencies and offset estimate of r.
// A total the offset cannot be priced for leaves the estimate empty and adds
// a note; only an invalid price is an error.
func NewResult(source string, r calculator.Report, offset OffsetSettings) (Result, error) {
	est, err := greenops.EstimateOffset(r.Total, offset.PricePerTonne, offset.Currency)
	switch {
	case errors.Is(err, greenops.ErrCalculationOverflow):
		r.Notes = append(slices.Clone(r.Notes), "total out of range: offset estimate omitted")
		est = greenops.OffsetEstimate{PricePerTonne: offset.PricePerTonne, Currency: offset.Currency}
	case err != nil:
		return Result{}, fmt.Errorf("estimating offset for %s: %w", source, err)
	}

	eq := greenops.FromTonnes(r.Total).Results
	if eq == nil {
		eq = []greenops.EquivalencyResult{}
	}

	return Result{
		Source:        source,
		Report:        r,
		Summary:       Summarize(r),
		Equivalencies: eq,
		Offset:        est,
	}, nil
}

// Render writes results in the given format. precision applies to the table
// format only.
func Render(w io.Writer, format OutputFormat, results []Result, precision int) error {
	switch format {
	case OutputTable:
		return renderTable(w, results, precision)
	case OutputJSON:
		return renderJSON(w, results)
	case OutputNDJSON:
		return renderNDJSON(w, results)
	case OutputYAML:
		return renderYAML(w, results)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func renderJSON(w io.Writer, results []Result) error {
	if results == nil {
		results = []Result{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(results); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

func renderNDJSON(w io.Writer, results []Result) error {
	for _, res := range results {
		data, err := json.Marshal(res)
		if err != nil {
			return fmt.Errorf("marshaling result: %w", err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return fmt.Errorf("writing NDJSON line: %w", err)
		}
	}
	return nil
}

func renderYAML(w io.Writer, results []Result) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	for _, res := range results {
		if err := encoder.Encode(res); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
	}
	return encoder.Close()
}

func renderTable(w io.Writer, results []Result, precision int) error {
	if precision < 0 {
		precision = DefaultPrecision
	}
	for i, res := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return fmt.Errorf("writing separator: %w", err)
			}
		}
		if err := renderOneTable(w, res, precision); err != nil {
			return fmt.Errorf("rendering %s: %w", res.Source, err)
		}
	}
	return nil
}

func renderOneTable(w io.Writer, res Result, precision int) error {
	if res.Source != "" {
		if _, err := fmt.Fprintf(w, "Source: %s\n", res.Source); err != nil {
			return err
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	if _, err := fmt.Fprintf(tw, "CATEGORY\ttCO2e/YEAR\tSHARE\n--------\t----------\t-----\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range res.Summary {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s%%\n",
			row.Label, greenops.FormatFloat(row.Value, precision), greenops.FormatFloat(row.Percent, 1),
		); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	if _, err := fmt.Fprintf(tw, "TOTAL\t%s\t\n", greenops.FormatFloat(res.Report.Total, precision)); err != nil {
		return fmt.Errorf("writing total: %w", err)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(res.Equivalencies) > 0 {
		if _, err := fmt.Fprintf(w, "\nEquivalent to ~%s km driven by car.\n",
			res.Equivalencies[0].FormattedValue); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Offset: %s (reforestation %s)\n",
		res.Offset.FormattedTotal,
		greenops.FormatCurrency(res.Offset.Reforestation, res.Offset.Currency),
	); err != nil {
		return err
	}
	for _, note := range res.Report.Notes {
		if _, err := fmt.Fprintf(w, "note: %s\n", note); err != nil {
			return err
		}
	}
	return nil
}
