package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/pegada/internal/activity"
	"github.com/rshade/pegada/internal/calculator"
	"github.com/rshade/pegada/internal/config"
	"github.com/rshade/pegada/internal/engine"
	"github.com/rshade/pegada/internal/factors"
	"github.com/rshade/pegada/internal/greenops"
	"github.com/rshade/pegada/internal/logging"
	"github.com/rshade/pegada/internal/report"
	"github.com/rshade/pegada/internal/tui"
)

// ErrNoInput is returned when calculate gets no file and stdin is a terminal.
const ErrNoInput = constError("no activity file given and stdin is a terminal")

type constError string

func (e constError) Error() string { return string(e) }

const maxPrecision = 6

type calculateFlags struct {
	profile     string
	output      string
	precision   int
	factorsFile string
	export      string
	chart       string
	interactive bool
}

// newCalculateCmd creates the calculate command.
func newCalculateCmd(a *app) *cobra.Command {
	var flags calculateFlags

	cmd := &cobra.Command{
		Use:   "calculate [files...]",
		Short: "Calculate the annual carbon footprint of activity records",
		Long: `Reads one or more activity records (YAML or JSON) and prints the annual
emissions in tCO2e per category, with everyday equivalencies and an offset
estimate.

Use "-" or pipe a record on stdin to read from standard input. A file may hold
several YAML documents; each one is reported separately.`,
		Example: `  # Print a table
  pegada calculate household.yaml

  # Several households as NDJSON
  pegada calculate a.yaml b.yaml --output ndjson

  # Export to the default file name in the current directory
  pegada calculate household.yaml --export .

  # Use custom emission factors
  pegada calculate household.yaml --factors factors.yaml`,
		Aliases: []string{"calc"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalculate(cmd, a, flags, args)
		},
	}

	cmd.Flags().StringVar(&flags.profile, "profile", string(calculator.ProfileIndividual),
		"calculation profile: individual (pf) or organization (pj)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"output format: table, json, ndjson or yaml (default from config)")
	cmd.Flags().IntVar(&flags.precision, "precision", report.DefaultPrecision,
		"decimals shown for tCO2e values in table output")
	cmd.Flags().StringVar(&flags.factorsFile, "factors", "",
		"emission factor override file (default from config)")
	cmd.Flags().StringVar(&flags.export, "export", "",
		"write the report document to a .json or .yaml file, or a directory for the default name")
	cmd.Flags().StringVar(&flags.chart, "chart", "", "draw a category bar chart to a .png, .svg or .pdf file")
	cmd.Flags().BoolVarP(&flags.interactive, "interactive", "i", false, "browse the report in a terminal UI")

	return cmd
}

func runCalculate(cmd *cobra.Command, a *app, flags calculateFlags, args []string) error {
	cfg, err := a.config()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	profile, err := calculator.ParseProfile(flags.profile)
	if err != nil {
		return err
	}
	if profile == calculator.ProfileOrganization {
		_, orgErr := calculator.CalculateOrganization(nil, nil, nil)
		return orgErr
	}

	format, precision, err := resolveOutput(cmd, cfg, flags)
	if err != nil {
		return err
	}

	table, err := loadFactorTable(ctx, cfg, flags.factorsFile)
	if err != nil {
		return err
	}

	paths := args
	if len(paths) == 0 {
		if isTerminal(cmd.InOrStdin()) {
			return ErrNoInput
		}
		paths = []string{activity.StdinPath}
	}

	eng := engine.New(table, report.OffsetSettings{
		PricePerTonne: cfg.Offset.PricePerTonne,
		Currency:      cfg.Offset.Currency,
	})
	results, err := eng.Run(ctx, paths, cmd.InOrStdin())
	if err != nil {
		return err
	}

	now := time.Now()
	if flags.export != "" {
		if err := exportResults(cmd, results, profile, flags.export, now); err != nil {
			return err
		}
	}
	if flags.chart != "" {
		if err := chartResults(cmd, results, flags.chart); err != nil {
			return err
		}
	}

	if flags.interactive {
		if isTerminal(os.Stdout) {
			stdinUsed := slices.Contains(paths, activity.StdinPath)
			return runInteractive(ctx, results, profile, precision, stdinUsed)
		}
		logging.FromContext(ctx).Warn().
			Str("component", "cli").
			Msg("--interactive needs a terminal; printing the report instead")
	}

	return report.Render(cmd.OutOrStdout(), format, results, precision)
}

// resolveOutput applies --output and --precision over the configured defaults.
func resolveOutput(cmd *cobra.Command, cfg *config.Config, flags calculateFlags) (report.OutputFormat, int, error) {
	name := cfg.Output.DefaultFormat
	if cmd.Flags().Changed("output") {
		name = flags.output
	}
	format, err := report.ParseOutputFormat(name)
	if err != nil {
		return "", 0, err
	}

	precision := cfg.Output.Precision
	if cmd.Flags().Changed("precision") {
		precision = flags.precision
	}
	if precision < 0 || precision > maxPrecision {
		return "", 0, fmt.Errorf("--precision must be between 0 and %d, got %d", maxPrecision, precision)
	}
	return format, precision, nil
}

// loadFactorTable returns the override table named by flagFile or the
// configuration, or the built-in table when neither is set.
func loadFactorTable(ctx context.Context, cfg *config.Config, flagFile string) (*factors.Table, error) {
	path := cfg.Factors.File
	if flagFile != "" {
		path = flagFile
	}
	if path == "" {
		return factors.Default(), nil
	}

	table, err := factors.Load(path)
	if err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info().
		Str("component", "cli").
		Str("file", path).
		Str("version", table.Version()).
		Msg("using emission factor overrides")
	return table, nil
}

func exportResults(
	cmd *cobra.Command,
	results []report.Result,
	profile calculator.Profile,
	target string,
	now time.Time,
) error {
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		target = filepath.Join(target, report.DefaultExportName(now))
	}
	for i, res := range results {
		path := indexedPath(target, i, len(results))
		doc := report.NewDocument(res.Report, profile, now)
		if err := report.Export(path, doc); err != nil {
			return err
		}
		cmd.PrintErrf("Report exported to %s\n", path)
	}
	return nil
}

func chartResults(cmd *cobra.Command, results []report.Result, target string) error {
	for i, res := range results {
		path := indexedPath(target, i, len(results))
		if err := report.RenderChart(res.Report, path); err != nil {
			return err
		}
		cmd.PrintErrf("Chart written to %s\n", path)
	}
	return nil
}

// indexedPath returns path unchanged for a single result, and inserts a
// 1-based index before the extension otherwise: report.json becomes
// report-2.json.
func indexedPath(path string, i, n int) string {
	if n <= 1 {
		return path
	}
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-" + strconv.Itoa(i+1) + ext
}

func runInteractive(
	ctx context.Context,
	results []report.Result,
	profile calculator.Profile,
	precision int,
	stdinUsed bool,
) error {
	model := tui.NewReportModel(results, profile, greenops.ReductionTips(), precision)

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if stdinUsed {
		opts = append(opts, tea.WithInputTTY())
	}
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}
	return nil
}
