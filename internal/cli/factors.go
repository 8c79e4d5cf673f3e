package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/pegada/internal/calculator"
	"github.com/rshade/pegada/internal/factors"
	"github.com/rshade/pegada/internal/report"
)

// factorListing is the structured form of the factors command output.
type factorListing struct {
	Profile calculator.Profile `json:"profile" yaml:"profile"`
	Version string             `json:"version" yaml:"version"`
	Entries []factors.Entry    `json:"entries" yaml:"entries"`
}

// newFactorsCmd creates the factors command.
func newFactorsCmd(a *app) *cobra.Command {
	var (
		profileName string
		output      string
		factorsFile string
	)

	cmd := &cobra.Command{
		Use:   "factors",
		Short: "List the emission factors in use",
		Example: `  # Individual factors, including configured overrides
  pegada factors

  # Organizational factors as JSON
  pegada factors --profile pj --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			profile, err := calculator.ParseProfile(profileName)
			if err != nil {
				return err
			}
			format, err := report.ParseOutputFormat(output)
			if err != nil {
				return err
			}

			listing := factorListing{Profile: profile}
			switch profile {
			case calculator.ProfileOrganization:
				org := factors.Organization()
				listing.Version = org.Version()
				listing.Entries = org.Entries()
			default:
				table, loadErr := loadFactorTable(cmd.Context(), cfg, factorsFile)
				if loadErr != nil {
					return loadErr
				}
				listing.Version = table.Version()
				listing.Entries = table.Entries()
			}
			return renderFactors(cmd.OutOrStdout(), format, listing)
		},
	}

	cmd.Flags().StringVar(&profileName, "profile", string(calculator.ProfileIndividual),
		"factor table: individual (pf) or organization (pj)")
	cmd.Flags().StringVarP(&output, "output", "o", string(report.OutputTable), "output format: table, json or yaml")
	cmd.Flags().StringVar(&factorsFile, "factors", "", "emission factor override file (default from config)")

	return cmd
}

func renderFactors(w io.Writer, format report.OutputFormat, listing factorListing) error {
	switch format {
	case report.OutputJSON, report.OutputNDJSON:
		encoder := json.NewEncoder(w)
		if format == report.OutputJSON {
			encoder.SetIndent("", "  ")
		}
		return encoder.Encode(listing)
	case report.OutputYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2) //nolint:mnd // Standard YAML indentation.
		if err := encoder.Encode(listing); err != nil {
			return err
		}
		return encoder.Close()
	case report.OutputTable:
		return renderFactorTable(w, listing)
	default:
		return fmt.Errorf("%w: %q", report.ErrUnsupportedFormat, format)
	}
}

func renderFactorTable(w io.Writer, listing factorListing) error {
	fmt.Fprintf(w, "%s factors, version %s (tCO2e per unit)\n\n", listing.Profile.Label(), listing.Version)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd // Column padding.
	fmt.Fprintln(tw, "CATEGORY\tGROUP\tKEY\tVALUE")
	fmt.Fprintln(tw, "--------\t-----\t---\t-----")
	for _, e := range listing.Entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			e.Category, dash(e.Group), dash(e.Key), strconv.FormatFloat(e.Value, 'g', -1, 64))
	}
	return tw.Flush()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
