// Package cli implements the pegada command line.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/pegada/internal/config"
	"github.com/rshade/pegada/internal/logging"
)

// isTerminal reports whether r is an *os.File attached to a terminal.
func isTerminal(r any) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// app holds the state resolved by the root command before any subcommand
// runs.
type app struct {
	cfg        *config.Config
	cfgErr     error
	projectDir string
	logResult  *logging.LogPathResult
}

// config returns the loaded configuration, or the load error. Commands
// that must work with a broken configuration read a.cfgErr directly.
func (a *app) config() (*config.Config, error) {
	if a.cfgErr != nil {
		return nil, a.cfgErr
	}
	return a.cfg, nil
}

// NewRootCmd creates the root Cobra command for the pegada CLI.
func NewRootCmd(ver string) *cobra.Command {
	a := &app{}
	var projectDirFlag string

	cmd := &cobra.Command{
		Use:           "pegada",
		Short:         "Carbon footprint calculator",
		Long:          "Pegada: estimate annual carbon emissions (tCO2e) from household activity answers",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}
			a.projectDir = config.ResolveProjectDir(cmd.Context(), projectDirFlag, wd)
			a.cfg, a.cfgErr = config.Load(cmd.Context(), a.projectDir)

			result := setupLogging(cmd, a)
			a.logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return a.logResult.Close()
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&projectDirFlag, "project-dir", "",
		"project directory holding .pegada/config.yaml (default: walk up from the working directory)")
	cmd.AddCommand(newCalculateCmd(a), newFactorsCmd(a), newConfigCmd(a))

	return cmd
}

const rootCmdExample = `  # Calculate the footprint of one household
  pegada calculate household.yaml

  # Read answers from stdin and print JSON
  cat household.yaml | pegada calculate --output json

  # Export the report and draw a bar chart
  pegada calculate household.yaml --export report.json --chart footprint.png

  # Browse the report interactively
  pegada calculate household.yaml --interactive

  # List the emission factors in use
  pegada factors

  # Initialize configuration
  pegada config init`
