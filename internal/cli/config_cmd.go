package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/pegada/internal/config"
	"github.com/rshade/pegada/internal/logging"
)

// newConfigCmd creates the config command group.
func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		newConfigInitCmd(a), newConfigShowCmd(a),
		newConfigValidateCmd(a), newConfigPathCmd(a),
	)
	return cmd
}

// newConfigInitCmd creates the config init command.
func newConfigInitCmd(a *app) *cobra.Command {
	var (
		force   bool
		project bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a configuration file with default values.

By default the global file ~/.pegada/config.yaml (or $PEGADA_HOME/config.yaml)
is written. With --project the file is written to the project directory
instead: the one given by --project-dir or PEGADA_PROJECT_DIR, the nearest
existing project, or ./.pegada.`,
		Example: `  # Create global configuration
  pegada config init

  # Create project configuration in the current directory
  pegada config init --project

  # Overwrite an existing file
  pegada config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := initTarget(a, project)
			if err != nil {
				return err
			}
			if err := config.WriteDefault(path, force); err != nil {
				return err
			}
			logging.FromContext(cmd.Context()).Info().
				Str("component", "cli").
				Str("path", path).
				Msg("configuration initialized")
			cmd.Printf("Configuration initialized at %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	cmd.Flags().BoolVar(&project, "project", false, "write project configuration instead of the global file")

	return cmd
}

func initTarget(a *app, project bool) (string, error) {
	if !project {
		return config.Path()
	}
	dir := a.projectDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving working directory: %w", err)
		}
		dir = filepath.Join(wd, config.DirName)
	}
	return filepath.Join(dir, config.FileName), nil
}

// newConfigShowCmd creates the config show command.
func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long:  "Prints the configuration after merging defaults, the global file, the project file and PEGADA_* variables.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			cmd.Print(string(data))
			return nil
		},
	}
}

// newConfigValidateCmd creates the config validate command.
func newConfigValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the current configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfgErr != nil {
				return fmt.Errorf("configuration validation failed: %w", a.cfgErr)
			}
			if a.cfg.Factors.File != "" {
				if _, err := loadFactorTable(cmd.Context(), a.cfg, ""); err != nil {
					return fmt.Errorf("configuration validation failed: %w", err)
				}
			}
			cmd.Println("Configuration is valid")
			return nil
		},
	}
}

// newConfigPathCmd creates the config path command.
func newConfigPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file locations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			global, err := config.Path()
			if err != nil {
				return err
			}
			cmd.Printf("global:  %s\n", global)
			if a.projectDir != "" {
				cmd.Printf("project: %s\n", filepath.Join(a.projectDir, config.FileName))
			} else {
				cmd.Println("project: (none)")
			}
			return nil
		},
	}
}
