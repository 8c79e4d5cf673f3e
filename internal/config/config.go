// Package config loads pegada settings from ~/.pegada/config.yaml, an
// optional project overlay and PEGADA_* environment variables.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/rshade/pegada/internal/greenops"
	"github.com/rshade/pegada/internal/logging"
	"github.com/rshade/pegada/internal/report"
)

// Environment variables and file names.
const (
	EnvHome       = "PEGADA_HOME"
	EnvProjectDir = "PEGADA_PROJECT_DIR"
	EnvPrefix     = "PEGADA_"

	DirName  = ".pegada"
	FileName = "config.yaml"

	maxPrecision = 6
	dirPerm      = 0o750
	filePerm     = 0o600
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = constError("invalid configuration")

	// ErrConfigExists is returned by WriteDefault when the file exists.
	ErrConfigExists = constError("configuration file already exists")
)

// Config is the complete pegada configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output"  envPrefix:"OUTPUT_"`
	Logging LoggingConfig `yaml:"logging" envPrefix:"LOG_"`
	Factors FactorsConfig `yaml:"factors" envPrefix:"FACTORS_"`
	Offset  OffsetConfig  `yaml:"offset"  envPrefix:"OFFSET_"`
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" env:"FORMAT"`
	Precision     int    `yaml:"precision"      env:"PRECISION"`
}

// LoggingConfig controls the zerolog logger.
type LoggingConfig struct {
	Level  string `yaml:"level"          env:"LEVEL"`
	Format string `yaml:"format"         env:"FORMAT"`
	File   string `yaml:"file,omitempty" env:"FILE"`
}

// FactorsConfig points at an emission factor override file.
type FactorsConfig struct {
	File string `yaml:"file,omitempty" env:"FILE"`
}

// OffsetConfig prices carbon offsetting.
type OffsetConfig struct {
	PricePerTonne float64 `yaml:"price_per_tonne" env:"PRICE_PER_TONNE"`
	Currency      string  `yaml:"currency"        env:"CURRENCY"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			DefaultFormat: string(report.OutputTable),
			Precision:     report.DefaultPrecision,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: logging.FormatConsole,
		},
		Offset: OffsetConfig{
			PricePerTonne: greenops.DefaultPricePerTonne,
			Currency:      greenops.DefaultCurrency,
		},
	}
}

// HomeDir returns the global configuration directory: $PEGADA_HOME when
// set, ~/.pegada otherwise.
func HomeDir() (string, error) {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, DirName), nil
}

// Path returns the global configuration file path.
func Path() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Load builds the effective configuration. Sources are applied in order of
// increasing precedence: defaults, global file, project overlay in
// projectDir (may be empty), environment. Missing files are skipped.
func Load(ctx context.Context, projectDir string) (*Config, error) {
	logger := logging.FromContext(ctx)
	cfg := Default()

	globalPath, err := Path()
	if err != nil {
		return nil, err
	}
	if err := mergeIfExists(cfg, globalPath); err != nil {
		return nil, err
	}

	if projectDir != "" {
		overlay := filepath.Join(projectDir, FileName)
		if err := mergeIfExists(cfg, overlay); err != nil {
			return nil, err
		}
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("component", "config").
		Str("global_path", globalPath).
		Str("project_dir", projectDir).
		Msg("configuration loaded")
	return cfg, nil
}

func mergeIfExists(cfg *Config, path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("checking %s: %w", path, err)
	}
	return ShallowMergeYAML(cfg, path)
}

// ApplyEnv overrides cfg with PEGADA_* environment variables, e.g.
// PEGADA_OUTPUT_FORMAT or PEGADA_OFFSET_PRICE_PER_TONNE. Unset variables
// leave the current values in place.
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}
	return nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	var errs []error

	if _, err := report.ParseOutputFormat(c.Output.DefaultFormat); err != nil {
		errs = append(errs, fmt.Errorf("output.default_format: %w", err))
	}
	if c.Output.Precision < 0 || c.Output.Precision > maxPrecision {
		errs = append(errs, fmt.Errorf("output.precision must be between 0 and %d, got %d",
			maxPrecision, c.Output.Precision))
	}

	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
	default:
		errs = append(errs, fmt.Errorf("logging.level %q is not a zerolog level", c.Logging.Level))
	}
	switch c.Logging.Format {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("logging.format must be %s or %s, got %q",
			logging.FormatConsole, logging.FormatJSON, c.Logging.Format))
	}

	if c.Offset.PricePerTonne < 0 {
		errs = append(errs, fmt.Errorf("offset.price_per_tonne must be >= 0, got %g", c.Offset.PricePerTonne))
	}
	if strings.TrimSpace(c.Offset.Currency) == "" {
		errs = append(errs, errors.New("offset.currency must not be empty"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Marshal returns cfg as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}
	return data, nil
}

// WriteDefault writes the default configuration to path, creating parent
// directories. An existing file is kept unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}

	data, err := Default().Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
