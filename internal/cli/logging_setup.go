package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/pegada/internal/config"
	"github.com/rshade/pegada/internal/logging"
)

// setupLogging configures logging from the loaded configuration and the
// --debug flag, and stores the logger in the command context. A broken
// configuration falls back to the defaults so the error can still be
// reported through a working logger.
func setupLogging(cmd *cobra.Command, a *app) logging.LogPathResult {
	cfg := a.cfg
	if cfg == nil {
		cfg = config.Default()
	}
	loggingCfg := cfg.Logging.ToLoggingConfig()

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
		loggingCfg.Output = logging.OutputStderr
		loggingCfg.File = ""
		loggingCfg.Caller = true
	}

	result := logging.NewLoggerWithPath(loggingCfg)
	logger := logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := logger.WithContext(cmd.Context())
	cmd.SetContext(ctx)

	logger.Debug().
		Ctx(ctx).
		Str("command", cmd.CommandPath()).
		Str("project_dir", a.projectDir).
		Msg("command started")
	if a.cfgErr != nil {
		logger.Debug().Ctx(ctx).Err(a.cfgErr).Msg("configuration could not be loaded")
	}

	return result
}
