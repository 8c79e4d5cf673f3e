// Command pegada calculates carbon footprints from activity records.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rshade/pegada/internal/cli"
	"github.com/rshade/pegada/internal/config"
	"github.com/rshade/pegada/pkg/version"
)

// Exit codes follow sysexits.h where one applies.
const (
	exitOK     = 0
	exitError  = 1
	exitUsage  = 64
	exitConfig = 78
)

func run() error {
	return cli.NewRootCmd(version.GetVersion()).Execute()
}

// exitCode maps an error returned by run to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, cli.ErrNoInput):
		return exitUsage
	case errors.Is(err, config.ErrInvalidConfig):
		return exitConfig
	default:
		return exitError
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}
