package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/rshade/pegada/internal/logging"
)

// ResolveProjectDir determines the project-local .pegada directory. It
// checks, in order:
//  1. flagValue (--project-dir)
//  2. PEGADA_PROJECT_DIR
//  3. a walk up from startDir to the nearest directory holding
//     .pegada/config.yaml
//
// The returned path is absolute, or empty when no project was found. The
// global configuration directory is never treated as a project.
func ResolveProjectDir(ctx context.Context, flagValue, startDir string) string {
	if flagValue != "" {
		return toAbsPegadaDir(ctx, flagValue)
	}
	if envDir := os.Getenv(EnvProjectDir); envDir != "" {
		return toAbsPegadaDir(ctx, envDir)
	}

	root, err := FindProject(startDir)
	if err != nil {
		return ""
	}
	dir := filepath.Join(root, DirName)
	if home, homeErr := HomeDir(); homeErr == nil && sameDir(home, dir) {
		return ""
	}
	return dir
}

// ErrNoProject is returned by FindProject when no project is found.
const ErrNoProject = constError("no pegada project found")

// FindProject walks up from startDir and returns the first directory
// containing .pegada/config.yaml.
func FindProject(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}
	for {
		if _, statErr := os.Stat(filepath.Join(dir, DirName, FileName)); statErr == nil {
			return dir, nil
		} else if !errors.Is(statErr, os.ErrNotExist) {
			return "", statErr
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoProject
		}
		dir = parent
	}
}

func sameDir(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}

// toAbsPegadaDir converts dir to an absolute path ending in ".pegada".
func toAbsPegadaDir(ctx context.Context, dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		logging.FromContext(ctx).Warn().
			Str("component", "config").
			Err(err).
			Str("dir", dir).
			Msg("failed to resolve absolute path for project directory")
		abs = dir
	}
	if filepath.Base(abs) == DirName {
		return abs
	}
	return filepath.Join(abs, DirName)
}
