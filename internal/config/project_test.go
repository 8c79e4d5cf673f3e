package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pegada/internal/config"
)

// writeProjectConfig creates root/.pegada/config.yaml.
func writeProjectConfig(t *testing.T, root, content string) {
	t.Helper()
	dir := filepath.Join(root, ".pegada")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))
}

func TestResolveProjectDir_FlagOverridesEnv(t *testing.T) {
	flagDir := t.TempDir()
	t.Setenv(config.EnvProjectDir, t.TempDir())

	got := config.ResolveProjectDir(context.Background(), flagDir, "/does/not/matter")
	assert.Equal(t, filepath.Join(flagDir, ".pegada"), got)
}

func TestResolveProjectDir_Env(t *testing.T) {
	envDir := t.TempDir()
	t.Setenv(config.EnvProjectDir, envDir)

	got := config.ResolveProjectDir(context.Background(), "", "/does/not/matter")
	assert.Equal(t, filepath.Join(envDir, ".pegada"), got)
	assert.True(t, filepath.IsAbs(got))
}

func TestResolveProjectDir_SuffixNotDoubled(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".pegada")
	t.Setenv(config.EnvProjectDir, "")

	assert.Equal(t, dir, config.ResolveProjectDir(context.Background(), dir, ""))
}

func TestResolveProjectDir_WalkUp(t *testing.T) {
	t.Setenv(config.EnvProjectDir, "")
	t.Setenv(config.EnvHome, t.TempDir())

	root := t.TempDir()
	writeProjectConfig(t, root, "output:\n  default_format: json\n")
	sub := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o750))

	got := config.ResolveProjectDir(context.Background(), "", sub)
	assert.Equal(t, filepath.Join(root, ".pegada"), got)
}

func TestResolveProjectDir_NoProject(t *testing.T) {
	t.Setenv(config.EnvProjectDir, "")
	assert.Empty(t, config.ResolveProjectDir(context.Background(), "", t.TempDir()))
}

func TestResolveProjectDir_SkipsGlobalDir(t *testing.T) {
	t.Setenv(config.EnvProjectDir, "")
	home := t.TempDir()
	writeProjectConfig(t, home, "output:\n  precision: 3\n")
	t.Setenv(config.EnvHome, filepath.Join(home, ".pegada"))

	assert.Empty(t, config.ResolveProjectDir(context.Background(), "", home))
}

func TestFindProject(t *testing.T) {
	_, err := config.FindProject(t.TempDir())
	require.ErrorIs(t, err, config.ErrNoProject)
}
