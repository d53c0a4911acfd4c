package configloader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyrmon/pyrmon/internal/configloader"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	t.Parallel()

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir: t.TempDir(),
		IgnoreEnv:  true,
	})
	require.NoError(t, err)

	assert.Empty(t, result.LoadedFrom)
	assert.Equal(t, "mcp_results", result.Config.ResultsDir)
	assert.Equal(t, 10, result.Config.MaxDisplay)
	assert.Empty(t, result.Warnings)
}

func TestLoad_ProjectFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := `
results_dir: analysis_out
max_display: 25
analyzer:
  command: [npx, pyright]
`
	path := filepath.Join(dir, ".pyrmon.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir: dir,
		IgnoreEnv:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, path, result.LoadedFrom)
	assert.Equal(t, "analysis_out", result.Config.ResultsDir)
	assert.Equal(t, 25, result.Config.MaxDisplay)
	assert.Equal(t, []string{"npx", "pyright"}, result.Config.Analyzer.Command)

	// Unset keys keep their defaults.
	assert.Equal(t, "auto", result.Config.Color)
	assert.Equal(t, []string{"npm", "install", "-g", "pyright"}, result.Config.Analyzer.Install)
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	t.Parallel()

	_, err := configloader.Load(context.Background(), configloader.LoadOptions{
		ExplicitPath: filepath.Join(t.TempDir(), "nope.yaml"),
		IgnoreEnv:    true,
	})
	assert.Error(t, err)
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".pyrmon.yaml"), []byte("max_display: [oops"), 0644))

	_, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir: dir,
		IgnoreEnv:  true,
	})
	assert.Error(t, err)
}

func TestLoad_ValidationWarnings(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".pyrmon.yaml"),
		[]byte("max_display: -1\ncolor: rainbow\n"), 0644))

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir: dir,
		IgnoreEnv:  true,
	})
	require.NoError(t, err)

	assert.Len(t, result.Warnings, 2)
	assert.Equal(t, 10, result.Config.MaxDisplay)
	assert.Equal(t, "auto", result.Config.Color)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	// Not parallel: mutates process environment.
	t.Setenv("PYRMON_RESULTS_DIR", "env_results")
	t.Setenv("PYRMON_MAX_DISPLAY", "3")
	t.Setenv("PYRMON_ANALYZER_COMMAND", "npx pyright")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".pyrmon.yaml"),
		[]byte("results_dir: file_results\n"), 0644))

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{WorkingDir: dir})
	require.NoError(t, err)

	assert.Equal(t, "env_results", result.Config.ResultsDir)
	assert.Equal(t, 3, result.Config.MaxDisplay)
	assert.Equal(t, []string{"npx", "pyright"}, result.Config.Analyzer.Command)
}

func TestLoad_EnvBadInteger(t *testing.T) {
	t.Setenv("PYRMON_MAX_DISPLAY", "lots")

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir: t.TempDir(),
	})
	require.NoError(t, err)

	require.NotEmpty(t, result.Warnings)
	assert.Equal(t, 10, result.Config.MaxDisplay, "bad value ignored, default kept")
}

func TestLoad_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := configloader.Load(ctx, configloader.LoadOptions{WorkingDir: t.TempDir()})
	assert.ErrorIs(t, err, context.Canceled)
}
