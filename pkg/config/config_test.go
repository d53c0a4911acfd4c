package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyrmon/pyrmon/pkg/config"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	assert.Equal(t, "mcp_results", cfg.ResultsDir)
	assert.Equal(t, 10, cfg.MaxDisplay)
	assert.Equal(t, "auto", cfg.Color)
	assert.Equal(t, []string{"pyright"}, cfg.Analyzer.Command)
	assert.Empty(t, cfg.Validate(), "defaults validate cleanly")
}

func TestValidate_CorrectsAndWarns(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.MaxDisplay = -3
	cfg.Color = "rainbow"
	cfg.Analyzer.Command = nil

	warnings := cfg.Validate()
	require.Len(t, warnings, 3)

	assert.Equal(t, 10, cfg.MaxDisplay)
	assert.Equal(t, "auto", cfg.Color)
	assert.Equal(t, []string{"pyright"}, cfg.Analyzer.Command)
}
