// Package config defines pyrmon's configuration model.
package config

import (
	"fmt"
	"slices"
)

// Defaults for unset configuration values.
const (
	DefaultResultsDir = "mcp_results"
	DefaultMaxDisplay = 10
	DefaultColor      = "auto"
	DefaultLogLevel   = "info"
)

// AnalyzerConfig holds the external commands the monitor shells out to.
type AnalyzerConfig struct {
	// Command is the analyzer executable and any leading arguments.
	Command []string `yaml:"command"`

	// Install is the package-manager command used to bootstrap the analyzer.
	Install []string `yaml:"install"`
}

// Config is the resolved pyrmon configuration.
// Precedence: CLI flags > environment > config file > defaults.
type Config struct {
	// ProjectRoot is the directory analyzed by project-wide runs and the
	// parent of the results directory. Empty means the working directory.
	ProjectRoot string `yaml:"project_root"`

	// ResultsDir is the results directory name under ProjectRoot.
	ResultsDir string `yaml:"results_dir"`

	// MaxDisplay caps the detailed problem listing.
	MaxDisplay int `yaml:"max_display"`

	// Color controls colorized output: auto, always, never.
	Color string `yaml:"color"`

	// LogLevel sets the structured-log verbosity.
	LogLevel string `yaml:"log_level"`

	Analyzer AnalyzerConfig `yaml:"analyzer"`
}

// Default returns a Config with stock values.
func Default() *Config {
	return &Config{
		ResultsDir: DefaultResultsDir,
		MaxDisplay: DefaultMaxDisplay,
		Color:      DefaultColor,
		LogLevel:   DefaultLogLevel,
		Analyzer: AnalyzerConfig{
			Command: []string{"pyright"},
			Install: []string{"npm", "install", "-g", "pyright"},
		},
	}
}

// Validate normalizes nonsensical values back to defaults and returns a
// warning per correction. Configuration problems degrade, they never abort.
func (c *Config) Validate() []string {
	var warnings []string

	if c.MaxDisplay <= 0 {
		warnings = append(warnings,
			fmt.Sprintf("max_display %d is not positive, using %d", c.MaxDisplay, DefaultMaxDisplay))
		c.MaxDisplay = DefaultMaxDisplay
	}

	if !slices.Contains([]string{"auto", "always", "never"}, c.Color) {
		warnings = append(warnings,
			fmt.Sprintf("unknown color mode %q, using %q", c.Color, DefaultColor))
		c.Color = DefaultColor
	}

	if len(c.Analyzer.Command) == 0 {
		warnings = append(warnings, "empty analyzer command, using pyright")
		c.Analyzer.Command = []string{"pyright"}
	}

	if len(c.Analyzer.Install) == 0 {
		warnings = append(warnings, "empty install command, using npm install -g pyright")
		c.Analyzer.Install = []string{"npm", "install", "-g", "pyright"}
	}

	return warnings
}
