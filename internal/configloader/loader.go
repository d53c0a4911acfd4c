// Package configloader resolves pyrmon configuration from a project config
// file, environment variables, and defaults. CLI flags are applied on top by
// the command layer, giving the precedence flags > env > file > defaults.
package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pyrmon/pyrmon/pkg/config"
)

// Config file names searched in the working directory, in order.
//
//nolint:gochecknoglobals // Read-only lookup table.
var configFileNames = []string{".pyrmon.yaml", "pyrmon.yaml"}

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory searched for a project config file.
	// Defaults to the current working directory.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config).
	// When set, discovery is skipped and a missing file is an error.
	ExplicitPath string

	// IgnoreEnv skips PYRMON_* environment variables.
	IgnoreEnv bool
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	Config     *config.Config
	LoadedFrom string
	Warnings   []string
}

// fileConfig mirrors config.Config with pointer fields so absent keys do not
// clobber defaults during merge.
type fileConfig struct {
	ProjectRoot *string `yaml:"project_root"`
	ResultsDir  *string `yaml:"results_dir"`
	MaxDisplay  *int    `yaml:"max_display"`
	Color       *string `yaml:"color"`
	LogLevel    *string `yaml:"log_level"`
	Analyzer    struct {
		Command []string `yaml:"command"`
		Install []string `yaml:"install"`
	} `yaml:"analyzer"`
}

// Load resolves configuration for a run.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load config: %w", ctx.Err())
	default:
	}

	result := &LoadResult{Config: config.Default()}

	path, err := resolvePath(opts)
	if err != nil {
		return nil, err
	}

	if path != "" {
		if err := mergeFile(result.Config, path); err != nil {
			return nil, err
		}
		result.LoadedFrom = path
	}

	if !opts.IgnoreEnv {
		result.Warnings = append(result.Warnings, applyEnv(result.Config)...)
	}

	result.Warnings = append(result.Warnings, result.Config.Validate()...)

	return result, nil
}

func resolvePath(opts LoadOptions) (string, error) {
	if opts.ExplicitPath != "" {
		if _, err := os.Stat(opts.ExplicitPath); err != nil {
			return "", fmt.Errorf("config file %s: %w", opts.ExplicitPath, err)
		}
		return opts.ExplicitPath, nil
	}

	workDir := opts.WorkingDir
	if workDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		workDir = cwd
	}

	for _, name := range configFileNames {
		candidate := filepath.Join(workDir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", nil
}

func mergeFile(cfg *config.Config, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var overlay fileConfig
	if err := yaml.Unmarshal(content, &overlay); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if overlay.ProjectRoot != nil {
		cfg.ProjectRoot = *overlay.ProjectRoot
	}
	if overlay.ResultsDir != nil {
		cfg.ResultsDir = *overlay.ResultsDir
	}
	if overlay.MaxDisplay != nil {
		cfg.MaxDisplay = *overlay.MaxDisplay
	}
	if overlay.Color != nil {
		cfg.Color = *overlay.Color
	}
	if overlay.LogLevel != nil {
		cfg.LogLevel = *overlay.LogLevel
	}
	if len(overlay.Analyzer.Command) > 0 {
		cfg.Analyzer.Command = overlay.Analyzer.Command
	}
	if len(overlay.Analyzer.Install) > 0 {
		cfg.Analyzer.Install = overlay.Analyzer.Install
	}

	return nil
}
