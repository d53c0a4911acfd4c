// Package cli wires the pyrmon command tree: configuration loading, logger
// setup, and the pyright monitor behind each subcommand.
package cli

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pyrmon/pyrmon/internal/configloader"
	"github.com/pyrmon/pyrmon/internal/logging"
	"github.com/pyrmon/pyrmon/pkg/config"
	"github.com/pyrmon/pyrmon/pkg/monitor"
	"github.com/pyrmon/pyrmon/pkg/pyright"
	"github.com/pyrmon/pyrmon/pkg/reporter"
	"github.com/pyrmon/pyrmon/pkg/results"
)

// BuildInfo carries version metadata injected at build time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// rootFlags holds persistent flag values shared across subcommands.
type rootFlags struct {
	debug       bool
	configPath  string
	color       string
	projectRoot string
	resultsDir  string
	maxDisplay  int
}

// NewRootCommand constructs the pyrmon root command and its subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "pyrmon [paths...]",
		Short: "Monitor Python type errors with pyright",
		Long: `pyrmon runs the pyright static type checker over a project or individual
files, prints a severity summary and the most relevant problems, and saves
the full machine-readable results for later inspection.

With no arguments the whole project is analyzed. With one or more paths each
file is analyzed in turn.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if flags.debug {
				logging.SetLevel("debug")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, flags)
		},
	}

	pf := cmd.PersistentFlags()
	pf.BoolVar(&flags.debug, "debug", false, "enable debug logging")
	pf.StringVar(&flags.configPath, "config", "", "path to config file")
	pf.StringVar(&flags.color, "color", "", "color output: auto, always, never")
	pf.StringVar(&flags.projectRoot, "project-root", "", "project directory to analyze")

	cmd.Flags().StringVar(&flags.resultsDir, "results-dir", "", "directory for saved result files")
	cmd.Flags().IntVar(&flags.maxDisplay, "max-display", 0, "maximum problems shown in detail output")

	cmd.AddCommand(
		newFilterCommand(flags),
		newInstallCommand(flags),
		newVersionCommand(info),
	)

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string, flags *rootFlags) error {
	ctx := commandContext(cmd)
	logger := logging.Default()

	cfg, err := loadConfig(ctx, cmd, flags, logger)
	if err != nil {
		return err
	}

	mon, err := buildMonitor(cmd, cfg, logger)
	if err != nil {
		return err
	}

	if err := mon.EnsureAnalyzer(ctx); err != nil {
		return err
	}

	if len(args) == 0 {
		if _, err := mon.AnalyzeProject(ctx); err != nil {
			logger.Error("project analysis failed", logging.FieldError, err)
		}
		return nil
	}

	for _, path := range args {
		if _, err := mon.AnalyzeFile(ctx, path); err != nil {
			logger.Error("file analysis failed",
				logging.FieldPath, path,
				logging.FieldError, err)
		}
	}
	return nil
}

// loadConfig resolves configuration from file, environment, and flags in
// ascending precedence, logging any validation warnings.
func loadConfig(ctx context.Context, cmd *cobra.Command, flags *rootFlags, logger *log.Logger) (config.Config, error) {
	workingDir, err := os.Getwd()
	if err != nil {
		return config.Config{}, err
	}

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workingDir,
		ExplicitPath: flags.configPath,
	})
	if err != nil {
		return config.Config{}, err
	}
	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}
	if result.LoadedFrom != "" {
		logger.Debug("loaded config", logging.FieldPath, result.LoadedFrom)
	}

	cfg := *result.Config
	applyFlagOverrides(cmd, &cfg, flags)
	for _, warning := range cfg.Validate() {
		logger.Warn(warning)
	}

	// --debug wins over the configured level.
	if !flags.debug {
		logging.SetLevel(cfg.LogLevel)
	}

	return cfg, nil
}

// applyFlagOverrides layers explicitly set flags over the loaded config.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config, flags *rootFlags) {
	if cmd.Flags().Changed("color") {
		cfg.Color = flags.color
	}
	if cmd.Flags().Changed("project-root") {
		cfg.ProjectRoot = flags.projectRoot
	}
	if cmd.Flags().Changed("results-dir") {
		cfg.ResultsDir = flags.resultsDir
	}
	if cmd.Flags().Changed("max-display") {
		cfg.MaxDisplay = flags.maxDisplay
	}
}

// buildMonitor assembles the monitor from configuration.
func buildMonitor(cmd *cobra.Command, cfg config.Config, logger *log.Logger) (*monitor.Monitor, error) {
	root := cfg.ProjectRoot
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		root = wd
	}

	runner := &pyright.ExecRunner{
		AnalyzerCmd: cfg.Analyzer.Command,
		InstallCmd:  cfg.Analyzer.Install,
		Dir:         root,
	}

	rep := reporter.New(reporter.Options{
		Writer:     cmd.OutOrStdout(),
		Color:      cfg.Color,
		MaxDisplay: cfg.MaxDisplay,
	})

	return monitor.New(monitor.Options{
		ProjectRoot: root,
		ResultsDir:  cfg.ResultsDir,
		Analyzer:    pyright.NewClient(runner),
		Store:       results.New(root, cfg.ResultsDir),
		Reporter:    rep,
		Logger:      logger,
	})
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
