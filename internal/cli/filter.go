package cli

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/pyrmon/pyrmon/internal/logging"
	"github.com/pyrmon/pyrmon/pkg/pyright"
)

// newFilterCommand creates the filter subcommand.
func newFilterCommand(flags *rootFlags) *cobra.Command {
	var (
		severity    string
		filePattern string
	)

	cmd := &cobra.Command{
		Use:   "filter [paths...]",
		Short: "Analyze and show only problems matching the given criteria",
		Long: `Run analysis and display only the diagnostics that match every given
criterion. Severity matching is case-insensitive; the file pattern is a
regular expression matched anywhere in the reported file path.

With no paths the whole project is analyzed.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			logger := logging.Default()

			var pattern *regexp.Regexp
			if filePattern != "" {
				compiled, err := regexp.Compile(filePattern)
				if err != nil {
					return fmt.Errorf("invalid file pattern %q: %w", filePattern, err)
				}
				pattern = compiled
			}

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

			opts := pyright.FilterOptions{
				Severity:    severity,
				FilePattern: pattern,
			}

			if len(args) == 0 {
				if err := mon.FilterReport(ctx, "", opts); err != nil {
					logger.Error("project analysis failed", logging.FieldError, err)
				}
				return nil
			}

			for _, path := range args {
				if err := mon.FilterReport(ctx, path, opts); err != nil {
					logger.Error("file analysis failed",
						logging.FieldPath, path,
						logging.FieldError, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&severity, "severity", "", "only show problems with this severity (error, warning, information)")
	cmd.Flags().StringVar(&filePattern, "file-pattern", "", "only show problems whose file path matches this regular expression")

	return cmd
}
