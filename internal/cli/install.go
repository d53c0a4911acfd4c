package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pyrmon/pyrmon/internal/logging"
	"github.com/pyrmon/pyrmon/pkg/monitor"
	"github.com/pyrmon/pyrmon/pkg/pyright"
)

// newInstallCommand creates the install subcommand.
func newInstallCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Install the pyright analyzer if it is not already present",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := commandContext(cmd)
			logger := logging.Default()

			cfg, err := loadConfig(ctx, cmd, flags, logger)
			if err != nil {
				return err
			}

			client := pyright.NewClient(&pyright.ExecRunner{
				AnalyzerCmd: cfg.Analyzer.Command,
				InstallCmd:  cfg.Analyzer.Install,
			})

			if client.Available(ctx) {
				fmt.Fprintln(cmd.OutOrStdout(), "pyright is already installed")
				return nil
			}

			logger.Info("installing pyright")
			if err := client.Install(ctx); err != nil {
				return fmt.Errorf("%w: %w", monitor.ErrAnalyzerUnavailable, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "pyright installed successfully")
			return nil
		},
	}
}
