// Package main is the entry point for the pyrmon CLI.
package main

import (
	"errors"
	"os"

	"github.com/pyrmon/pyrmon/internal/cli"
	"github.com/pyrmon/pyrmon/internal/logging"
	"github.com/pyrmon/pyrmon/pkg/monitor"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		logger := logging.Default()
		if errors.Is(err, monitor.ErrAnalyzerUnavailable) {
			// The error text carries the manual install guidance.
			logger.Error(err.Error())
		} else {
			logger.Error("command failed", logging.FieldError, err)
		}
		return cli.ExitCodeFromError(err)
	}

	return cli.ExitSuccess
}
