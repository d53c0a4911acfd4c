// Package monitor orchestrates analyzer runs: bootstrap checks, single-file
// and project-wide workflows, reporting, and artifact persistence.
package monitor

import (
	"context"
	"os"

	"github.com/charmbracelet/log"

	"github.com/pyrmon/pyrmon/internal/logging"
	"github.com/pyrmon/pyrmon/pkg/pyright"
	"github.com/pyrmon/pyrmon/pkg/reporter"
	"github.com/pyrmon/pyrmon/pkg/results"
)

// Analyzer is the capability the monitor needs from the external tool:
// invoke it and get structured diagnostics or a failure. How the tool got
// installed is not the monitor's concern. Tests substitute fakes.
type Analyzer interface {
	// Analyze runs the tool scoped to target; "" means the whole project.
	Analyze(ctx context.Context, target string) (*pyright.Set, error)

	// Available reports whether the tool can be invoked at all.
	Available(ctx context.Context) bool

	// Install attempts a best-effort bootstrap install.
	Install(ctx context.Context) error
}

// Options configures a Monitor. Zero values take defaults in New.
type Options struct {
	// ProjectRoot is the directory analyzed when no target is given and the
	// parent of the results directory. Empty means the working directory.
	ProjectRoot string

	// ResultsDir is the results directory name under ProjectRoot.
	// Empty means results.DefaultDirName.
	ResultsDir string

	// Analyzer overrides the default pyright client.
	Analyzer Analyzer

	// Store overrides the default artifact store.
	Store *results.Store

	// Reporter overrides the default stdout reporter.
	Reporter *reporter.Reporter

	// Logger overrides the default structured logger.
	Logger *log.Logger
}

func (o Options) effectiveRoot() (string, error) {
	if o.ProjectRoot != "" {
		return o.ProjectRoot, nil
	}
	return os.Getwd()
}

func (o Options) effectiveLogger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logging.Default()
}
