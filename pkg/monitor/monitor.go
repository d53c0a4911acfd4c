package monitor

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/pyrmon/pyrmon/internal/logging"
	"github.com/pyrmon/pyrmon/pkg/fsutil"
	"github.com/pyrmon/pyrmon/pkg/langdetect"
	"github.com/pyrmon/pyrmon/pkg/pyright"
	"github.com/pyrmon/pyrmon/pkg/reporter"
	"github.com/pyrmon/pyrmon/pkg/results"
)

// ErrAnalyzerUnavailable indicates the analyzer is not installed and the
// bootstrap install failed. It is the only fatal-abort condition.
var ErrAnalyzerUnavailable = errors.New("analyzer unavailable")

// Monitor composes invocation, parsing, reporting, and persistence into the
// two analysis workflows. It is single-threaded and fully synchronous: each
// analyzer invocation blocks until the subprocess exits, and batch analysis
// processes targets strictly one after another.
type Monitor struct {
	root     string
	analyzer Analyzer
	store    *results.Store
	reporter *reporter.Reporter
	logger   *log.Logger
}

// New creates a Monitor, filling unset options with defaults: working
// directory as project root, the stock pyright client, an artifact store
// under the root, and a stdout reporter.
func New(opts Options) (*Monitor, error) {
	root, err := opts.effectiveRoot()
	if err != nil {
		return nil, fmt.Errorf("resolve project root: %w", err)
	}

	analyzer := opts.Analyzer
	if analyzer == nil {
		analyzer = pyright.NewClient(pyright.NewExecRunner(root))
	}

	store := opts.Store
	if store == nil {
		store = results.New(root, opts.ResultsDir)
	}

	rep := opts.Reporter
	if rep == nil {
		rep = reporter.New(reporter.DefaultOptions())
	}

	return &Monitor{
		root:     root,
		analyzer: analyzer,
		store:    store,
		reporter: rep,
		logger:   opts.effectiveLogger(),
	}, nil
}

// ProjectRoot returns the root fixed at construction.
func (m *Monitor) ProjectRoot() string {
	return m.root
}

// EnsureAnalyzer verifies the analyzer is invocable, attempting a bootstrap
// install when it is not. Returns ErrAnalyzerUnavailable when the install
// fails; callers abort with exit status 1 on that error and nothing else.
func (m *Monitor) EnsureAnalyzer(ctx context.Context) error {
	if m.analyzer.Available(ctx) {
		return nil
	}

	m.logger.Warn("pyright not found, attempting to install")
	if err := m.analyzer.Install(ctx); err != nil {
		m.logger.Error("failed to install pyright", logging.FieldError, err)
		return fmt.Errorf("%w: install manually with: npm install -g pyright", ErrAnalyzerUnavailable)
	}

	m.logger.Info("pyright installed")
	return nil
}

// AnalyzeFile analyzes a single file and returns its problem counts.
// A missing target short-circuits to zero counts after a console notice,
// without invoking the analyzer. Invocation and parse failures degrade to an
// empty diagnostic set with a warning; only a persistence failure is an error.
func (m *Monitor) AnalyzeFile(ctx context.Context, path string) (pyright.Counts, error) {
	m.reporter.AnalyzingFile(path)

	if !fsutil.Exists(path) {
		m.reporter.FileNotFound(path)
		return pyright.Counts{}, nil
	}

	m.checkLanguage(ctx, path)

	set := m.analyze(ctx, path)
	counts := set.Counts()

	m.reporter.Summary(set.Diagnostics)
	m.reporter.Detail(set.Diagnostics)

	// Summary precedes save; save happens even for an empty set.
	saved, err := m.store.Save(ctx, payloadOf(set), m.store.FileResultName(path))
	if err != nil {
		return counts, err
	}
	m.reporter.SavedTo(saved)

	return counts, nil
}

// AnalyzeProject analyzes the whole project and returns per-file stats.
// Diagnostics without a file are counted in the overall summary but dropped
// from the per-file grouping.
func (m *Monitor) AnalyzeProject(ctx context.Context) (*pyright.FileStats, error) {
	m.reporter.AnalyzingProject()

	set := m.analyze(ctx, "")
	stats := pyright.GroupByFile(set.Diagnostics)

	m.reporter.Summary(set.Diagnostics)
	m.reporter.FileStats(stats)

	saved, err := m.store.Save(ctx, payloadOf(set), "")
	if err != nil {
		return stats, err
	}
	m.reporter.SavedTo(saved)

	return stats, nil
}

// FilterReport runs an analysis (single file when target is non-empty, else
// whole project) and reports only the diagnostics matching opts. The raw
// payload is still persisted in full.
func (m *Monitor) FilterReport(ctx context.Context, target string, opts pyright.FilterOptions) error {
	if target != "" {
		m.reporter.AnalyzingFile(target)
		if !fsutil.Exists(target) {
			m.reporter.FileNotFound(target)
			return nil
		}
	} else {
		m.reporter.AnalyzingProject()
	}

	set := m.analyze(ctx, target)
	filtered := pyright.Filter(set.Diagnostics, opts)

	m.reporter.Summary(filtered)
	m.reporter.Detail(filtered)

	name := ""
	if target != "" {
		name = m.store.FileResultName(target)
	}
	saved, err := m.store.Save(ctx, payloadOf(set), name)
	if err != nil {
		return err
	}
	m.reporter.SavedTo(saved)

	return nil
}

// analyze runs the analyzer and recovers non-fatal failures to an empty set
// so batch analysis can proceed past one bad target.
func (m *Monitor) analyze(ctx context.Context, target string) *pyright.Set {
	set, err := m.analyzer.Analyze(ctx, target)
	if err == nil {
		return set
	}

	switch {
	case errors.Is(err, pyright.ErrParse):
		m.logger.Warn("failed to parse pyright output", logging.FieldError, err)
	case errors.Is(err, pyright.ErrInvocation):
		m.logger.Warn("error running pyright", logging.FieldError, err)
	default:
		m.logger.Warn("pyright analysis failed", logging.FieldError, err)
	}

	return &pyright.Set{}
}

// checkLanguage warns when a target does not look like Python. Advisory only:
// pyright itself is the authority on what it can analyze.
func (m *Monitor) checkLanguage(ctx context.Context, path string) {
	content, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		m.logger.Debug("could not read target for language detection",
			logging.FieldPath, path, logging.FieldError, err)
		return
	}

	if lang := langdetect.Detect(path, content); lang != "python" {
		m.logger.Warn("target does not look like Python",
			logging.FieldPath, path, logging.FieldLanguage, lang)
	}
}

// payloadOf returns the raw payload to persist for a set. Recovered failures
// and clean empty runs both persist an empty diagnostics document, matching
// the analyzer's own shape.
func payloadOf(set *pyright.Set) any {
	if set == nil || set.Payload == nil {
		return map[string]any{"generalDiagnostics": []any{}}
	}
	return set.Payload
}
