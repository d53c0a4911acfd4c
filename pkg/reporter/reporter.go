// Package reporter renders diagnostic summaries and detailed listings to the
// console. Every operation is a pure function of its inputs writing to the
// configured writer; the reporter holds no mutable state between calls.
package reporter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/pyrmon/pyrmon/internal/ui/pretty"
	"github.com/pyrmon/pyrmon/pkg/pyright"
)

// unknownFileLabel is displayed for diagnostics that carry no file path.
const unknownFileLabel = "Unknown file"

// fallbackWidth is used when the writer is not a terminal.
const fallbackWidth = 100

// Reporter renders analysis output.
type Reporter struct {
	opts   Options
	styles *pretty.Styles
}

// New creates a Reporter for the given options.
func New(opts Options) *Reporter {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}
	return &Reporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
	}
}

// Writer exposes the configured output writer.
func (r *Reporter) Writer() io.Writer {
	return r.opts.Writer
}

// AnalyzingFile prints the banner for a single-file analysis.
func (r *Reporter) AnalyzingFile(path string) {
	fmt.Fprintf(r.opts.Writer, "\n%s\n", r.styles.Bold.Render(fmt.Sprintf("Analyzing %s...", path)))
}

// AnalyzingProject prints the banner for a project-wide analysis.
func (r *Reporter) AnalyzingProject() {
	fmt.Fprintf(r.opts.Writer, "\n%s\n", r.styles.Bold.Render("Analyzing entire project..."))
}

// FileNotFound prints the notice for a missing single-file target.
func (r *Reporter) FileNotFound(path string) {
	fmt.Fprintf(r.opts.Writer, "%s\n", r.styles.Failure.Render("File not found: "+path))
}

// SavedTo prints the artifact location line. Ordering contract: callers emit
// the summary before saving, so this always follows Summary output.
func (r *Reporter) SavedTo(path string) {
	fmt.Fprintf(r.opts.Writer, "\nDetailed results saved to: %s\n", path)
}

// Summary displays counts of error/warning/information/total. Zero problems
// is a distinguished clean message, not a zero-count table. The total also
// covers unclassified severities, so the buckets always sum to len(diags).
func (r *Reporter) Summary(diags []pyright.Diagnostic) {
	w := r.opts.Writer

	if len(diags) == 0 {
		fmt.Fprintf(w, "%s\n", r.styles.Success.Render("No problems found!"))
		return
	}

	counts := pyright.Count(diags)

	fmt.Fprintf(w, "\n%s\n", r.styles.SummaryTitle.Render("Summary:"))
	fmt.Fprintf(w, "%s\n", r.styles.Error.Render(fmt.Sprintf("Errors: %d", counts.Errors)))
	fmt.Fprintf(w, "%s\n", r.styles.Warning.Render(fmt.Sprintf("Warnings: %d", counts.Warnings)))
	fmt.Fprintf(w, "%s\n", r.styles.Info.Render(fmt.Sprintf("Information: %d", counts.Information)))
	fmt.Fprintf(w, "Total: %d\n", counts.Total())
}

// Detail renders up to MaxDisplay diagnostics as numbered entries:
//
//	N. [SEVERITY] file:line:column
//	   message
//
// Line and column are stored zero-based and displayed one-based. When more
// diagnostics exist than the cap, a truncation notice carries the remainder.
func (r *Reporter) Detail(diags []pyright.Diagnostic) {
	if len(diags) == 0 {
		return
	}

	w := r.opts.Writer
	maxDisplay := r.opts.effectiveMaxDisplay()

	fmt.Fprintf(w, "\n%s\n", r.styles.SummaryTitle.Render("Detailed Problems:"))

	shown := diags
	if len(shown) > maxDisplay {
		shown = shown[:maxDisplay]
	}

	for i, d := range shown {
		file := d.File
		if file == "" {
			file = unknownFileLabel
		}

		location := fmt.Sprintf("%d. [%s] %s:%d:%d",
			i+1,
			strings.ToUpper(string(d.Severity)),
			file,
			d.Range.Start.Line+1,
			d.Range.Start.Character+1,
		)

		style := r.styles.SeverityStyle(d.Severity)
		fmt.Fprintf(w, "\n%s\n", style.Render(location))
		fmt.Fprintf(w, "   %s\n", r.styles.Message.Render(d.Message))

		if d.Rule != "" {
			fmt.Fprintf(w, "   %s\n", r.styles.Rule.Render("("+d.Rule+")"))
		}
	}

	if remaining := len(diags) - maxDisplay; remaining > 0 {
		fmt.Fprintf(w, "\n... and %d more problems\n", remaining)
	}
}

// FileStats displays one line per file, sorted by descending total problem
// count with first-seen order as the stable tie-break.
func (r *Reporter) FileStats(stats *pyright.FileStats) {
	if stats == nil || stats.Len() == 0 {
		return
	}

	w := r.opts.Writer
	pathWidth := r.terminalWidth() - 48
	if pathWidth < 16 {
		pathWidth = 16
	}

	fmt.Fprintf(w, "\n%s\n", r.styles.SummaryTitle.Render("Problems by file:"))

	for _, stat := range stats.Ranked() {
		counts := stat.Counts
		line := fmt.Sprintf("%s: %d errors, %d warnings, %d info (%d total)",
			truncatePath(stat.File, pathWidth),
			counts.Errors, counts.Warnings, counts.Information, counts.Total())

		style := r.styles.Info
		switch {
		case counts.Errors > 0:
			style = r.styles.Error
		case counts.Warnings > 0:
			style = r.styles.Warning
		}
		fmt.Fprintf(w, "%s\n", style.Render(line))
	}
}

// terminalWidth returns the writer's terminal width, or a fallback when the
// writer is not a terminal.
func (r *Reporter) terminalWidth() int {
	if f, ok := r.opts.Writer.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return fallbackWidth
}

// truncatePath shortens long paths from the left, keeping the tail, which is
// the part that distinguishes files in a project.
func truncatePath(path string, maxWidth int) string {
	if len(path) <= maxWidth {
		return path
	}
	return "..." + path[len(path)-maxWidth+3:]
}
