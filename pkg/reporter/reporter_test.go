package reporter_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyrmon/pyrmon/pkg/pyright"
	"github.com/pyrmon/pyrmon/pkg/reporter"
)

func newTestReporter(buf *bytes.Buffer, maxDisplay int) *reporter.Reporter {
	return reporter.New(reporter.Options{
		Writer:     buf,
		Color:      "never",
		MaxDisplay: maxDisplay,
	})
}

func TestSummary_Clean(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	newTestReporter(&buf, 0).Summary(nil)

	assert.Contains(t, buf.String(), "No problems found!")
	assert.NotContains(t, buf.String(), "Total:")
}

func TestSummary_Counts(t *testing.T) {
	t.Parallel()

	diags := []pyright.Diagnostic{
		{Severity: pyright.SeverityError},
		{Severity: pyright.SeverityError},
		{Severity: pyright.SeverityWarning},
		{Severity: pyright.SeverityInformation},
		{Severity: "hint"}, // unclassified: counts toward total only
	}

	var buf bytes.Buffer
	newTestReporter(&buf, 0).Summary(diags)

	output := buf.String()
	assert.Contains(t, output, "Errors: 2")
	assert.Contains(t, output, "Warnings: 1")
	assert.Contains(t, output, "Information: 1")
	assert.Contains(t, output, "Total: 5")
}

func TestDetail_OneBasedLineAndColumn(t *testing.T) {
	t.Parallel()

	diags := []pyright.Diagnostic{
		{
			File:     "app/models.py",
			Severity: pyright.SeverityError,
			Message:  "Cannot assign member",
			Range:    pyright.Range{Start: pyright.Position{Line: 0, Character: 0}},
		},
		{
			File:     "app/views.py",
			Severity: pyright.SeverityWarning,
			Message:  "Unresolved import",
			Range:    pyright.Range{Start: pyright.Position{Line: 11, Character: 4}},
		},
	}

	var buf bytes.Buffer
	newTestReporter(&buf, 0).Detail(diags)

	output := buf.String()
	assert.Contains(t, output, "1. [ERROR] app/models.py:1:1")
	assert.Contains(t, output, "2. [WARNING] app/views.py:12:5")
	assert.Contains(t, output, "Cannot assign member")
}

func TestDetail_CapAndTruncationNotice(t *testing.T) {
	t.Parallel()

	diags := make([]pyright.Diagnostic, 14)
	for i := range diags {
		diags[i] = pyright.Diagnostic{
			File:     fmt.Sprintf("f%d.py", i),
			Severity: pyright.SeverityError,
			Message:  "problem",
		}
	}

	var buf bytes.Buffer
	newTestReporter(&buf, 10).Detail(diags)

	output := buf.String()
	assert.Equal(t, 10, strings.Count(output, "[ERROR]"), "never renders more than maxDisplay")
	assert.Contains(t, output, "... and 4 more problems")
}

func TestDetail_NoTruncationNoticeWhenUnderCap(t *testing.T) {
	t.Parallel()

	diags := []pyright.Diagnostic{{File: "a.py", Severity: pyright.SeverityError, Message: "x"}}

	var buf bytes.Buffer
	newTestReporter(&buf, 10).Detail(diags)

	assert.NotContains(t, buf.String(), "more problems")
}

func TestDetail_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	newTestReporter(&buf, 0).Detail(nil)
	assert.Empty(t, buf.String())
}

func TestDetail_UnknownFileLabel(t *testing.T) {
	t.Parallel()

	diags := []pyright.Diagnostic{{Severity: pyright.SeverityInformation, Message: "project-level"}}

	var buf bytes.Buffer
	newTestReporter(&buf, 0).Detail(diags)

	assert.Contains(t, buf.String(), "[INFORMATION] Unknown file:1:1")
}

func TestDetail_RuleShownWhenPresent(t *testing.T) {
	t.Parallel()

	diags := []pyright.Diagnostic{{
		File:     "a.py",
		Severity: pyright.SeverityError,
		Message:  "bad attribute",
		Rule:     "reportAttributeAccessIssue",
	}}

	var buf bytes.Buffer
	newTestReporter(&buf, 0).Detail(diags)

	assert.Contains(t, buf.String(), "(reportAttributeAccessIssue)")
}

func TestFileStats_RankedOutput(t *testing.T) {
	t.Parallel()

	stats := pyright.GroupByFile([]pyright.Diagnostic{
		{File: "b.py", Severity: pyright.SeverityInformation},
		{File: "a.py", Severity: pyright.SeverityError},
		{File: "a.py", Severity: pyright.SeverityWarning},
	})

	var buf bytes.Buffer
	newTestReporter(&buf, 0).FileStats(stats)

	output := buf.String()
	assert.Contains(t, output, "Problems by file:")
	assert.Contains(t, output, "a.py: 1 errors, 1 warnings, 0 info (2 total)")
	assert.Contains(t, output, "b.py: 0 errors, 0 warnings, 1 info (1 total)")

	// Higher total first.
	require.Less(t, strings.Index(output, "a.py:"), strings.Index(output, "b.py:"))
}

func TestFileStats_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	newTestReporter(&buf, 0).FileStats(pyright.NewFileStats())
	assert.Empty(t, buf.String())
}

func TestNotices(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := newTestReporter(&buf, 0)

	rep.AnalyzingFile("app/models.py")
	rep.AnalyzingProject()
	rep.FileNotFound("gone.py")
	rep.SavedTo("mcp_results/pyright_results_20260314_092653.json")

	output := buf.String()
	assert.Contains(t, output, "Analyzing app/models.py...")
	assert.Contains(t, output, "Analyzing entire project...")
	assert.Contains(t, output, "File not found: gone.py")
	assert.Contains(t, output, "Detailed results saved to: mcp_results/pyright_results_20260314_092653.json")
}
