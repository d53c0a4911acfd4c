// Package pyright drives the pyright static type checker as a subprocess and
// normalizes its JSON diagnostic output.
package pyright

import (
	"encoding/json"
	"strings"
)

// Severity classifies a diagnostic's importance.
// Values are normalized to lowercase on decode.
type Severity string

// Known severities emitted by pyright, plus the bucket for anything else.
const (
	SeverityError        Severity = "error"
	SeverityWarning      Severity = "warning"
	SeverityInformation  Severity = "information"
	SeverityUnclassified Severity = "unclassified"
)

// UnmarshalJSON lowercases the severity so downstream comparisons are
// case-insensitive exact matches.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = Severity(strings.ToLower(raw))
	return nil
}

// Bucket maps a severity to one of the four counting buckets. Unknown or
// missing severities count toward totals but not the three named counters.
func (s Severity) Bucket() Severity {
	switch s {
	case SeverityError, SeverityWarning, SeverityInformation:
		return s
	default:
		return SeverityUnclassified
	}
}

// Position is a zero-based location within a file. Display is one-based;
// the translation happens in the reporter, never here.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Range is a start/end position pair. Only the start is displayed, but the
// end is retained for payload fidelity.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Diagnostic is one reported issue from the analyzer.
type Diagnostic struct {
	// File is the path the diagnostic applies to. Absent for project-level
	// diagnostics, which are excluded from per-file grouping.
	File     string   `json:"file,omitempty"`
	Severity Severity `json:"severity"`
	Range    Range    `json:"range"`
	Message  string   `json:"message"`
	// Rule is the pyright rule identifier, when the analyzer reports one.
	Rule string `json:"rule,omitempty"`
}

// Set is the full result of one analyzer invocation: the normalized
// diagnostics plus the raw decoded payload. Persistence stores the payload,
// not the normalized view, so artifacts round-trip the tool's own output.
type Set struct {
	Diagnostics []Diagnostic
	Payload     any
}

// Empty reports whether the set contains no diagnostics.
func (s *Set) Empty() bool {
	return s == nil || len(s.Diagnostics) == 0
}

// Counts returns the per-bucket totals for the set.
func (s *Set) Counts() Counts {
	if s == nil {
		return Counts{}
	}
	return Count(s.Diagnostics)
}

// Counts holds per-severity diagnostic totals.
type Counts struct {
	Errors       int
	Warnings     int
	Information  int
	Unclassified int
}

// Total is the sum across all four buckets.
func (c Counts) Total() int {
	return c.Errors + c.Warnings + c.Information + c.Unclassified
}

func (c *Counts) add(sev Severity) {
	switch sev.Bucket() {
	case SeverityError:
		c.Errors++
	case SeverityWarning:
		c.Warnings++
	case SeverityInformation:
		c.Information++
	default:
		c.Unclassified++
	}
}

// Count tallies diagnostics into severity buckets.
func Count(diags []Diagnostic) Counts {
	var counts Counts
	for _, d := range diags {
		counts.add(d.Severity)
	}
	return counts
}
