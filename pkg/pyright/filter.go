package pyright

import (
	"regexp"
	"strings"
)

// FilterOptions selects diagnostics by severity and/or filename pattern.
// Both filters are independently optional and conjunctive when both given.
type FilterOptions struct {
	// Severity is matched case-insensitively against the normalized severity.
	Severity string

	// FilePattern is matched with substring (search) semantics against the
	// file field. Diagnostics without a file never match.
	FilePattern *regexp.Regexp
}

// Filter returns the diagnostics matching opts, preserving original order.
// Reapplying the same filter to its own output is a no-op.
func Filter(diags []Diagnostic, opts FilterOptions) []Diagnostic {
	severity := strings.ToLower(opts.Severity)

	filtered := make([]Diagnostic, 0, len(diags))
	for _, d := range diags {
		if severity != "" && string(d.Severity) != severity {
			continue
		}
		if opts.FilePattern != nil {
			if d.File == "" || !opts.FilePattern.MatchString(d.File) {
				continue
			}
		}
		filtered = append(filtered, d)
	}
	return filtered
}
