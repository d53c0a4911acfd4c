// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldTarget     = "target"
	FieldProjectDir = "project_dir"

	// Analyzer fields.
	FieldCommand  = "command"
	FieldExitCode = "exit_code"
	FieldStderr   = "stderr"
	FieldLanguage = "language"

	// Result fields.
	FieldArtifact    = "artifact"
	FieldResultsDir  = "results_dir"
	FieldDiagnostics = "diagnostics"
	FieldErrors      = "errors"
	FieldWarnings    = "warnings"
	FieldInfo        = "info"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
