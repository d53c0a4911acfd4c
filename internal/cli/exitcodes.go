package cli

// Exit codes for pyrmon.
const (
	// ExitSuccess indicates the run completed. Finding problems is not a CLI
	// failure: the exit code stays 0 no matter how many diagnostics turned up.
	ExitSuccess = 0

	// ExitAnalyzerUnavailable indicates the analyzer is absent and could not
	// be installed. This is the only fatal-abort path in the system.
	ExitAnalyzerUnavailable = 1
)

// ExitCodeFromError maps a command error to the process exit code. Analysis
// results never reach here as errors: per-target failures are logged and the
// run continues, so any error that escapes a command is fatal by definition.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitAnalyzerUnavailable
}
