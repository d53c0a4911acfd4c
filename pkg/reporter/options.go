package reporter

import (
	"io"
	"os"
)

// DefaultMaxDisplay caps the detailed listing when Options.MaxDisplay is
// left unset.
const DefaultMaxDisplay = 10

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for report output (typically os.Stdout).
	Writer io.Writer

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// MaxDisplay is the maximum number of diagnostics the detailed listing
	// renders. Zero means DefaultMaxDisplay.
	MaxDisplay int
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:     os.Stdout,
		Color:      "auto",
		MaxDisplay: DefaultMaxDisplay,
	}
}

func (o Options) effectiveMaxDisplay() int {
	if o.MaxDisplay <= 0 {
		return DefaultMaxDisplay
	}
	return o.MaxDisplay
}
