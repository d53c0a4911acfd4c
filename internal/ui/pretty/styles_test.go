package pretty_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyrmon/pyrmon/internal/ui/pretty"
	"github.com/pyrmon/pyrmon/pkg/pyright"
)

func TestNewStyles(t *testing.T) {
	t.Parallel()

	colored := pretty.NewStyles(true)
	require.NotNil(t, colored)

	plain := pretty.NewStyles(false)
	require.NotNil(t, plain)

	// Plain styles must not inject escape sequences.
	assert.Equal(t, "error text", plain.Error.Render("error text"))
	assert.Equal(t, "a.py", plain.FilePath.Render("a.py"))
}

func TestSeverityStyle(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	tests := []pyright.Severity{
		pyright.SeverityError,
		pyright.SeverityWarning,
		pyright.SeverityInformation,
		"hint",
	}
	for _, sev := range tests {
		// Every bucket resolves to a usable style.
		assert.NotNil(t, styles.SeverityStyle(sev))
	}
}

func TestIsColorEnabled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	assert.True(t, pretty.IsColorEnabled("always", &buf))
	assert.False(t, pretty.IsColorEnabled("never", &buf))

	// A plain buffer is not a TTY, so auto disables color.
	assert.False(t, pretty.IsColorEnabled("auto", &buf))
	assert.False(t, pretty.IsColorEnabled("", &buf))
}
