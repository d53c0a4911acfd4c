// Package langdetect provides language detection for analysis targets.
// It uses go-enry to decide whether a file handed to the analyzer actually
// looks like Python, so obviously wrong targets get flagged before a pointless
// type-check run.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

const langPython = "python"

// IsPython reports whether the file at path with the given content looks like
// Python. The filename wins when enry recognizes it; content heuristics cover
// extensionless scripts.
func IsPython(path string, content []byte) bool {
	return Detect(path, content) == langPython
}

// Detect returns the detected language (lowercase) for a target file.
// Returns "text" when detection fails.
func Detect(path string, content []byte) string {
	// Strategy 1: filename-based detection covers the common case.
	if lang, safe := enry.GetLanguageByExtension(path); safe {
		return normalize(lang)
	}
	if lang, safe := enry.GetLanguageByFilename(path); safe {
		return normalize(lang)
	}

	if len(bytes.TrimSpace(content)) == 0 {
		return "text"
	}

	// Strategy 2: shebang is the most reliable content signal.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	// Strategy 3: Python-specific patterns before the generic classifier.
	if looksLikePython(string(content)) {
		return langPython
	}

	// Strategy 4: classifier over common candidate languages.
	candidates := []string{
		"Python", "Go", "Shell", "JavaScript", "TypeScript",
		"Ruby", "Rust", "Java", "C", "C++", "JSON", "YAML",
	}
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return "text"
}

// looksLikePython checks for patterns that are highly indicative of Python.
func looksLikePython(contentStr string) bool {
	// def/class definitions with colon.
	if strings.Contains(contentStr, "def ") && strings.Contains(contentStr, "):") {
		return true
	}
	// Python import statements (not Go which uses "import (").
	if strings.Contains(contentStr, "import ") && !strings.Contains(contentStr, "import (") {
		if strings.Contains(contentStr, "from ") || strings.HasPrefix(strings.TrimSpace(contentStr), "import ") {
			return true
		}
	}
	// Python dunder variables.
	return strings.Contains(contentStr, "__name__") || strings.Contains(contentStr, "__main__")
}

// normalize converts go-enry language names to lowercase tags.
func normalize(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
