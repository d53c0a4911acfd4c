package pyright

import (
	"encoding/json"
	"errors"
	"fmt"
)

// diagnosticsKey is the top-level key pyright stores its findings under.
const diagnosticsKey = "generalDiagnostics"

// ErrParse indicates stdout was not a valid JSON document.
var ErrParse = errors.New("unparseable analyzer output")

// Parse decodes raw analyzer stdout into a Set.
//
// A valid JSON document without the generalDiagnostics key decodes to an
// empty Set, not an error: a clean run and a permissive tool emitting an
// unexpected shape are indistinguishable here, and both mean "no findings".
// Only invalid JSON is a parse failure.
func Parse(raw []byte) (*Set, error) {
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	set := &Set{Payload: payload}

	var doc struct {
		Diagnostics []Diagnostic `json:"generalDiagnostics"`
	}
	// Shape mismatches under the key are treated the same as a missing key.
	if err := json.Unmarshal(raw, &doc); err == nil {
		set.Diagnostics = doc.Diagnostics
	}

	return set, nil
}
