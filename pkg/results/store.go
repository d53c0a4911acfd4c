// Package results persists analyzer payloads as timestamped JSON artifacts.
package results

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pyrmon/pyrmon/pkg/fsutil"
)

// DefaultDirName is the results directory created under the project root.
const DefaultDirName = "mcp_results"

// timestampLayout gives second-resolution artifact names. Two saves with the
// same literal name inside one second silently overwrite.
const timestampLayout = "20060102_150405"

// Store writes analysis artifacts under a single results directory.
// Artifacts are never mutated after creation and never deleted here;
// retention is the caller's responsibility.
type Store struct {
	dir string

	// now is swappable for deterministic tests.
	now func() time.Time
}

// New creates a Store rooted at root, using dirName (or DefaultDirName when
// empty) as the results directory. The directory itself is created lazily on
// first save.
func New(root, dirName string) *Store {
	if dirName == "" {
		dirName = DefaultDirName
	}
	return &Store{
		dir: filepath.Join(root, dirName),
		now: time.Now,
	}
}

// Dir returns the results directory path.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes payload as pretty-printed JSON and returns the path written.
// If name is empty a timestamped default is synthesized; caller-supplied
// names are used verbatim. Write failures propagate: an analysis whose
// results cannot be saved is incomplete.
func (s *Store) Save(ctx context.Context, payload any, name string) (string, error) {
	// Idempotent create, shared across every save in a run.
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("create results directory %s: %w", s.dir, err)
	}

	if name == "" {
		name = fmt.Sprintf("pyright_results_%s.json", s.now().Format(timestampLayout))
	}

	content, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode results: %w", err)
	}
	content = append(content, '\n')

	path := filepath.Join(s.dir, name)
	if err := fsutil.WriteAtomic(ctx, path, content, 0); err != nil {
		return "", fmt.Errorf("save results to %s: %w", path, err)
	}

	return path, nil
}

// FileResultName builds the artifact name for a single-file analysis,
// embedding the target's base name and a second-resolution timestamp.
func (s *Store) FileResultName(target string) string {
	return fmt.Sprintf("pyright_%s_%s.json",
		filepath.Base(target), s.now().Format(timestampLayout))
}

// WithClock returns a copy of the Store using the given clock.
// Intended for tests that need deterministic artifact names.
func (s *Store) WithClock(now func() time.Time) *Store {
	return &Store{dir: s.dir, now: now}
}
