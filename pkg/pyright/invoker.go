package pyright

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"
)

// ErrInvocation indicates the analyzer could not be run, or ran without
// producing any recoverable output.
var ErrInvocation = errors.New("analyzer invocation failed")

// RawResult captures one subprocess invocation of the analyzer.
type RawResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Runner executes the external analyzer. It is an interface so tests can
// substitute a fake without spawning processes or running real installs.
type Runner interface {
	// Run invokes the analyzer in JSON-output mode, scoped to target when
	// non-empty. A non-zero exit code is NOT an error: pyright exits non-zero
	// when it finds problems. The returned error means the process could not
	// be launched at all.
	Run(ctx context.Context, target string) (RawResult, error)

	// Version performs a trivial invocation to probe availability.
	Version(ctx context.Context) (string, error)

	// Install invokes the external package manager to install the analyzer.
	Install(ctx context.Context) error
}

// ExecRunner runs pyright via os/exec. Every call spawns one OS process and
// blocks until it exits; there are no retries and no timeout beyond what the
// context provides.
type ExecRunner struct {
	// AnalyzerCmd is the analyzer command and any leading arguments.
	AnalyzerCmd []string

	// InstallCmd is the package-manager command used for bootstrap.
	InstallCmd []string

	// Dir is the working directory for analyzer invocations. Empty means the
	// current process working directory, which is pyright's "whole project".
	Dir string
}

// Compile-time interface check.
var _ Runner = (*ExecRunner)(nil)

// NewExecRunner creates an ExecRunner with the stock pyright and npm commands.
func NewExecRunner(dir string) *ExecRunner {
	return &ExecRunner{
		AnalyzerCmd: []string{"pyright"},
		InstallCmd:  []string{"npm", "install", "-g", "pyright"},
		Dir:         dir,
	}
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, target string) (RawResult, error) {
	args := append(slices.Clone(r.AnalyzerCmd[1:]), "--outputjson")
	if target != "" {
		args = append(args, target)
	}

	cmd := exec.CommandContext(ctx, r.AnalyzerCmd[0], args...)
	cmd.Dir = r.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := RawResult{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The tool ran; the exit code carries the outcome.
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, fmt.Errorf("run %s: %w", r.AnalyzerCmd[0], err)
	}

	return result, nil
}

// Version implements Runner.
func (r *ExecRunner) Version(ctx context.Context) (string, error) {
	args := append(slices.Clone(r.AnalyzerCmd[1:]), "--version")

	cmd := exec.CommandContext(ctx, r.AnalyzerCmd[0], args...)
	cmd.Dir = r.Dir

	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("version probe %s: %w", r.AnalyzerCmd[0], err)
	}
	return strings.TrimSpace(string(output)), nil
}

// Install implements Runner. Output streams to the terminal so the bootstrap
// attempt is discoverable, not silent.
func (r *ExecRunner) Install(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, r.InstallCmd[0], r.InstallCmd[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("install via %s: %w", strings.Join(r.InstallCmd, " "), err)
	}
	return nil
}

// Client wraps a Runner with the decode policy the analyzer requires:
// stdout is decoded as JSON on every exit code, because a non-zero exit can
// mean either a genuine failure or "ran fine but found problems".
type Client struct {
	runner Runner
}

// NewClient creates a Client around the given Runner.
func NewClient(runner Runner) *Client {
	return &Client{runner: runner}
}

// Analyze runs the analyzer scoped to target ("" means whole project) and
// decodes its output. Only an unlaunchable process or empty/unparseable
// stdout classifies as a failure.
func (c *Client) Analyze(ctx context.Context, target string) (*Set, error) {
	result, err := c.runner.Run(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvocation, err)
	}

	stdout := bytes.TrimSpace(result.Stdout)
	if len(stdout) == 0 {
		if result.ExitCode != 0 {
			return nil, fmt.Errorf("%w: exit code %d with no output: %s",
				ErrInvocation, result.ExitCode, bytes.TrimSpace(result.Stderr))
		}
		// Clean exit, nothing to report.
		return &Set{}, nil
	}

	set, err := Parse(stdout)
	if err != nil {
		return nil, err
	}
	return set, nil
}

// Available reports whether the analyzer can be invoked at all.
func (c *Client) Available(ctx context.Context) bool {
	_, err := c.runner.Version(ctx)
	return err == nil
}

// Install attempts the bootstrap install.
func (c *Client) Install(ctx context.Context) error {
	return c.runner.Install(ctx)
}
