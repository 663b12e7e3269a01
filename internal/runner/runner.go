package runner

import (
	"fmt"
	"os"
	"strings"

	"github.com/zjy-dev/covscope/internal/exec"
	"github.com/zjy-dev/covscope/internal/logger"
)

// Runner drives the external test toolchain that produces the coverage
// export. It never interprets coverage data itself; its job is getting the
// export bytes into memory and cleaning up afterwards.
type Runner struct {
	executor exec.Executor
	workDir  string
}

// New creates a Runner that executes commands in workDir (empty means the
// current working directory).
func New(executor exec.Executor, workDir string) *Runner {
	return &Runner{executor: executor, workDir: workDir}
}

// RunTests invokes the instrumented test command. A non-zero exit is fatal;
// stderr is surfaced in the error so the failure can be diagnosed without
// re-running.
func (r *Runner) RunTests(command []string) error {
	if len(command) == 0 {
		return fmt.Errorf("no test command configured")
	}

	logger.Info("running %s", strings.Join(command, " "))
	result, err := r.executor.Run(r.workDir, command[0], command[1:]...)
	if err != nil {
		return fmt.Errorf("failed to start test command: %w", err)
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("test command exited with code %d: %s", result.ExitCode, strings.TrimSpace(result.Stderr))
	}
	return nil
}

// ExportPath resolves the coverage export location. An explicitly configured
// path wins; otherwise the discovery command (e.g. "swift test
// --show-codecov-path") is asked for it and the first line of its output is
// taken.
func (r *Runner) ExportPath(configured string, discovery []string) (string, error) {
	if configured != "" {
		return configured, nil
	}
	if len(discovery) == 0 {
		return "", fmt.Errorf("no export path configured and no discovery command set")
	}

	result, err := r.executor.Run(r.workDir, discovery[0], discovery[1:]...)
	if err != nil {
		return "", fmt.Errorf("failed to run export path discovery command: %w", err)
	}
	if result.ExitCode != 0 {
		return "", fmt.Errorf("export path discovery command exited with code %d: %s", result.ExitCode, strings.TrimSpace(result.Stderr))
	}

	path := strings.TrimSpace(result.Stdout)
	if i := strings.IndexByte(path, '\n'); i >= 0 {
		path = strings.TrimSpace(path[:i])
	}
	if path == "" {
		return "", fmt.Errorf("export path discovery command printed no path")
	}

	logger.Debug("coverage export discovered at %s", path)
	return path, nil
}

// ReadExport loads the export bytes from disk.
func (r *Runner) ReadExport(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read coverage export %s: %w", path, err)
	}
	return data, nil
}

// CleanArtifacts removes the coverage build directory left behind by the
// toolchain. An empty buildDir is a no-op.
func (r *Runner) CleanArtifacts(buildDir string) error {
	if buildDir == "" {
		return nil
	}
	logger.Debug("removing coverage build artifacts at %s", buildDir)
	if err := os.RemoveAll(buildDir); err != nil {
		return fmt.Errorf("failed to remove build artifacts at %s: %w", buildDir, err)
	}
	return nil
}
