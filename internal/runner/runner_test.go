package runner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjy-dev/covscope/internal/exec"
)

// fakeExecutor records the last invocation and replies with canned results.
type fakeExecutor struct {
	result  *exec.ExecutionResult
	err     error
	lastDir string
	lastCmd []string
}

func (f *fakeExecutor) Run(dir string, command string, args ...string) (*exec.ExecutionResult, error) {
	f.lastDir = dir
	f.lastCmd = append([]string{command}, args...)
	return f.result, f.err
}

func TestRunner_RunTests(t *testing.T) {
	t.Run("should pass the command through to the executor", func(t *testing.T) {
		fake := &fakeExecutor{result: &exec.ExecutionResult{ExitCode: 0}}
		r := New(fake, "/repo")

		err := r.RunTests([]string{"swift", "test", "--enable-code-coverage"})
		require.NoError(t, err)
		assert.Equal(t, "/repo", fake.lastDir)
		assert.Equal(t, []string{"swift", "test", "--enable-code-coverage"}, fake.lastCmd)
	})

	t.Run("should fail on a non-zero exit with stderr context", func(t *testing.T) {
		fake := &fakeExecutor{result: &exec.ExecutionResult{ExitCode: 1, Stderr: "build failed: missing module\n"}}
		r := New(fake, "")

		err := r.RunTests([]string{"swift", "test"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exited with code 1")
		assert.Contains(t, err.Error(), "missing module")
	})

	t.Run("should fail without a configured command", func(t *testing.T) {
		r := New(&fakeExecutor{}, "")
		err := r.RunTests(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no test command configured")
	})
}

func TestRunner_ExportPath(t *testing.T) {
	t.Run("should prefer the configured path", func(t *testing.T) {
		fake := &fakeExecutor{}
		r := New(fake, "")

		path, err := r.ExportPath("/tmp/export.json", []string{"swift", "test", "--show-codecov-path"})
		require.NoError(t, err)
		assert.Equal(t, "/tmp/export.json", path)
		assert.Nil(t, fake.lastCmd, "discovery command must not run when a path is configured")
	})

	t.Run("should take the first line of discovery output", func(t *testing.T) {
		fake := &fakeExecutor{result: &exec.ExecutionResult{
			Stdout:   "/repo/.build/debug/codecov/default.json\nBuilding for debugging...\n",
			ExitCode: 0,
		}}
		r := New(fake, "/repo")

		path, err := r.ExportPath("", []string{"swift", "test", "--show-codecov-path"})
		require.NoError(t, err)
		assert.Equal(t, "/repo/.build/debug/codecov/default.json", path)
	})

	t.Run("should fail when the discovery command fails", func(t *testing.T) {
		fake := &fakeExecutor{result: &exec.ExecutionResult{ExitCode: 2, Stderr: "unknown option"}}
		r := New(fake, "")

		_, err := r.ExportPath("", []string{"swift", "test", "--show-codecov-path"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exited with code 2")
	})

	t.Run("should fail when discovery prints nothing", func(t *testing.T) {
		fake := &fakeExecutor{result: &exec.ExecutionResult{Stdout: "  \n", ExitCode: 0}}
		r := New(fake, "")

		_, err := r.ExportPath("", []string{"swift", "test", "--show-codecov-path"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "printed no path")
	})

	t.Run("should fail without path or discovery command", func(t *testing.T) {
		r := New(&fakeExecutor{}, "")
		_, err := r.ExportPath("", nil)
		require.Error(t, err)
	})
}

func TestRunner_ReadExport(t *testing.T) {
	t.Run("should read export bytes", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "export.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"data": []}`), 0644))

		r := New(&fakeExecutor{}, "")
		data, err := r.ReadExport(path)
		require.NoError(t, err)
		assert.Equal(t, `{"data": []}`, string(data))
	})

	t.Run("should fail with the path in the error", func(t *testing.T) {
		r := New(&fakeExecutor{}, "")
		_, err := r.ReadExport("/nonexistent/export.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "/nonexistent/export.json")
	})
}

func TestRunner_CleanArtifacts(t *testing.T) {
	t.Run("should remove the build directory", func(t *testing.T) {
		buildDir := filepath.Join(t.TempDir(), ".build")
		require.NoError(t, os.MkdirAll(filepath.Join(buildDir, "debug"), 0755))

		r := New(&fakeExecutor{}, "")
		require.NoError(t, r.CleanArtifacts(buildDir))

		_, err := os.Stat(buildDir)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("should do nothing for an empty directory path", func(t *testing.T) {
		r := New(&fakeExecutor{}, "")
		assert.NoError(t, r.CleanArtifacts(""))
	})
}
