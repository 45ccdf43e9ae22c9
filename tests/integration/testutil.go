// Package integration provides end-to-end tests that exercise the built
// kairo binary against a throwaway workspace.
package integration

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// kairoBin is the path to the built kairo binary.
	kairoBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with its output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// SetKairoBin sets the path to the kairo binary (called from TestMain).
func SetKairoBin(path string) {
	kairoBin = path
}

// SetBuildErr sets the build error (called from TestMain).
func SetBuildErr(err error) {
	buildErr = err
}

// TestEnv is an isolated workspace: its own config.toml, database, and
// mirror directories, all under a per-test temp dir.
type TestEnv struct {
	t         *testing.T
	TempDir   string
	ConfigDir string
	NotesDir  string
	ProjDir   string
	TasksDir  string
}

// Result captures one CLI invocation.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// NewTestEnv builds a workspace and writes a config.toml pointing into it.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build kairo: %v", buildErr)
	}
	if kairoBin == "" {
		t.Fatal("kairo binary not built (kairoBin is empty)")
	}

	tempDir := t.TempDir()
	env := &TestEnv{
		t:         t,
		TempDir:   tempDir,
		ConfigDir: filepath.Join(tempDir, "config"),
		NotesDir:  filepath.Join(tempDir, "notes"),
		ProjDir:   filepath.Join(tempDir, "projects"),
		TasksDir:  filepath.Join(tempDir, "tasks"),
	}

	if err := os.MkdirAll(env.ConfigDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	config := fmt.Sprintf(`[paths]
db_path = %q
notes_dir = %q
projects_dir = %q
tasks_dir = %q
`, filepath.Join(tempDir, "kairo.db"), env.NotesDir, env.ProjDir, env.TasksDir)
	if err := os.WriteFile(filepath.Join(env.ConfigDir, "config.toml"), []byte(config), 0o644); err != nil {
		t.Fatalf("failed to write config.toml: %v", err)
	}
	return env
}

// RunKairo invokes the binary with KAIRO_CONFIG_DIR pointed at the env's
// config directory.
func (e *TestEnv) RunKairo(args ...string) Result {
	e.t.Helper()

	cmd := exec.Command(kairoBin, args...)
	cmd.Env = append(os.Environ(), "KAIRO_CONFIG_DIR="+e.ConfigDir)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	code := 0
	if exitErr, ok := err.(*exec.ExitError); ok {
		code = exitErr.ExitCode()
	} else if err != nil {
		e.t.Fatalf("failed to run kairo %v: %v", args, err)
	}

	return Result{Stdout: stdout.String(), Stderr: stderr.String(), ExitCode: code}
}

// MustRunKairo runs the command and fails the test on a non-zero exit.
func (e *TestEnv) MustRunKairo(args ...string) Result {
	e.t.Helper()

	result := e.RunKairo(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("kairo %v exited %d\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}
