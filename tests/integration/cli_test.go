// CLI integration tests for kairo: full command round-trips through the
// built binary, the SQLite database, and the Markdown mirror files.
package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestMain builds the kairo binary once before running tests.
func TestMain(m *testing.M) {
	projectRoot, err := FindProjectRoot()
	if err != nil {
		SetBuildErr(err)
		os.Exit(1)
	}

	tmpDir, err := os.MkdirTemp("", "kairo-test-*")
	if err != nil {
		SetBuildErr(err)
		os.Exit(1)
	}
	binPath := filepath.Join(tmpDir, "kairo")
	SetKairoBin(binPath)

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/kairo")
	cmd.Dir = projectRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		SetBuildErr(&BuildError{Err: err, Output: string(output)})
		os.Exit(1)
	}

	code := m.Run()
	os.RemoveAll(tmpDir)
	os.Exit(code)
}

// createdID extracts the trailing ID from "Created <kind> <id>" output.
func createdID(t *testing.T, stdout string) string {
	t.Helper()
	fields := strings.Fields(strings.TrimSpace(stdout))
	if len(fields) == 0 {
		t.Fatalf("no ID in output: %q", stdout)
	}
	return fields[len(fields)-1]
}

func TestProjectLifecycle(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunKairo("project", "create", "-t", "Garden redesign", "-d", "Spring layout", "--tag", "home")
	id := createdID(t, result.Stdout)
	if id != "p-001" {
		t.Errorf("expected first project ID p-001, got %s", id)
	}

	// Mirror file written on create.
	if _, err := os.Stat(filepath.Join(env.ProjDir, id+".md")); err != nil {
		t.Errorf("project mirror file missing: %v", err)
	}

	list := env.MustRunKairo("project", "list")
	if !strings.Contains(list.Stdout, "Garden redesign") {
		t.Errorf("project missing from list output: %s", list.Stdout)
	}

	env.MustRunKairo("project", "archive", "--id", id)

	// An archived project disappears from the default listing.
	list = env.MustRunKairo("project", "list")
	if strings.Contains(list.Stdout, "Garden redesign") {
		t.Errorf("archived project still listed: %s", list.Stdout)
	}

	// Archiving again fails with a non-zero exit.
	second := env.RunKairo("project", "archive", "--id", id)
	if second.ExitCode == 0 {
		t.Error("expected non-zero exit for double archive")
	}
	if !strings.Contains(second.Stderr, "already archived") {
		t.Errorf("expected already-archived error, got: %s", second.Stderr)
	}
}

func TestNoteMirrorRoundTrip(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunKairo("note", "create", "-t", "Spaced repetition", "-n", "permanent", "-s", "idea", "--tag", "learning")
	id := createdID(t, result.Stdout)

	mirror := filepath.Join(env.NotesDir, id+".md")
	data, err := os.ReadFile(mirror)
	if err != nil {
		t.Fatalf("note mirror file missing: %v", err)
	}
	if !strings.Contains(string(data), "## Spaced repetition") {
		t.Errorf("synthesized body missing from mirror: %s", data)
	}

	// Edit the body, then update metadata; the body must survive.
	edited := strings.Replace(string(data), "## Spaced repetition", "## Spaced repetition\n\nMy own words.", 1)
	if err := os.WriteFile(mirror, []byte(edited), 0o644); err != nil {
		t.Fatal(err)
	}
	env.MustRunKairo("note", "update", "--id", id, "-t", "Spacing effect")

	data, err = os.ReadFile(mirror)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "My own words.") {
		t.Errorf("user body lost on metadata update: %s", data)
	}
	if !strings.Contains(string(data), "title: Spacing effect") {
		t.Errorf("front matter not rewritten: %s", data)
	}

	preview := env.MustRunKairo("note", "preview", "--id", id)
	if !strings.Contains(preview.Stdout, "<h2>") {
		t.Errorf("expected rendered HTML, got: %s", preview.Stdout)
	}
}

func TestTaskFiltersAndDefaults(t *testing.T) {
	env := NewTestEnv(t)

	env.MustRunKairo("task", "create", "-t", "File taxes", "-p", "high", "--due", "2026-04-15")
	env.MustRunKairo("task", "create", "-t", "Water plants")

	// Default priority is medium.
	get := env.MustRunKairo("task", "get", "--id", "task-002")
	if !strings.Contains(get.Stdout, "medium") {
		t.Errorf("expected default medium priority, got: %s", get.Stdout)
	}

	list := env.MustRunKairo("task", "list", "-p", "high")
	if !strings.Contains(list.Stdout, "File taxes") || strings.Contains(list.Stdout, "Water plants") {
		t.Errorf("priority filter wrong: %s", list.Stdout)
	}

	// Rejected inputs exit non-zero and leave nothing behind.
	bad := env.RunKairo("task", "create", "-t", "Bad date", "--due", "2025-13-01")
	if bad.ExitCode == 0 {
		t.Error("expected non-zero exit for invalid due date")
	}
	list = env.MustRunKairo("task", "list")
	if strings.Contains(list.Stdout, "Bad date") {
		t.Errorf("invalid task was persisted: %s", list.Stdout)
	}

	conflicting := env.RunKairo("task", "list", "--archived", "--deleted")
	if conflicting.ExitCode == 0 {
		t.Error("expected non-zero exit for archived+deleted filter")
	}
}

func TestTagAndLinkCommands(t *testing.T) {
	env := NewTestEnv(t)

	first := env.MustRunKairo("note", "create", "-t", "First", "-n", "fleeting")
	firstID := createdID(t, first.Stdout)

	env.MustRunKairo("tag", "create", "-n", "inbox")
	renamed := env.MustRunKairo("tag", "update", "--id", "t-001", "-n", "triage")
	if !strings.Contains(renamed.Stdout, "triage") {
		t.Errorf("rename output wrong: %s", renamed.Stdout)
	}

	link := env.MustRunKairo("link", "create", "--from", firstID, "--to", "20240101T000000", "--link-type", "reference")
	linkID := createdID(t, link.Stdout)
	if linkID != "ln-001" {
		t.Errorf("expected ln-001, got %s", linkID)
	}

	list := env.MustRunKairo("link", "list", "--from", firstID)
	if !strings.Contains(list.Stdout, linkID) {
		t.Errorf("link missing from filtered list: %s", list.Stdout)
	}

	both := env.RunKairo("link", "list", "--from", firstID, "--to", firstID)
	if both.ExitCode == 0 {
		t.Error("expected non-zero exit when filtering by both endpoints")
	}
}

func TestMissingConfigFails(t *testing.T) {
	env := NewTestEnv(t)

	cmd := exec.Command(kairoBin, "note", "list")
	cmd.Env = append(os.Environ(), "KAIRO_CONFIG_DIR="+filepath.Join(env.TempDir, "nowhere"))
	if err := cmd.Run(); err == nil {
		t.Error("expected failure without a config file")
	}
}

func TestVersionWorksWithoutConfig(t *testing.T) {
	cmd := exec.Command(kairoBin, "version")
	cmd.Env = append(os.Environ(), "KAIRO_CONFIG_DIR=/nonexistent")
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(string(out), "kairo") {
		t.Errorf("unexpected version output: %s", out)
	}
}
