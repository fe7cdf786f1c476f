package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

// resetFlags restores the package-level flag variables between test runs,
// since rootCmd and its flags are package globals shared across tests.
func resetFlags() {
	showVersion = false
	interactive = false
	debug = false
	noStdLib = false
}

func TestRunMissingFileReturnsError(t *testing.T) {
	resetFlags()
	noStdLib = true
	err := run(rootCmd, []string{filepath.Join(t.TempDir(), "nope.jk")})
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestRunValidProgramSucceeds(t *testing.T) {
	resetFlags()
	noStdLib = true
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.jk")
	src := "type Point(x: int, y: int);\nb = Point { x = 1, y = 2 };\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %s", err)
	}
	if err := run(rootCmd, []string{path}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
}

func TestExitCodeMapping(t *testing.T) {
	if ExitCode(nil) != 0 {
		t.Error("expected exit code 0 for nil error")
	}
	if ExitCode(os.ErrNotExist) != 1 {
		t.Error("expected exit code 1 for a non-nil error")
	}
}
