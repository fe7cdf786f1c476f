package include

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jink-lang/jink/internal/errs"
	"github.com/jink-lang/jink/internal/instruction"
)

type stubParser struct {
	nodes []instruction.Node
	errs  []*errs.Error
}

func (s *stubParser) ParseInstructions(source string) ([]instruction.Node, []*errs.Error) {
	return s.nodes, s.errs
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestResolveFileCandidate(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "math.jk"), "func noop() {}")

	r := NewResolver(&stubParser{})
	including := filepath.Join(dir, "main.jk")

	_, resolved, err := r.Resolve(including, "math")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved != filepath.Join(dir, "math.jk") {
		t.Errorf("expected math.jk, got %s", resolved)
	}
}

func TestResolveDirectoryCandidate(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "math", "lib.jk"), "func noop() {}")

	r := NewResolver(&stubParser{})
	including := filepath.Join(dir, "main.jk")

	_, resolved, err := r.Resolve(including, "math")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved != filepath.Join(dir, "math", "lib.jk") {
		t.Errorf("expected math/lib.jk, got %s", resolved)
	}
}

func TestResolveAmbiguousIsError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "math.jk"), "")
	writeFile(t, filepath.Join(dir, "math", "lib.jk"), "")

	r := NewResolver(&stubParser{})
	including := filepath.Join(dir, "main.jk")

	if _, _, err := r.Resolve(including, "math"); err == nil {
		t.Error("expected ambiguous-include error")
	}
}

func TestResolveMissingIsError(t *testing.T) {
	dir := t.TempDir()
	r := NewResolver(&stubParser{})
	including := filepath.Join(dir, "main.jk")

	if _, _, err := r.Resolve(including, "missing"); err == nil {
		t.Error("expected no-candidate error")
	}
}

func TestResolveCycleIsDetected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.jk")
	writeFile(t, path, "")

	r := NewResolver(&stubParser{})
	abs, err := filepath.Abs(path)
	if err != nil {
		t.Fatalf("Abs: %v", err)
	}
	r.loading[abs] = struct{}{}

	if _, _, err := r.Resolve(filepath.Join(dir, "main.jk"), "a"); err == nil {
		t.Error("expected include-cycle error")
	}
}

func TestResolveEmptyCurrentPathUsesWorkingDirectory(t *testing.T) {
	r := NewResolver(&stubParser{})
	if _, _, err := r.Resolve("", "definitely-not-a-real-unit-xyz"); err == nil {
		t.Error("expected no-candidate error relative to the working directory")
	}
}
