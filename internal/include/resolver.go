// Package include resolves and loads a jink include path against the
// including file's directory, the way the teacher's internal/units search
// logic probes a set of candidate paths for a unit name before giving up.
// Unlike units.FindUnit, exactly one of two fixed candidate shapes must
// exist — "path.jk" or "path/lib.jk" — rather than searching an arbitrary
// path list, since includes are always resolved relative to a single
// including file.
package include

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jink-lang/jink/internal/errs"
	"github.com/jink-lang/jink/internal/instruction"
)

// Parser is the narrow contract the resolver needs from the front-end: turn
// source text into a sequence of top-level instructions. It is declared
// here, not imported from a concrete parser package, for the same reason
// instruction.Evaluator is declared in instruction: a consumer-side
// interface keeps the dependency arrow pointing one way.
type Parser interface {
	ParseInstructions(source string) ([]instruction.Node, []*errs.Error)
}

// Resolver loads include targets from disk and guards against cycles.
// Resolver is not itself thread-safe; the interpreter is single-threaded.
type Resolver struct {
	parser  Parser
	loading map[string]struct{}
}

// NewResolver builds a Resolver that parses included files with p.
func NewResolver(p Parser) *Resolver {
	return &Resolver{parser: p, loading: make(map[string]struct{})}
}

// candidates returns the two fixed shapes a path may resolve to, relative
// to base.
func candidates(base, path string) (file, dir string) {
	return filepath.Join(base, path+".jk"), filepath.Join(base, path, "lib.jk")
}

// Resolve loads the instructions for path, included from a file at
// currentPath (or the working directory, if currentPath is "").
func (r *Resolver) Resolve(currentPath, path string) ([]instruction.Node, string, error) {
	base := ""
	if currentPath != "" {
		base = filepath.Dir(currentPath)
	}

	fileCandidate, dirCandidate := candidates(base, path)
	fileExists := exists(fileCandidate)
	dirExists := exists(dirCandidate)

	var resolved string
	switch {
	case fileExists && dirExists:
		return nil, "", fmt.Errorf("invalid include: both %s and %s exist", fileCandidate, dirCandidate)
	case fileExists:
		resolved = fileCandidate
	case dirExists:
		resolved = dirCandidate
	default:
		return nil, "", fmt.Errorf("no candidate for include %q: tried %s and %s", path, fileCandidate, dirCandidate)
	}

	abs, err := filepath.Abs(resolved)
	if err != nil {
		return nil, "", fmt.Errorf("include %q: %w", path, err)
	}
	if _, ok := r.loading[abs]; ok {
		return nil, "", fmt.Errorf("include cycle detected: %s", abs)
	}

	contents, err := os.ReadFile(resolved)
	if err != nil {
		return nil, "", fmt.Errorf("include %q: %w", path, err)
	}

	r.loading[abs] = struct{}{}
	defer delete(r.loading, abs)

	nodes, errList := r.parser.ParseInstructions(string(contents))
	if len(errList) > 0 {
		return nil, "", fmt.Errorf("include %q: %s", path, errList[0].Error())
	}

	return nodes, resolved, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
