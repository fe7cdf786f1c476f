// Package stdlib bundles the handful of .jk source files an Interpreter
// loads before the user's own program, unless --no-std-lib was given.
// The files live under lib/ and are baked into the binary with go:embed
// so the interpreter never depends on an install-time search path, the
// same "ship it inside the binary" approach the teacher takes for its
// release/version metadata rather than an external resource file.
package stdlib

import (
	"embed"
	"runtime/debug"
	"sort"
)

//go:embed lib/*.jk
var fs embed.FS

// Sources returns the bundled library files' contents in a stable,
// lexicographic-by-name order, so re-running an Interpreter always
// bootstraps identically.
func Sources() []string {
	entries, err := fs.ReadDir("lib")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	sources := make([]string, 0, len(names))
	for _, name := range names {
		data, err := fs.ReadFile("lib/" + name)
		if err != nil {
			continue
		}
		sources = append(sources, string(data))
	}
	return sources
}

// Version reports the jink module's build version, read from the
// binary's embedded build info rather than a linker-flag-injected
// string, since a plain `go install github.com/jink-lang/jink/cmd/jink`
// carries no such flags. Falls back to "(devel)" when build info is
// unavailable, e.g. when running under `go run`.
func Version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "(devel)"
	}
	if info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}
