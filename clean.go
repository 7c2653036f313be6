package cookbook

import (
	"os"
	"path/filepath"
)

// intermediateExtensions are the build artifacts the typesetting toolchain
// leaves next to the document.
var intermediateExtensions = []string{
	".aux", ".idx", ".ilg", ".ind", ".log", ".out", ".toc",
}

// intermediateDirs are directories left behind by the generator script.
var intermediateDirs = []string{"__pycache__"}

// Clean removes intermediate build artifacts for the given base filename
// from dir. Deletion is best-effort and idempotent: absent targets are not
// errors, and running Clean twice leaves the filesystem unchanged.
// It returns the paths that were actually removed.
func Clean(dir, base string) []string {
	var removed []string

	for _, ext := range intermediateExtensions {
		path := filepath.Join(dir, base+ext)
		if err := os.Remove(path); err == nil {
			removed = append(removed, path)
		}
	}

	for _, sub := range intermediateDirs {
		path := filepath.Join(dir, sub)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := os.RemoveAll(path); err == nil {
			removed = append(removed, path)
		}
	}

	return removed
}
