// Package paths provides path helpers shared across the mutation engine.
//
// Every engine operation works on absolute, already-resolved paths; relative
// path resolution is the browser's responsibility. The helpers here validate
// that contract and implement the prefix rewriting used when open-buffer
// bindings follow a moved directory.
package paths

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Validate checks that path is non-empty and absolute.
func Validate(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("path %s must be absolute", path)
	}
	return nil
}

// Segments decomposes an absolute path into its ordered ancestor chain,
// root-most first, ending with the path itself. The filesystem root is not
// included.
//
//	Segments("/tmp/x/y") => ["/tmp", "/tmp/x", "/tmp/x/y"]
func Segments(path string) []string {
	clean := filepath.Clean(path)
	sep := string(filepath.Separator)

	trimmed := strings.TrimPrefix(clean, sep)
	if trimmed == "" {
		return nil
	}
	parts := strings.Split(trimmed, sep)

	segments := make([]string, 0, len(parts))
	current := ""
	for _, part := range parts {
		current = current + sep + part
		segments = append(segments, current)
	}
	return segments
}

// JoinUnder derives the destination path for an entry copied or moved into
// dir: dir joined with the base name of source.
func JoinUnder(dir, source string) string {
	return filepath.Join(dir, filepath.Base(source))
}

// IsWithin reports whether path is a strict descendant of dir.
func IsWithin(dir, path string) bool {
	dir = filepath.Clean(dir)
	path = filepath.Clean(path)
	if path == dir {
		return false
	}
	return strings.HasPrefix(path, dir+string(filepath.Separator))
}

// Rebase rewrites path from its old prefix to a new one. path must equal
// oldPrefix or be a descendant of it; ok is false otherwise.
func Rebase(path, oldPrefix, newPrefix string) (string, bool) {
	path = filepath.Clean(path)
	oldPrefix = filepath.Clean(oldPrefix)
	if path == oldPrefix {
		return filepath.Clean(newPrefix), true
	}
	if !IsWithin(oldPrefix, path) {
		return path, false
	}
	rel := strings.TrimPrefix(path, oldPrefix+string(filepath.Separator))
	return filepath.Join(newPrefix, rel), true
}
