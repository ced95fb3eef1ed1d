package manifest

import (
	"os"
	"path/filepath"
	"strings"
)

// normalizePath converts Windows separators to forward slashes and then to
// the host separator.
func normalizePath(p string) string {
	return filepath.FromSlash(strings.ReplaceAll(p, `\`, "/"))
}

// resolveAgainst returns p as an absolute path, resolving it relative to dir
// when it is not absolute already.
func resolveAgainst(dir, p string) string {
	p = normalizePath(p)
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(dir, p)
}

// resolveEntry resolves a manifest-relative file path and checks it exists.
func resolveEntry(kind, dir, p string) (string, error) {
	abs := resolveAgainst(dir, p)
	if _, err := os.Stat(abs); err != nil {
		return "", &MissingFileError{Kind: kind, Path: abs, Err: err}
	}
	return abs, nil
}
