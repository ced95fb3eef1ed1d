package manifest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ChandlerVer5/vite-plugin-utools/internal/branding"
	"github.com/ChandlerVer5/vite-plugin-utools/internal/logging"
)

// ErrNotResolved is returned by Resolver.Current before any manifest resolved.
var ErrNotResolved = errors.New("no plugin manifest has been resolved")

// ConfigurationError reports a required key that is still empty after the
// package.json fallback. An empty Key means no manifest path was given.
type ConfigurationError struct {
	Key string
}

func (e *ConfigurationError) Error() string {
	if e.Key == "" {
		return "must specify manifest file: pass the plugin.json path with --config"
	}
	return logging.ErrorStyle.Render(fmt.Sprintf("plugin %s is required, see: ", e.Key)) +
		logging.BoldStyle.Render(branding.DocURL())
}

// ManifestParseError reports a manifest that is not valid JSON for the
// expected shape. It is never returned for a missing file.
type ManifestParseError struct {
	Path string
	Err  error
}

func (e *ManifestParseError) Error() string {
	return fmt.Sprintf("parsing manifest %s: %v", e.Path, e.Err)
}

func (e *ManifestParseError) Unwrap() error { return e.Err }

// MissingFileError reports a resolved preload or logo path that does not exist.
type MissingFileError struct {
	Kind string // manifest key, "preload" or "logo"
	Path string
	Err  error
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("%s file %s does not exist, please check that it exists", e.Kind, e.Path)
}

func (e *MissingFileError) Unwrap() error { return e.Err }

// SchemaError carries the schema issues found in a filled manifest.
type SchemaError struct {
	Path   string
	Issues []ValidationIssue
}

func (e *SchemaError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		if issue.Path == "" {
			parts = append(parts, issue.Message)
			continue
		}
		parts = append(parts, issue.Path+": "+issue.Message)
	}
	return fmt.Sprintf("manifest %s does not match schema: %s", e.Path, strings.Join(parts, "; "))
}
