package typegen

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ChandlerVer5/vite-plugin-utools/internal/branding"
	"github.com/ChandlerVer5/vite-plugin-utools/internal/logging"
	"github.com/ChandlerVer5/vite-plugin-utools/internal/manifest"
	"github.com/charmbracelet/log"
)

// ErrNoPreload is returned when the resolved manifest has no preload entry.
var ErrNoPreload = errors.New("manifest has no preload entry")

// TSConfigFile marks a TypeScript project; its presence in the work dir
// enables declaration output.
const TSConfigFile = "tsconfig.json"

// ManifestSource yields the resolved manifest.
type ManifestSource interface {
	Current() (*manifest.Manifest, error)
}

// Generator produces and writes preload type declarations for the manifest
// held by its source.
type Generator struct {
	src     ManifestSource
	workDir string
	logger  *log.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithWorkDir sets the directory searched for tsconfig.json.
func WithWorkDir(dir string) Option {
	return func(g *Generator) { g.workDir = dir }
}

// WithLogger sets the logger used for status lines.
func WithLogger(logger *log.Logger) Option {
	return func(g *Generator) { g.logger = logger }
}

// New creates a Generator reading the manifest from src.
func New(src ManifestSource, opts ...Option) *Generator {
	g := &Generator{src: src, workDir: "."}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = logging.Discard()
	}
	return g
}

// preload returns the resolved preload path of the current manifest.
func (g *Generator) preload() (string, error) {
	m, err := g.src.Current()
	if err != nil {
		return "", err
	}
	if m.Preload == "" {
		return "", ErrNoPreload
	}
	return m.Preload, nil
}

// Generate renders the declaration for globalName exposing exportedKeys of
// the preload module.
func (g *Generator) Generate(globalName string, exportedKeys []string) (string, error) {
	preload, err := g.preload()
	if err != nil {
		return "", fmt.Errorf("generating types: %w", err)
	}
	return Render(ModuleRef(preload), globalName, exportedKeys), nil
}

// ModuleRef returns the import path of the preload script as seen from its
// own directory: the base name without a trailing .ts or .js.
func ModuleRef(preloadPath string) string {
	base := filepath.Base(preloadPath)
	for _, ext := range []string{".ts", ".js"} {
		if strings.HasSuffix(base, ext) {
			return strings.TrimSuffix(base, ext)
		}
	}
	return base
}

// Render builds the declaration text. It is a pure function of its inputs.
func Render(moduleRef, globalName string, keys []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// generated by %s\n", branding.NPMPackage())
	b.WriteString("// DO NOT CHANGE THIS FILE!\n")
	fmt.Fprintf(&b, "/// <reference types=\"%s/utools\" />\n\n", branding.NPMPackage())

	b.WriteString("interface Window {\n")
	if globalName != "" {
		fmt.Fprintf(&b, "  %s: {\n", globalName)
		members := make([]string, len(keys))
		for i, key := range keys {
			members[i] = fmt.Sprintf("    %s: typeof import('./%s')['%s']", key, moduleRef, key)
		}
		if len(members) > 0 {
			b.WriteString(strings.Join(members, "\n"))
			b.WriteString("\n")
		}
		b.WriteString("  }\n")
	}
	b.WriteString("}")
	return b.String()
}
