package manifest

import (
	"path/filepath"

	"github.com/ChandlerVer5/vite-plugin-utools/internal/logging"
	"github.com/charmbracelet/log"
)

// DescriptorFile is the package descriptor name looked up in the work dir.
const DescriptorFile = "package.json"

// Resolver loads a plugin manifest once and caches the resolved result until
// Invalidate is called or Resolve is asked to reload. It is not safe for
// concurrent use; a build drives it from one goroutine.
type Resolver struct {
	workDir        string
	descriptorPath string
	logger         *log.Logger

	current *Manifest
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithWorkDir sets the directory relative manifest paths resolve against.
func WithWorkDir(dir string) Option {
	return func(r *Resolver) { r.workDir = dir }
}

// WithDescriptorPath overrides the package.json location.
func WithDescriptorPath(path string) Option {
	return func(r *Resolver) { r.descriptorPath = path }
}

// WithLogger sets the logger used for advisories.
func WithLogger(logger *log.Logger) Option {
	return func(r *Resolver) { r.logger = logger }
}

// NewResolver creates a Resolver. The work dir defaults to the process's
// current directory and is always made absolute.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}
	if r.workDir == "" {
		r.workDir = "."
	}
	if abs, err := filepath.Abs(r.workDir); err == nil {
		r.workDir = abs
	}
	if r.descriptorPath == "" {
		r.descriptorPath = filepath.Join(r.workDir, DescriptorFile)
	}
	if r.logger == nil {
		r.logger = logging.Discard()
	}
	return r
}

// WorkDir returns the directory the resolver resolves against.
func (r *Resolver) WorkDir() string { return r.workDir }

// Resolve returns the cached manifest if one is resolved and forceReload is
// false; path is ignored in that case. Otherwise it reads the manifest at path
// (relative to the work dir unless absolute), fills required keys from
// package.json, checks the schema, resolves preload and logo to absolute
// paths and caches the result. A failed resolution caches nothing.
func (r *Resolver) Resolve(path string, forceReload bool) (*Manifest, error) {
	if forceReload {
		r.Invalidate()
	}
	if r.current != nil {
		return r.current, nil
	}
	if path == "" {
		return nil, &ConfigurationError{}
	}

	abs := resolveAgainst(r.workDir, path)
	r.logger.Debug("reading manifest", "path", abs)

	parsed, err := ParseFile(abs)
	if err != nil {
		return nil, err
	}

	pkg := memoDescriptor(func() (*PackageDescriptor, error) {
		return LoadDescriptor(r.descriptorPath)
	})
	m, err := fillRequired(parsed, pkg, r.logger)
	if err != nil {
		return nil, err
	}
	if err := CheckSchema(m); err != nil {
		return nil, err
	}

	dir := filepath.Dir(abs)
	if m.Preload != "" {
		preload, err := resolveEntry(KeyPreload, dir, m.Preload)
		if err != nil {
			return nil, err
		}
		m.Preload = preload
	}
	logo, err := resolveEntry(KeyLogo, dir, m.Logo)
	if err != nil {
		return nil, err
	}
	m.Logo = logo

	r.current = m
	r.logger.Debug("resolved manifest", "plugin", m.PluginName, "preload", m.Preload)
	return m, nil
}

// Current returns the cached manifest, or ErrNotResolved.
func (r *Resolver) Current() (*Manifest, error) {
	if r.current == nil {
		return nil, ErrNotResolved
	}
	return r.current, nil
}

// Invalidate discards the cached manifest.
func (r *Resolver) Invalidate() {
	r.current = nil
}
