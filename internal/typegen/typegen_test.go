package typegen

import (
	"path/filepath"
	"testing"

	"github.com/ChandlerVer5/vite-plugin-utools/internal/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticSource serves a fixed manifest or error.
type staticSource struct {
	m   *manifest.Manifest
	err error
}

func (s staticSource) Current() (*manifest.Manifest, error) { return s.m, s.err }

const header = "// generated by @ver5/vite-plugin-utools\n" +
	"// DO NOT CHANGE THIS FILE!\n" +
	"/// <reference types=\"@ver5/vite-plugin-utools/utools\" />\n\n"

func TestGenerate_NamedGlobal(t *testing.T) {
	g := New(staticSource{m: &manifest.Manifest{Preload: "/work/preload/index.ts"}})

	got, err := g.Generate("preload", []string{"post", "init"})
	require.NoError(t, err)

	want := header +
		"interface Window {\n" +
		"  preload: {\n" +
		"    post: typeof import('./index')['post']\n" +
		"    init: typeof import('./index')['init']\n" +
		"  }\n" +
		"}"
	assert.Equal(t, want, got)
}

func TestGenerate_EmptyName(t *testing.T) {
	g := New(staticSource{m: &manifest.Manifest{Preload: "/work/preload/index.ts"}})

	got, err := g.Generate("", nil)
	require.NoError(t, err)
	assert.Equal(t, header+"interface Window {\n}", got)
}

func TestGenerate_NameWithoutKeys(t *testing.T) {
	g := New(staticSource{m: &manifest.Manifest{Preload: "/work/preload.js"}})

	got, err := g.Generate("api", []string{})
	require.NoError(t, err)
	assert.Equal(t, header+"interface Window {\n  api: {\n  }\n}", got)
}

func TestGenerate_NotResolved(t *testing.T) {
	g := New(staticSource{err: manifest.ErrNotResolved})

	_, err := g.Generate("preload", []string{"post"})
	assert.ErrorIs(t, err, manifest.ErrNotResolved)
}

func TestGenerate_NoPreload(t *testing.T) {
	g := New(staticSource{m: &manifest.Manifest{}})

	_, err := g.Generate("preload", []string{"post"})
	assert.ErrorIs(t, err, ErrNoPreload)
}

func TestModuleRef(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{filepath.Join("/work", "preload", "index.ts"), "index"},
		{filepath.Join("/work", "preload.js"), "preload"},
		{filepath.Join("/work", "types.d.ts"), "types.d"},
		{filepath.Join("/work.ts", "main.mjs"), "main.mjs"},
		{filepath.Join("/work", "bundle.tsx"), "bundle.tsx"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, ModuleRef(tt.path))
		})
	}
}

func TestRender_KeyOrderPreserved(t *testing.T) {
	got := Render("main", "services", []string{"b", "a", "c"})

	assert.Contains(t, got, "    b: typeof import('./main')['b']\n"+
		"    a: typeof import('./main')['a']\n"+
		"    c: typeof import('./main')['c']\n  }\n}")
}
