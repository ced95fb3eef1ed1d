package typegen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ChandlerVer5/vite-plugin-utools/internal/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_FromResolvedManifest(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"plugin.json": `{
			"name": "demo", "pluginName": "Demo", "description": "d",
			"author": "a", "version": "1.0.0", "logo": "logo.png",
			"preload": "preload/index.ts", "features": [{"code": "demo"}]
		}`,
		"logo.png":         "png",
		"preload/index.ts": "export const post = 1\nexport function init() {}\n",
		"tsconfig.json":    "{}",
	}
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	r := manifest.NewResolver(manifest.WithWorkDir(dir))
	_, err := r.Resolve("plugin.json", false)
	require.NoError(t, err)

	g := New(r, WithWorkDir(dir))
	text, err := g.Generate("preload", []string{"post", "init"})
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(text, "typeof import('./index')"))
	assert.Less(t, strings.Index(text, "['post']"), strings.Index(text, "['init']"))

	path, err := g.MaybeWriteGeneratedFile(text, "preload.d.ts", WriteOptions{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "preload", "preload.d.ts"), path)
}
