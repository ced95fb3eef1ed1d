package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ChandlerVer5/vite-plugin-utools/internal/config"
	"github.com/ChandlerVer5/vite-plugin-utools/internal/logging"
	"github.com/ChandlerVer5/vite-plugin-utools/internal/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

const pluginJSON = `{
	"name": "@/demo", "description": "demo plugin", "version": "1.0.0",
	"logo": "logo.png", "preload": "preload/index.ts",
	"features": [{"code": "demo"}]
}`

func demoProject(t *testing.T, extra map[string]string) string {
	files := map[string]string{
		"plugin.json":      pluginJSON,
		"package.json":     `{"author": "someone"}`,
		"logo.png":         "png",
		"preload/index.ts": "export const post = 1\nexport async function initServer() {}\n",
	}
	for k, v := range extra {
		files[k] = v
	}
	return writeProject(t, files)
}

func defaultOptions(t *testing.T, dir string) *config.Options {
	t.Helper()
	v, err := config.Load(dir)
	require.NoError(t, err)
	opts, err := config.Decode(v)
	require.NoError(t, err)
	return opts
}

func TestRunTypes_WritesWithTSConfig(t *testing.T) {
	dir := demoProject(t, map[string]string{"tsconfig.json": "{}"})
	var out bytes.Buffer

	path, err := runTypes(dir, defaultOptions(t, dir), nil, &out, logging.Discard())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "preload", "preload.d.ts"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "    post: typeof import('./index')['post']\n    initServer: typeof import('./index')['initServer']")
	assert.Contains(t, out.String(), "interface Window {")
}

func TestRunTypes_SkipsWithoutTSConfig(t *testing.T) {
	dir := demoProject(t, nil)

	path, err := runTypes(dir, defaultOptions(t, dir), []string{"post"}, nil, logging.Discard())
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.NoFileExists(t, filepath.Join(dir, "preload", "preload.d.ts"))
}

func TestRunTypes_AutoTypeAndExplicitKeys(t *testing.T) {
	dir := demoProject(t, nil)
	opts := defaultOptions(t, dir)
	opts.AutoType = true
	opts.GlobalName = "services"
	opts.TypesFile = "services.d.ts"

	path, err := runTypes(dir, opts, []string{"retrieve"}, nil, logging.Discard())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "  services: {\n    retrieve: typeof import('./index')['retrieve']\n  }")
}

func TestRunTypes_ConfigurationError(t *testing.T) {
	dir := demoProject(t, map[string]string{"package.json": `{}`})

	_, err := runTypes(dir, defaultOptions(t, dir), nil, nil, logging.Discard())

	var cfgErr *manifest.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, manifest.KeyAuthor, cfgErr.Key)
}

func TestWriteManifest(t *testing.T) {
	m := &manifest.Manifest{Name: "demo", PluginName: "demo", Features: json.RawMessage(`[]`)}

	var jsonOut bytes.Buffer
	require.NoError(t, writeManifest(&jsonOut, m, "json"))
	assert.JSONEq(t, `{"name":"demo","pluginName":"demo","features":[]}`, jsonOut.String())

	var yamlOut bytes.Buffer
	require.NoError(t, writeManifest(&yamlOut, m, "yaml"))
	assert.Contains(t, yamlOut.String(), "pluginName: demo")

	assert.Error(t, writeManifest(&bytes.Buffer{}, m, "toml"))
}

func TestRunDoctor(t *testing.T) {
	dir := demoProject(t, nil)
	var out bytes.Buffer

	failed := runDoctor(&out, dir, defaultOptions(t, dir))
	assert.Zero(t, failed)
	assert.Contains(t, out.String(), "plugin.json resolves (demo 1.0.0)")
	assert.Contains(t, out.String(), "preload exports 2 name(s)")
}

func TestRunDoctor_BrokenManifest(t *testing.T) {
	dir := demoProject(t, map[string]string{"plugin.json": "{"})
	var out bytes.Buffer

	failed := runDoctor(&out, dir, defaultOptions(t, dir))
	assert.Equal(t, 1, failed)
	assert.Contains(t, out.String(), "[FAIL]")
}

func TestRunConfigGet(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	require.NoError(t, runConfigGet(&out, dir, config.KeyGlobalName))
	assert.Equal(t, "preload\n", out.String())

	out.Reset()
	err := runConfigGet(&out, dir, "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown option")
	assert.Empty(t, out.String())
}
