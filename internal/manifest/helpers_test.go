package manifest

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ChandlerVer5/vite-plugin-utools/internal/logging"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

// project is a temporary plugin project on disk.
type project struct {
	dir string
	log *bytes.Buffer
}

func newProject(t *testing.T) *project {
	t.Helper()
	return &project{dir: t.TempDir(), log: &bytes.Buffer{}}
}

func (p *project) write(t *testing.T, rel, content string) string {
	t.Helper()
	path := filepath.Join(p.dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func (p *project) writeJSON(t *testing.T, rel string, v any) string {
	t.Helper()
	data, err := json.MarshalIndent(v, "", "  ")
	require.NoError(t, err)
	return p.write(t, rel, string(data))
}

func (p *project) resolver() *Resolver {
	return NewResolver(WithWorkDir(p.dir), WithLogger(logging.New(p.log, true)))
}

// completeManifest returns a manifest with every required key set, pointing
// at files the caller must create.
func completeManifest() map[string]any {
	return map[string]any{
		"name":        "demo",
		"pluginName":  "Demo",
		"description": "a demo plugin",
		"author":      "someone",
		"version":     "1.0.0",
		"logo":        "logo.png",
		"preload":     "preload/index.ts",
		"features": []any{
			map[string]any{"code": "demo", "explain": "demo", "cmds": []any{"demo"}},
		},
	}
}

// withAssets writes the logo and preload files completeManifest refers to.
func (p *project) withAssets(t *testing.T) {
	t.Helper()
	p.write(t, "logo.png", "png")
	p.write(t, "preload/index.ts", "export const post = 1\n")
}

func filepathBase(p string) string { return filepath.Base(p) }

func discardLogger() *log.Logger { return logging.Discard() }
