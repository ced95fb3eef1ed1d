package typegen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ChandlerVer5/vite-plugin-utools/internal/logging"
)

// WriteOptions controls MaybeWriteGeneratedFile.
type WriteOptions struct {
	// AutoType writes the file even without a tsconfig.json.
	AutoType bool
}

// ShouldWrite reports whether generated files are emitted: the work dir holds
// a tsconfig.json or AutoType is set.
func (g *Generator) ShouldWrite(opts WriteOptions) (bool, error) {
	if opts.AutoType {
		return true, nil
	}
	_, err := os.Stat(filepath.Join(g.workDir, TSConfigFile))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("checking %s: %w", TSConfigFile, err)
}

// MaybeWriteGeneratedFile writes content to filename in the preload script's
// directory when ShouldWrite allows it. It returns the written path, or "" when
// nothing was written.
func (g *Generator) MaybeWriteGeneratedFile(content, filename string, opts WriteOptions) (string, error) {
	ok, err := g.ShouldWrite(opts)
	if err != nil || !ok {
		return "", err
	}

	preload, err := g.preload()
	if err != nil {
		return "", fmt.Errorf("writing %s: %w", filename, err)
	}

	path := filepath.Join(filepath.Dir(preload), filename)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	g.logger.Info(logging.SuccessStyle.Render(fmt.Sprintf("generate %s for utools mode", filename)), "path", path)
	return path, nil
}
