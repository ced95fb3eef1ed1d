package cli

import (
	"fmt"
	"io"

	"github.com/ChandlerVer5/vite-plugin-utools/internal/config"
	"github.com/ChandlerVer5/vite-plugin-utools/internal/exports"
	"github.com/ChandlerVer5/vite-plugin-utools/internal/logging"
	"github.com/ChandlerVer5/vite-plugin-utools/internal/manifest"
	"github.com/ChandlerVer5/vite-plugin-utools/internal/typegen"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	typesKeys  []string
	typesPrint bool
)

func init() {
	typesCmd.Flags().StringP("config", "c", "", "Path to plugin.json (default from project options)")
	typesCmd.Flags().StringP("name", "n", "", "Window property the preload exports are mounted on")
	typesCmd.Flags().StringP("out", "o", "", "Declaration file name, written next to the preload script")
	typesCmd.Flags().Bool("auto-type", false, "Write the declaration file even without tsconfig.json")
	typesCmd.Flags().StringSliceVarP(&typesKeys, "keys", "k", nil, "Exported names to declare (default: scan the preload script)")
	typesCmd.Flags().BoolVar(&typesPrint, "print", false, "Also print the declaration to stdout")
	rootCmd.AddCommand(typesCmd)
}

var typesFlags = map[string]string{
	config.KeyConfigFile: "config",
	config.KeyGlobalName: "name",
	config.KeyTypesFile:  "out",
	config.KeyAutoType:   "auto-type",
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Generate the preload type declaration file",
	Long: `Generate a declaration that adds the preload exports to the Window interface.
The file is written next to the preload script when the project has a
tsconfig.json or --auto-type is set.

  vpu types
  vpu types --name services --keys post,initServer --print`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := workDir()
		if err != nil {
			return err
		}
		opts, err := loadOptions(dir, cmd.Flags(), typesFlags)
		if err != nil {
			return err
		}

		var out io.Writer
		if typesPrint {
			out = cmd.OutOrStdout()
		}
		_, err = runTypes(dir, opts, typesKeys, out, logger)
		return err
	},
}

// runTypes resolves the manifest, generates the declaration and writes it
// when allowed. When out is non-nil the declaration is also printed there.
// It returns the written path, or "" when nothing was written.
func runTypes(dir string, opts *config.Options, keys []string, out io.Writer, l *log.Logger) (string, error) {
	resolver := newResolver(dir, l)
	m, err := resolver.Resolve(opts.ConfigFile, false)
	if err != nil {
		return "", err
	}

	if len(keys) == 0 {
		keys, err = discoverKeys(m, l)
		if err != nil {
			return "", err
		}
	}

	gen := typegen.New(resolver, typegen.WithWorkDir(dir), typegen.WithLogger(l))
	text, err := gen.Generate(opts.GlobalName, keys)
	if err != nil {
		return "", err
	}
	if out != nil {
		fmt.Fprintln(out, text)
	}

	path, err := gen.MaybeWriteGeneratedFile(text, opts.TypesFile, typegen.WriteOptions{AutoType: opts.AutoType})
	if err != nil {
		return "", err
	}
	if path == "" {
		l.Info(logging.MutedStyle.Render(fmt.Sprintf("skipped %s: no %s in project, pass --auto-type to force", opts.TypesFile, typegen.TSConfigFile)))
	}
	return path, nil
}

// discoverKeys scans the preload script for exported names.
func discoverKeys(m *manifest.Manifest, l *log.Logger) ([]string, error) {
	if m.Preload == "" {
		return nil, typegen.ErrNoPreload
	}
	keys, err := exports.Scan(m.Preload)
	if err != nil {
		return nil, err
	}
	l.Debug("discovered preload exports", "count", len(keys), "keys", keys)
	return keys, nil
}
