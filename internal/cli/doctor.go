package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ChandlerVer5/vite-plugin-utools/internal/config"
	"github.com/ChandlerVer5/vite-plugin-utools/internal/exports"
	"github.com/ChandlerVer5/vite-plugin-utools/internal/manifest"
	"github.com/ChandlerVer5/vite-plugin-utools/internal/typegen"
	"github.com/spf13/cobra"
)

func init() {
	doctorCmd.Flags().StringP("config", "c", "", "Path to plugin.json (default from project options)")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the project setup",
	Long:  `Run diagnostic checks on the plugin project: options, package.json, tsconfig.json, manifest and preload exports.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := workDir()
		if err != nil {
			return err
		}
		opts, err := loadOptions(dir, cmd.Flags(), map[string]string{config.KeyConfigFile: "config"})
		if err != nil {
			return err
		}
		if failed := runDoctor(cmd.OutOrStdout(), dir, opts); failed > 0 {
			return fmt.Errorf("%d check(s) failed", failed)
		}
		return nil
	},
}

// runDoctor prints one line per check and returns the number of failures.
func runDoctor(w io.Writer, dir string, opts *config.Options) int {
	fmt.Fprintf(w, "Project: %s\n", dir)

	if fileExists(config.FilePath(dir)) {
		fmt.Fprintf(w, "  [OK]   options file %s\n", filepath.Base(config.FilePath(dir)))
	} else {
		fmt.Fprintf(w, "  [INFO] no options file, using defaults\n")
	}

	if fileExists(filepath.Join(dir, manifest.DescriptorFile)) {
		fmt.Fprintf(w, "  [OK]   %s found\n", manifest.DescriptorFile)
	} else {
		fmt.Fprintf(w, "  [INFO] no %s, missing manifest fields cannot fall back\n", manifest.DescriptorFile)
	}

	if fileExists(filepath.Join(dir, typegen.TSConfigFile)) || opts.AutoType {
		fmt.Fprintf(w, "  [OK]   %s will be generated\n", opts.TypesFile)
	} else {
		fmt.Fprintf(w, "  [INFO] %s will be skipped (no %s)\n", opts.TypesFile, typegen.TSConfigFile)
	}

	m, err := newResolver(dir, logger).Resolve(opts.ConfigFile, false)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", opts.ConfigFile, err)
		return 1
	}
	fmt.Fprintf(w, "  [OK]   %s resolves (%s %s)\n", opts.ConfigFile, m.PluginName, m.Version)

	if m.Preload == "" {
		fmt.Fprintf(w, "  [INFO] no preload entry\n")
		return 0
	}
	keys, err := exports.Scan(m.Preload)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return 1
	}
	fmt.Fprintf(w, "  [OK]   preload exports %d name(s)\n", len(keys))
	return 0
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
