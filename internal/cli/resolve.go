package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ChandlerVer5/vite-plugin-utools/internal/config"
	"github.com/ChandlerVer5/vite-plugin-utools/internal/manifest"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var resolveFormat string

func init() {
	resolveCmd.Flags().StringP("config", "c", "", "Path to plugin.json (default from project options)")
	resolveCmd.Flags().StringVarP(&resolveFormat, "format", "o", "json", "Output format: json or yaml")
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Validate plugin.json and print the resolved manifest",
	Long: `Read plugin.json, fill missing required fields from package.json, check that
the preload and logo files exist, and print the manifest with absolute paths.

  vpu resolve
  vpu resolve --config public/plugin.json --format yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := workDir()
		if err != nil {
			return err
		}
		opts, err := loadOptions(dir, cmd.Flags(), map[string]string{config.KeyConfigFile: "config"})
		if err != nil {
			return err
		}

		m, err := newResolver(dir, logger).Resolve(opts.ConfigFile, false)
		if err != nil {
			return err
		}
		return writeManifest(cmd.OutOrStdout(), m, resolveFormat)
	},
}

// writeManifest prints m as indented JSON or YAML.
func writeManifest(w io.Writer, m *manifest.Manifest, format string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}

	switch format {
	case "json":
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		var doc map[string]any
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("converting manifest: %w", err)
		}
		out, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("marshaling manifest: %w", err)
		}
		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("unknown format %q (valid: json, yaml)", format)
	}
}
