package cli

import (
	"fmt"
	"io"

	"github.com/ChandlerVer5/vite-plugin-utools/internal/branding"
	"github.com/ChandlerVer5/vite-plugin-utools/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage project build options",
	Long: `Read and write build options stored in ` + branding.ProjectFile() + ` in the project directory.
Environment variables prefixed with ` + branding.EnvPrefix() + `_ override the file.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a build option",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := workDir()
		if err != nil {
			return err
		}
		key, value := args[0], args[1]
		if err := config.Set(dir, key, value); err != nil {
			return fmt.Errorf("setting option %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a build option",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := workDir()
		if err != nil {
			return err
		}
		return runConfigGet(cmd.OutOrStdout(), dir, args[0])
	},
}

// runConfigGet prints the effective value of a known option key.
func runConfigGet(w io.Writer, dir, key string) error {
	if err := config.CheckKey(key); err != nil {
		return err
	}
	v, err := config.Load(dir)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, v.GetString(key))
	return nil
}
