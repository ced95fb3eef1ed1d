package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ChandlerVer5/vite-plugin-utools/internal/branding"
	"github.com/ChandlerVer5/vite-plugin-utools/internal/config"
	"github.com/ChandlerVer5/vite-plugin-utools/internal/logging"
	"github.com/ChandlerVer5/vite-plugin-utools/internal/manifest"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	flagWorkDir string
	flagVerbose bool

	logger = logging.Discard()
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagWorkDir, "workdir", "C", "", "Project directory (defaults to the current directory)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug output")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` resolves a uTools plugin.json for a build, filling missing fields
from package.json, and generates the preload type declaration file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.New(os.Stderr, flagVerbose)
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, logging.ErrorStyle.Render("error:"), err)
	}
	return err
}

// workDir returns the absolute project directory.
func workDir() (string, error) {
	dir := flagWorkDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving working directory %s: %w", dir, err)
	}
	return abs, nil
}

// loadOptions reads project options and lets explicitly set flags override
// them. flags maps option keys to flag names.
func loadOptions(dir string, fs *pflag.FlagSet, flags map[string]string) (*config.Options, error) {
	v, err := config.Load(dir)
	if err != nil {
		return nil, err
	}
	if err := bindFlags(v, fs, flags); err != nil {
		return nil, err
	}
	return config.Decode(v)
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet, flags map[string]string) error {
	for key, name := range flags {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag --%s: %w", name, err)
		}
	}
	return nil
}

// newResolver returns a manifest resolver rooted at dir.
func newResolver(dir string, l *log.Logger) *manifest.Resolver {
	return manifest.NewResolver(manifest.WithWorkDir(dir), manifest.WithLogger(l))
}
